// Package pid provides the process identifier used in log file names.
package pid

import (
	"os"
	"strconv"
	"sync"
)

var pidString = sync.OnceValue(func() string {
	return strconv.Itoa(os.Getpid())
})

// String returns the current process id in decimal.
func String() string {
	return pidString()
}
