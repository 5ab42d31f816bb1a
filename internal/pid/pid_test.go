package pid

import (
	"os"
	"strconv"
	"testing"
)

func TestString(t *testing.T) {
	if got, want := String(), strconv.Itoa(os.Getpid()); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
