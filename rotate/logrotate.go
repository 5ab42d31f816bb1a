package rotate

import (
	"github.com/jrick/logrotate/rotator"
)

// LogRotateOpener opens writers backed by jrick/logrotate, which numbers
// its rolls itself.
type LogRotateOpener struct {
	// Tee also copies every record to standard output.
	Tee bool
}

// Open creates a rotator for FileName(pattern, 0). The threshold is given
// to the rotator in KiB, rounded up.
func (o LogRotateOpener) Open(pattern string, policy Policy) (Writer, error) {
	path := FileName(pattern, 0)

	if !policy.Append {
		if err := removeIfExists(path); err != nil {
			return nil, err
		}
	}

	r, err := rotator.New(path, kilobytes(policy.MaxSize), o.Tee, policy.MaxBackups)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func kilobytes(size int64) int64 {
	if size <= 0 {
		return 0
	}
	return (size + 1023) / 1024
}
