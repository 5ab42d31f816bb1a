package rotate

import (
	"gopkg.in/natefinch/lumberjack.v2"
)

// LumberjackOpener opens writers backed by lumberjack. Backups carry a
// timestamp instead of an index, and sizes are rounded up to whole MiB.
type LumberjackOpener struct {
	// MaxAgeDays removes backups older than this many days (0 = keep).
	MaxAgeDays int
	// Compress gzips rotated backups.
	Compress bool
}

// Open creates the lumberjack logger for FileName(pattern, 0) and opens
// the file immediately so that permission problems surface here rather
// than on the first record. lumberjack always appends; a non-append
// policy removes the previous active file first.
func (o LumberjackOpener) Open(pattern string, policy Policy) (Writer, error) {
	path := FileName(pattern, 0)

	if !policy.Append {
		if err := removeIfExists(path); err != nil {
			return nil, err
		}
	}

	l := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    megabytes(policy.MaxSize),
		MaxBackups: policy.MaxBackups,
		MaxAge:     o.MaxAgeDays,
		Compress:   o.Compress,
		LocalTime:  true,
	}
	if _, err := l.Write(nil); err != nil {
		return nil, err
	}
	return l, nil
}

// megabytes converts a byte threshold to lumberjack's MiB unit, rounding up.
func megabytes(size int64) int {
	if size <= 0 {
		return 0
	}
	mb := (size + MiB - 1) / MiB
	return int(mb)
}
