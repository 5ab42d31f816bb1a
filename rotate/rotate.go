package rotate

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IndexSuffix is appended to a file base name to form an opener pattern.
// Openers replace the verb with the rotation index; 0 is the active file.
const IndexSuffix = ".%d"

// MiB is one mebibyte.
const MiB = 1 << 20

// Policy is the size rotation contract handed to an Opener.
type Policy struct {
	// MaxSize is the size in bytes at which the active file is rotated (0 = never).
	MaxSize int64
	// MaxBackups is how many rotated files are retained next to the active one.
	MaxBackups int
	// Append keeps the content of an existing active file instead of truncating it.
	Append bool
}

// DefaultPolicy rotates at 200 MiB, keeps a single backup and appends.
var DefaultPolicy = Policy{MaxSize: 200 * MiB, MaxBackups: 1, Append: true}

// ErrClosed is returned by writers used after Close.
var ErrClosed = errors.New("rotate: writer closed")

// Writer is the handle returned by an Opener.
type Writer interface {
	io.Writer
	io.Closer
}

// Opener opens a rotating writer for a file pattern.
type Opener interface {
	Open(pattern string, policy Policy) (Writer, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(pattern string, policy Policy) (Writer, error)

// Open calls f(pattern, policy).
func (f OpenerFunc) Open(pattern string, policy Policy) (Writer, error) {
	return f(pattern, policy)
}

// FileName expands the rotation index in pattern. A pattern without an
// index verb gets ".<index>" appended.
func FileName(pattern string, index int) string {
	if strings.Contains(pattern, "%d") {
		return strings.Replace(pattern, "%d", strconv.Itoa(index), 1)
	}
	return pattern + "." + strconv.Itoa(index)
}

// Backend names accepted by ByName.
const (
	BackendNative     = "native"
	BackendLumberjack = "lumberjack"
	BackendLogRotate  = "logrotate"
)

// ByName returns the opener registered under name. The empty name selects
// the native opener.
func ByName(name string) (Opener, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendNative:
		return NativeOpener{}, nil
	case BackendLumberjack:
		return LumberjackOpener{}, nil
	case BackendLogRotate:
		return LogRotateOpener{}, nil
	default:
		return nil, fmt.Errorf("rotate: unknown writer backend %q", name)
	}
}
