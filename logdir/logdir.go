package logdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/philipp01105/csplog/internal/diag"
)

// Namespace is the subpath appended to the home directory when no
// override is configured.
var Namespace = filepath.Join("logs", "csp")

// ErrDirectoryCreation wraps failures to create the resolved directory.
var ErrDirectoryCreation = errors.New("logdir: failed to create log directory")

// Result is the outcome of a resolution. Dir is always set; Err reports a
// creation failure that did not prevent resolution.
type Result struct {
	Dir string
	Err error
}

// Resolver computes the log base directory.
type Resolver struct {
	// Override is the operator supplied directory; blank means unset.
	Override string
	// Home is the directory the default location is computed under.
	Home string
	// MkdirAll creates the directory (default: os.MkdirAll).
	MkdirAll func(path string, perm os.FileMode) error
	// Stat checks whether the directory exists (default: os.Stat).
	Stat func(path string) (os.FileInfo, error)
	// Log receives the diagnostic lines (default: diag.Default()).
	Log *zap.Logger
}

var current atomic.Pointer[string]

// Current returns the most recently resolved directory, or "" if nothing
// has been resolved in this process.
func Current() string {
	if p := current.Load(); p != nil {
		return *p
	}
	return ""
}

// Resolve picks the override when it is non-blank and <Home>/logs/csp/
// otherwise, normalizes it to end with exactly one separator, tries to
// create it and publishes it for Current. Creation failures are logged
// and returned in Result.Err; the path is kept either way.
func (r Resolver) Resolve() Result {
	log := r.Log
	if log == nil {
		log = diag.Default()
	}

	var dir string
	if strings.TrimSpace(r.Override) != "" {
		dir = Normalize(r.Override)
	} else {
		dir = Default(r.Home)
	}

	res := Result{Dir: dir}
	if err := r.ensure(dir); err != nil {
		res.Err = fmt.Errorf("%w: %s: %w", ErrDirectoryCreation, dir, err)
		log.Warn("failed to create log directory", zap.String("dir", dir), zap.Error(err))
	}

	current.Store(&dir)
	log.Info("log directory resolved", zap.String("dir", dir))
	return res
}

func (r Resolver) ensure(dir string) error {
	stat := r.Stat
	if stat == nil {
		stat = os.Stat
	}
	mkdirAll := r.MkdirAll
	if mkdirAll == nil {
		mkdirAll = os.MkdirAll
	}

	info, err := stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%s exists and is not a directory", dir)
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	return mkdirAll(dir, 0755)
}

// Default returns <home>/logs/csp/ with separator normalization. A blank
// home falls back to the working directory.
func Default(home string) string {
	if strings.TrimSpace(home) == "" {
		home = "."
	}
	return Normalize(Normalize(home) + Namespace)
}

// Normalize strips every trailing path separator from dir and appends
// exactly one. A root path normalizes to itself.
func Normalize(dir string) string {
	return strings.TrimRight(dir, separators) + string(filepath.Separator)
}

var separators = func() string {
	if runtime.GOOS == "windows" {
		return `\/`
	}
	return string(filepath.Separator)
}()
