package logbase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/philipp01105/csplog/core"
	"github.com/philipp01105/csplog/formatter"
	"github.com/philipp01105/csplog/handler/filehandler"
	"github.com/philipp01105/csplog/internal/diag"
	"github.com/philipp01105/csplog/internal/pid"
	"github.com/philipp01105/csplog/logdir"
	"github.com/philipp01105/csplog/logger"
	"github.com/philipp01105/csplog/rotate"
)

var (
	// ErrWriterOpen wraps failures of the rotating writer to open.
	ErrWriterOpen = errors.New("logbase: failed to open rotating writer")
	// ErrInvalidName is returned for an empty name or one containing a path separator.
	ErrInvalidName = errors.New("logbase: invalid log name")
	// ErrNoBaseDir is returned when the factory has no base directory.
	ErrNoBaseDir = errors.New("logbase: log base directory not resolved")
)

// Result carries either a handler already bound to its sink or the reason
// none was produced.
type Result struct {
	Handler *filehandler.Handler
	Err     error
}

// OK reports whether a handler was produced.
func (r Result) OK() bool {
	return r.Handler != nil
}

// Factory builds rotating file handlers under one base directory.
type Factory struct {
	dir          string
	opener       rotate.Opener
	newFormatter func() formatter.Formatter
	encoding     encoding.Encoding
	pid          string
	policy       rotate.Policy
	log          *zap.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithOpener sets the rotating writer implementation.
func WithOpener(o rotate.Opener) Option {
	return func(f *Factory) {
		if o != nil {
			f.opener = o
		}
	}
}

// WithFormatter sets the constructor of the formatter bound to each handler.
func WithFormatter(newFormatter func() formatter.Formatter) Option {
	return func(f *Factory) {
		if newFormatter != nil {
			f.newFormatter = newFormatter
		}
	}
}

// WithEncoding sets the character encoding of written records.
func WithEncoding(enc encoding.Encoding) Option {
	return func(f *Factory) {
		if enc != nil {
			f.encoding = enc
		}
	}
}

// WithPID overrides the process identifier used in file names.
func WithPID(id string) Option {
	return func(f *Factory) {
		f.pid = id
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *zap.Logger) Option {
	return func(f *Factory) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFactory creates a factory rooted at dir. A non-blank dir is
// normalized to end with a separator; a blank one leaves the factory
// unable to build.
func NewFactory(dir string, opts ...Option) *Factory {
	if strings.TrimSpace(dir) == "" {
		dir = ""
	} else {
		dir = logdir.Normalize(dir)
	}
	f := &Factory{
		dir:          dir,
		opener:       rotate.NativeOpener{},
		newFormatter: formatter.NewLineFormatter,
		encoding:     unicode.UTF8,
		pid:          pid.String(),
		policy:       rotate.DefaultPolicy,
		log:          diag.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Dir returns the base directory.
func (f *Factory) Dir() string {
	return f.dir
}

// Policy returns the rotation policy handed to the opener.
func (f *Factory) Policy() rotate.Policy {
	return f.policy
}

// BaseName returns <dir><name>.pid<pid>, the file name before the
// rotation index.
func (f *Factory) BaseName(name string) string {
	return f.dir + name + ".pid" + f.pid
}

// Pattern returns the opener pattern for name.
func (f *Factory) Pattern(name string) string {
	return f.BaseName(name) + rotate.IndexSuffix
}

// Build opens a rotating handler for name and makes it the only
// destination of sink, which is then set to accept every level.
//
// Failures never escape as panics or fatal errors: Build logs one
// diagnostic line and returns a Result without handler. In that case the
// sink is left exactly as it was.
func (f *Factory) Build(name string, sink logger.Sink) Result {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return f.fail(name, fmt.Errorf("%w: %q", ErrInvalidName, name))
	}
	if f.dir == "" {
		return f.fail(name, ErrNoBaseDir)
	}

	pattern := f.Pattern(name)
	h, err := filehandler.Open(f.opener, pattern, f.policy)
	if err != nil {
		return f.fail(name, fmt.Errorf("%w: %s: %w", ErrWriterOpen, rotate.FileName(pattern, 0), err))
	}

	h.SetFormatter(f.newFormatter())
	if err := h.SetEncoding(f.encoding); err != nil {
		h.Close()
		return f.fail(name, err)
	}

	if sink != nil {
		logger.DisableOtherHandlers(sink, h)
		sink.SetLevel(core.AllLevel)
	}

	f.log.Info("log handler ready",
		zap.String("name", name),
		zap.String("file", h.Path()),
		zap.String("rotate_at", humanize.IBytes(uint64(f.policy.MaxSize))),
		zap.Int("backups", f.policy.MaxBackups),
	)
	return Result{Handler: h}
}

func (f *Factory) fail(name string, err error) Result {
	f.log.Error("failed to build log handler", zap.String("name", name), zap.Error(err))
	return Result{Err: err}
}
