package logbase

import (
	"go.uber.org/zap"

	"github.com/philipp01105/csplog/config"
	"github.com/philipp01105/csplog/logdir"
	"github.com/philipp01105/csplog/logger"
	"github.com/philipp01105/csplog/rotate"
)

// Well-known log names.
const (
	RecordLogName  = "sentinel-record.log"
	CommandLogName = "command-center.log"
)

// Env is the result of the process-wide log bootstrap: the resolved base
// directory and a factory bound to it.
type Env struct {
	// Dir is the resolved base directory, ending with a separator.
	Dir string
	// DirErr reports a failure to create Dir. It is informational only.
	DirErr error
	// Factory builds handlers under Dir.
	Factory *Factory
}

// Init resolves the base directory from cfg and prepares a factory for it.
// It is meant to run once during process start. An unknown writer backend
// is reported and replaced by the native one; options override anything
// derived from cfg.
func Init(cfg config.Config, opts ...Option) *Env {
	// Options are applied once up front so the resolver reports to the
	// same diagnostic logger as the factory.
	f := NewFactory("", opts...)

	res := logdir.Resolver{
		Override: cfg.LogDir,
		Home:     cfg.Home,
		Log:      f.log,
	}.Resolve()

	opener, err := rotate.ByName(cfg.Writer)
	if err != nil {
		f.log.Warn("unknown log writer, using native", zap.String("writer", cfg.Writer), zap.Error(err))
		opener = rotate.NativeOpener{}
	}

	all := append([]Option{WithOpener(opener)}, opts...)
	return &Env{
		Dir:     res.Dir,
		DirErr:  res.Err,
		Factory: NewFactory(res.Dir, all...),
	}
}

// Handler builds a handler for the sink registered under name.
func (e *Env) Handler(name string) Result {
	return e.Factory.Build(name, logger.Get(name))
}
