package logger

import "github.com/philipp01105/csplog/core"

// Field constructors re-exported so most callers only import logger.
var (
	String   = core.String
	Int64    = core.Int64
	Bool     = core.Bool
	Duration = core.Duration
	Err      = core.Error
	Any      = core.Any
)

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Int64(key, int64(val))
}
