// Package logbase bootstraps file logging for a process.
//
// Init resolves the log base directory once (see package logdir) and
// returns an Env holding it together with a Factory. For each named log
// stream the Factory opens a size-rotating file
//
//	<dir><name>.pid<pid>.<index>
//
// with the fixed policy of 200 MiB per file, one retained backup and
// append mode, binds a LineFormatter and UTF-8 encoding, and makes the
// result the exclusive destination of the stream's sink:
//
//	env := logbase.Init(cfg)
//	if res := env.Handler(logbase.RecordLogName); res.OK() {
//		defer res.Handler.Close()
//	}
//
// Nothing here stops the process. A directory that cannot be created is
// reported and used anyway; a file that cannot be opened is reported and
// yields a Result without handler, leaving the sink untouched.
package logbase
