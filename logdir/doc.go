// Package logdir resolves the single base directory that every rotating
// log file of the process lives in.
//
// An operator override (configuration key csp.sentinel.log.dir) wins when
// it is non-blank; otherwise the directory is <home>/logs/csp/. Either way
// the result ends with exactly one path separator, so callers can append a
// file name without a join.
//
// Resolution is best effort. The directory is created if missing, but a
// failure only produces a warning: the path is still returned, because the
// directory may appear later or the eventual open will report its own
// error. A line naming the resolved directory is always printed to
// standard output.
//
// Resolve publishes its result process-wide; Current returns the last
// value. Bootstrap code should prefer passing Result.Dir explicitly.
package logdir
