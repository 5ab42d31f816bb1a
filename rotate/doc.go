// Package rotate defines the rotating-writer contract used by file
// handlers and ships three implementations of it.
//
// An Opener turns a file pattern and a Policy into a Writer. Patterns carry
// an index verb (IndexSuffix, ".%d"); FileName expands it and index 0 is
// always the active file.
//
//   - NativeOpener rotates by size with index-numbered backups
//     (<base>.0 active, <base>.1 ... <base>.N retained).
//   - LumberjackOpener delegates to gopkg.in/natefinch/lumberjack.v2.
//   - LogRotateOpener delegates to github.com/jrick/logrotate.
//
// ByName maps the configuration value csp.sentinel.log.writer to one of them.
package rotate
