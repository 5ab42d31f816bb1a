// Package filehandler provides the handler attached to bootstrapped sinks:
// it renders each entry with a Formatter, encodes it (UTF-8 unless told
// otherwise) and writes it to a rotate.Writer.
//
// The handler does not decide file names or rotation; it receives an
// already opened writer, typically from logbase.Factory, and only owns the
// per-record path. Writes are serialized with a mutex so the writer never
// sees interleaved records.
package filehandler
