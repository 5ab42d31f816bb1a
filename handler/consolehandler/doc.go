// Package consolehandler provides the handler behind the root sink: it
// writes formatted entries to any io.Writer (default: os.Stdout).
//
// Named sinks forward to the root sink until a file handler is bootstrapped
// for them, at which point they stop forwarding and the console no longer
// sees their records.
package consolehandler
