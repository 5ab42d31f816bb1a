// Package logger provides named sinks.
//
// A Logger has a name, a level and a mutable set of handlers. Loggers
// obtained with Get are children of Root, which prints to standard output;
// until a logger gets handlers of its own, its records show up on the
// console through Root.
//
//	rec := logger.Get("sentinel-record")
//	rec.Info("pass", logger.String("resource", "GET:/api"))
//
// DisableOtherHandlers detaches every destination of a sink except one
// and stops forwarding to Root. The bootstrap in package logbase uses it
// to make a rotating file the exclusive destination of a sink.
//
// Level checks happen before any allocation, so filtered-out messages
// cost a single atomic load and an integer comparison.
package logger
