// Package handler defines the Handler interface: the destination a sink
// writes its entries to.
//
// Concrete handlers live in subpackages. consolehandler writes to an
// io.Writer and backs the root sink; filehandler writes to a rotating file
// and is what the bootstrap factory attaches to named sinks.
//
// MultiHandler fans one entry out to several handlers, and SlogHandler
// adapts any Handler to log/slog so code logging through the standard
// library ends up in the same files.
package handler
