package handler

import (
	"github.com/philipp01105/csplog/core"
)

// Handler persists entries produced by a sink.
type Handler interface {
	// Handle processes a log entry. The entry must not be retained after
	// Handle returns; the sink recycles it.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that keep write counters.
type StatsProvider interface {
	Stats() Snapshot
}
