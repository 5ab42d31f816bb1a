package logger

import (
	"log/slog"

	"github.com/philipp01105/csplog/core"
	"github.com/philipp01105/csplog/handler"
)

// Slog returns a log/slog logger feeding this sink. Records pass the
// sink's current level and reach the same handlers as entries logged
// through l, including the parent's while forwarding is enabled.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(handler.NewSlogHandler(sinkHandler{l}, l.Name(), core.AllLevel))
}

// sinkHandler adapts a Logger to handler.Handler for the slog bridge.
type sinkHandler struct {
	l *Logger
}

func (s sinkHandler) Handle(entry *core.Entry) error {
	if s.l == nil || entry.Level < s.l.Level() {
		return nil
	}
	if len(s.l.fields) > 0 {
		entry.Fields = append(append([]core.Field(nil), s.l.fields...), entry.Fields...)
	}
	s.l.dispatch(entry)
	return nil
}

// Close is a no-op; the sink's handlers are owned by the sink.
func (sinkHandler) Close() error {
	return nil
}
