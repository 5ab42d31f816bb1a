package logger

import "github.com/philipp01105/csplog/handler"

// Stats sums the counters of the logger's own handlers that keep them.
func (l *Logger) Stats() handler.Snapshot {
	var total handler.Snapshot
	for _, h := range l.Handlers() {
		if sp, ok := h.(handler.StatsProvider); ok {
			s := sp.Stats()
			total.ProcessedTotal += s.ProcessedTotal
			total.FailedTotal += s.FailedTotal
		}
	}
	return total
}
