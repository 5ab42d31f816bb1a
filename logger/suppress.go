package logger

import (
	"reflect"

	"github.com/philipp01105/csplog/handler"
)

// DisableOtherHandlers makes h the only destination of sink: every other
// handler is detached (not closed) and forwarding to the parent sink is
// turned off.
func DisableOtherHandlers(sink Sink, h handler.Handler) {
	if sink == nil || h == nil {
		return
	}
	sink.SetHandlers(h)
	sink.SetUseParentHandlers(false)
}

// sameHandler compares handlers by identity. Handlers of a type that cannot
// be compared with == never match.
func sameHandler(a, b handler.Handler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
