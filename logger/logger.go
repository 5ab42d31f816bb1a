package logger

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/csplog/core"
	"github.com/philipp01105/csplog/handler"
)

// Sink is the part of a logger the bootstrap needs: its accepted level and
// its set of output handlers.
type Sink interface {
	Name() string
	Handlers() []handler.Handler
	AddHandler(h handler.Handler)
	RemoveHandler(h handler.Handler)
	SetHandlers(hs ...handler.Handler)
	SetUseParentHandlers(use bool)
	SetLevel(level core.Level)
	Level() core.Level
}

// sinkState is shared by a Logger and every child created with With.
type sinkState struct {
	name      string
	parent    *Logger
	level     atomic.Int32
	useParent atomic.Bool

	mu       sync.RWMutex
	handlers []handler.Handler // copy-on-write
}

// Logger is a named sink. Its level and handler set may change at runtime;
// an entry accepted by the level check goes to the logger's own handlers
// and then, while forwarding is enabled, to the parent's. The Sink methods
// of a nil *Logger report nothing and change nothing.
type Logger struct {
	state         *sinkState
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

var _ Sink = (*Logger)(nil)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	parent        *Logger
	handlers      []handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a builder for a logger called name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:       name,
		level:      core.InfoLevel,
		callerSkip: 3,
	}
}

// WithHandler adds a handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	if h != nil {
		b.handlers = append(b.handlers, h)
	}
	return b
}

// WithParent makes the logger forward accepted entries to parent's handlers.
func (b *Builder) WithParent(parent *Logger) *Builder {
	b.parent = parent
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	s := &sinkState{
		name:     b.name,
		parent:   b.parent,
		handlers: append([]handler.Handler(nil), b.handlers...),
	}
	s.level.Store(int32(b.level))
	s.useParent.Store(b.parent != nil)

	return &Logger{
		state:         s,
		fields:        append([]core.Field(nil), b.fields...),
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
}

// Name returns the sink name.
func (l *Logger) Name() string {
	if l == nil {
		return ""
	}
	return l.state.name
}

// Level returns the lowest level the logger accepts.
func (l *Logger) Level() core.Level {
	if l == nil {
		return core.InfoLevel
	}
	return core.Level(l.state.level.Load())
}

// SetLevel changes the lowest level the logger accepts.
func (l *Logger) SetLevel(level core.Level) {
	if l == nil {
		return
	}
	l.state.level.Store(int32(level))
}

// Handlers returns a copy of the logger's own handlers.
func (l *Logger) Handlers() []handler.Handler {
	if l == nil {
		return nil
	}
	l.state.mu.RLock()
	defer l.state.mu.RUnlock()
	return append([]handler.Handler(nil), l.state.handlers...)
}

// AddHandler appends h to the logger's handlers.
func (l *Logger) AddHandler(h handler.Handler) {
	if l == nil || h == nil {
		return
	}
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	next := make([]handler.Handler, 0, len(l.state.handlers)+1)
	next = append(next, l.state.handlers...)
	l.state.handlers = append(next, h)
}

// SetHandlers replaces the logger's handlers with hs. Nil handlers are
// skipped and replaced handlers are not closed.
func (l *Logger) SetHandlers(hs ...handler.Handler) {
	if l == nil {
		return
	}
	next := make([]handler.Handler, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			next = append(next, h)
		}
	}

	l.state.mu.Lock()
	l.state.handlers = next
	l.state.mu.Unlock()
}

// RemoveHandler removes every occurrence of h. The handler is not closed.
// Handlers of a type that cannot be compared are never matched; use
// SetHandlers to drop them.
func (l *Logger) RemoveHandler(h handler.Handler) {
	if l == nil {
		return
	}
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	next := make([]handler.Handler, 0, len(l.state.handlers))
	for _, cur := range l.state.handlers {
		if !sameHandler(cur, h) {
			next = append(next, cur)
		}
	}
	l.state.handlers = next
}

// SetUseParentHandlers turns forwarding to the parent on or off. It has no
// effect on a logger without parent.
func (l *Logger) SetUseParentHandlers(use bool) {
	if l == nil {
		return
	}
	l.state.useParent.Store(use && l.state.parent != nil)
}

// UseParentHandlers reports whether accepted entries are forwarded to the parent.
func (l *Logger) UseParentHandlers() bool {
	if l == nil {
		return false
	}
	return l.state.useParent.Load()
}

// With creates a child logger carrying extra fields. The child shares the
// parent's name, level and handlers; changing them on either is visible
// to both.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		state:         l.state,
		fields:        newFields,
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip,
	}
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if level < l.Level() {
		return
	}
	l.log(level, msg, nil, fields)
}

// LogErr logs a message with an attached error at the specified level.
func (l *Logger) LogErr(level core.Level, err error, msg string, fields ...core.Field) {
	if level < l.Level() {
		return
	}
	l.log(level, msg, err, fields)
}

func (l *Logger) log(level core.Level, msg string, err error, fields []core.Field) {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Level = level
	entry.Logger = l.state.name
	entry.Message = msg
	entry.Err = err
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}
	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}
	l.dispatch(entry)
}

// dispatch hands entry to the logger's handlers and, while forwarding is
// enabled, to every ancestor's. Handler failures are counted by the
// handlers themselves; logging never reports back to the call site.
func (l *Logger) dispatch(entry *core.Entry) {
	for s := l.state; s != nil; {
		s.mu.RLock()
		handlers := s.handlers
		s.mu.RUnlock()

		for _, h := range handlers {
			_ = h.Handle(entry)
		}

		if !s.useParent.Load() || s.parent == nil {
			break
		}
		s = s.parent.state
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.Level() {
		return
	}
	l.log(core.DebugLevel, msg, nil, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.Level() {
		return
	}
	l.log(core.InfoLevel, msg, nil, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.Level() {
		return
	}
	l.log(core.WarnLevel, msg, nil, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.Level() {
		return
	}
	l.log(core.ErrorLevel, msg, nil, fields)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.Level() {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.Level() {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.Level() {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.Level() {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil, nil)
}

// Close closes the logger's own handlers. Parent handlers are left alone.
func (l *Logger) Close() error {
	return handler.NewMultiHandler(l.Handlers()...).Close()
}
