package logger

import (
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/csplog/core"
	"github.com/philipp01105/csplog/formatter"
	"github.com/philipp01105/csplog/handler/consolehandler"
)

var (
	root *Logger

	registryMu sync.Mutex
	registry   = make(map[string]*Logger)
)

func init() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	root = NewBuilder("").
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()
}

// Root returns the root sink. It writes to standard output and is the
// parent of every logger obtained with Get.
func Root() *Logger {
	return root
}

// Get returns the named sink, creating it on first use. New sinks accept
// InfoLevel and above and forward to Root until given their own handler.
func Get(name string) *Logger {
	if name == "" {
		return root
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if l, ok := registry[name]; ok {
		return l
	}
	l := NewBuilder(name).WithParent(root).Build()
	registry[name] = l
	return l
}

// Names returns the names of all registered sinks, sorted.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CloseAll closes the handlers of every registered sink and returns the
// combined error.
func CloseAll() error {
	registryMu.Lock()
	loggers := make([]*Logger, 0, len(registry))
	for _, l := range registry {
		loggers = append(loggers, l)
	}
	registryMu.Unlock()

	var err error
	for _, l := range loggers {
		err = multierr.Append(err, l.Close())
	}
	return err
}
