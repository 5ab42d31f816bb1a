package consolehandler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/philipp01105/csplog/core"
	"github.com/philipp01105/csplog/formatter"
)

func TestConsoleHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "test message"

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", buf.String())
	}
	if got := h.Stats().ProcessedTotal; got != 1 {
		t.Errorf("ProcessedTotal = %d, want 1", got)
	}
}

func TestConsoleHandler_AfterClose(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := h.Handle(&core.Entry{Message: "late"}); err != nil {
		t.Errorf("Handle() after Close error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output after Close, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestConsoleHandler_WriteError(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: failingWriter{}})

	if err := h.Handle(&core.Entry{Message: "x"}); err == nil {
		t.Fatal("expected write error")
	}
	if got := h.Stats().FailedTotal; got != 1 {
		t.Errorf("FailedTotal = %d, want 1", got)
	}
}
