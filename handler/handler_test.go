package handler

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/csplog/core"
)

// captureHandler records copies of the entries it receives.
type captureHandler struct {
	entries  []core.Entry
	handErr  error
	closeErr error
	closed   bool
}

func (c *captureHandler) Handle(entry *core.Entry) error {
	e := *entry
	e.Fields = append([]core.Field(nil), entry.Fields...)
	c.entries = append(c.entries, e)
	return c.handErr
}

func (c *captureHandler) Close() error {
	c.closed = true
	return c.closeErr
}

func TestMultiHandler_FanOut(t *testing.T) {
	h1, h2 := &captureHandler{}, &captureHandler{}
	multi := NewMultiHandler(h1, h2)

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "multi test"

	if err := multi.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if len(h1.entries) != 1 || len(h2.entries) != 1 {
		t.Fatalf("expected both children to receive the entry, got %d and %d", len(h1.entries), len(h2.entries))
	}
}

func TestMultiHandler_CollectsErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	h1 := &captureHandler{handErr: errA, closeErr: errA}
	h2 := &captureHandler{}
	h3 := &captureHandler{handErr: errB, closeErr: errB}
	multi := NewMultiHandler(h1, h2, h3)

	err := multi.Handle(&core.Entry{Message: "x"})
	if got := multierr.Errors(err); len(got) != 2 {
		t.Errorf("expected 2 combined errors, got %v", got)
	}
	if len(h2.entries) != 1 {
		t.Error("a failing child must not stop later children")
	}

	err = multi.Close()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Close() = %v, want both child errors", err)
	}
	if !h1.closed || !h2.closed || !h3.closed {
		t.Error("expected every child to be closed")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	capture := &captureHandler{}
	log := slog.New(NewSlogHandler(capture, "record", core.InfoLevel))

	log.Debug("filtered")
	log.With("app", "demo").WithGroup("req").Warn("slow", "id", 7, "took", 2*time.Second)

	if len(capture.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(capture.entries))
	}
	e := capture.entries[0]
	if e.Level != core.WarnLevel || e.Message != "slow" || e.Logger != "record" {
		t.Errorf("unexpected entry %+v", e)
	}

	want := map[string]string{"app": "demo", "req.id": "7", "req.took": "2s"}
	for _, f := range e.Fields {
		if v, ok := want[f.Key]; ok && v == f.StringValue() {
			delete(want, f.Key)
		}
	}
	if len(want) != 0 {
		t.Errorf("missing fields %v in %+v", want, e.Fields)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandler(&captureHandler{}, "x", core.AllLevel)
	if !h.Enabled(context.Background(), slog.LevelDebug-4) {
		t.Error("AllLevel should enable every slog level")
	}
}

func TestStats(t *testing.T) {
	s := NewStats()
	s.IncrementProcessed()
	s.IncrementProcessed()
	s.IncrementFailed()

	snap := s.GetSnapshot()
	if snap.ProcessedTotal != 2 || snap.FailedTotal != 1 {
		t.Errorf("unexpected snapshot %+v", snap)
	}

	s.Reset()
	if snap := s.GetSnapshot(); snap.ProcessedTotal != 0 || snap.FailedTotal != 0 {
		t.Errorf("Reset() left %+v", snap)
	}
}
