package rotatetest

import (
	"errors"
	"testing"

	"github.com/philipp01105/csplog/rotate"
)

func TestMemoryOpener(t *testing.T) {
	o := NewMemoryOpener()

	w, err := o.Open("/logs/record.pid1.%d", rotate.DefaultPolicy)
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("one\n"))

	mw, ok := o.Writer("/logs/record.pid1.0")
	if !ok {
		t.Fatal("writer not registered under the active file name")
	}
	if mw.String() != "one\n" {
		t.Errorf("content = %q", mw.String())
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("x")); !errors.Is(err, rotate.ErrClosed) {
		t.Errorf("Write() after Close = %v", err)
	}

	calls := o.Calls()
	if len(calls) != 1 || calls[0].Policy != rotate.DefaultPolicy {
		t.Errorf("unexpected calls %+v", calls)
	}
}

func TestMemoryOpener_Err(t *testing.T) {
	o := NewMemoryOpener()
	o.Err = errors.New("permission denied")

	if _, err := o.Open("/logs/x.%d", rotate.DefaultPolicy); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := o.Writer("/logs/x.0"); ok {
		t.Error("failed open must not register a writer")
	}
}
