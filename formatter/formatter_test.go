package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/csplog/core"
)

func TestLineFormatter_Layout(t *testing.T) {
	f := NewLineFormatter()

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 123000000, time.UTC),
		Level:   core.InfoLevel,
		Message: "resource blocked",
		Fields:  []core.Field{core.String("resource", "GET:/api"), core.Int64("count", 3)},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026-02-18 13:00:00.123 INFO resource blocked resource=GET:/api count=3\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestLineFormatter_OneLinePerRecord(t *testing.T) {
	f := NewLineFormatter()

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.ErrorLevel,
		Message: "first\nsecond",
		Err:     errors.New("cause\r\nmore"),
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if strings.Count(output, "\n") != 1 || !strings.HasSuffix(output, "\n") {
		t.Errorf("Expected exactly one trailing newline, got %q", output)
	}
	if !strings.Contains(output, `first\nsecond`) {
		t.Errorf("Expected escaped message, got %q", output)
	}
	if !strings.Contains(output, `error=cause\nmore`) {
		t.Errorf("Expected escaped error, got %q", output)
	}
}

func TestLineFormatter_WithCaller(t *testing.T) {
	f := &LineFormatter{Config: Config{IncludeCaller: true}}

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.WarnLevel,
		Message: "test",
		Caller:  core.CallerInfo{ShortFile: "file.go", Line: 123, Defined: true},
	}

	result, _ := f.Format(entry)
	if !strings.Contains(string(result), "[file.go:123]") {
		t.Errorf("Expected caller in output, got: %s", result)
	}
}

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Logger:  "record",
		Message: "test message",
		Fields:  []core.Field{core.String("key1", "value1")},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026-02-18T13:00:00Z [INFO] record: test message key1=value1\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestFormatters_ResultIsDetached(t *testing.T) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{Time: time.Now(), Level: core.InfoLevel, Message: "first"}

	first, _ := f.Format(entry)
	snapshot := string(first)

	entry.Message = "second"
	_, _ = f.Format(entry)

	if string(first) != snapshot {
		t.Errorf("Formatted bytes changed after reuse of pooled buffer: %q", first)
	}
}
