package diag

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_SplitsByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	log := New(&out, &errOut)

	log.Debug("not shown")
	log.Info("log directory resolved", zap.String("dir", "/var/log/app/"))
	log.Warn("failed to create log directory")
	log.Error("failed to open log file")

	if got := strings.Count(out.String(), "\n"); got != 1 {
		t.Errorf("stdout lines = %d, want 1: %q", got, out.String())
	}
	if !strings.Contains(out.String(), "INFO LogBase log directory resolved") {
		t.Errorf("unexpected stdout: %q", out.String())
	}
	if !strings.Contains(out.String(), `"dir": "/var/log/app/"`) {
		t.Errorf("expected dir field on stdout: %q", out.String())
	}

	if got := strings.Count(errOut.String(), "\n"); got != 2 {
		t.Errorf("stderr lines = %d, want 2: %q", got, errOut.String())
	}
	if strings.Contains(errOut.String(), "resolved") {
		t.Error("info line leaked to stderr")
	}
}

func TestDefault_IsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() must return the same logger")
	}
}
