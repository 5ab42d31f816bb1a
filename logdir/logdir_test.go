package logdir

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sep = string(filepath.Separator)

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{sep + "var" + sep + "log" + sep + "app", sep + "var" + sep + "log" + sep + "app" + sep},
		{sep + "var" + sep + "log" + sep + "app" + sep, sep + "var" + sep + "log" + sep + "app" + sep},
		{sep + "var" + sep + "log" + sep + "app" + sep + sep + sep, sep + "var" + sep + "log" + sep + "app" + sep},
		{sep, sep},
		{"relative", "relative" + sep},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if Normalize(got) != got {
				t.Errorf("Normalize is not idempotent for %q", tt.in)
			}
		})
	}
}

func TestResolve_Override(t *testing.T) {
	base := t.TempDir()
	log, logs := observed()

	for _, override := range []string{
		filepath.Join(base, "app"),
		filepath.Join(base, "app") + sep,
		filepath.Join(base, "app") + sep + sep,
	} {
		res := Resolver{Override: override, Home: "/ignored", Log: log}.Resolve()

		want := filepath.Join(base, "app") + sep
		if res.Dir != want {
			t.Errorf("Resolve(%q).Dir = %q, want %q", override, res.Dir, want)
		}
		if res.Err != nil {
			t.Errorf("Resolve(%q).Err = %v", override, res.Err)
		}
	}

	if info, err := os.Stat(filepath.Join(base, "app")); err != nil || !info.IsDir() {
		t.Errorf("override directory was not created: %v", err)
	}
	if got := logs.FilterMessage("log directory resolved").Len(); got != 3 {
		t.Errorf("expected an info line per resolution, got %d", got)
	}
}

func TestResolve_OverrideScenario(t *testing.T) {
	if filepath.Separator != '/' {
		t.Skip("unix path scenario")
	}
	log, _ := observed()
	res := Resolver{
		Override: "/var/log/app",
		MkdirAll: func(string, os.FileMode) error { return nil },
		Stat:     func(string) (os.FileInfo, error) { return nil, os.ErrNotExist },
		Log:      log,
	}.Resolve()

	if res.Dir != "/var/log/app/" {
		t.Errorf("Dir = %q, want /var/log/app/", res.Dir)
	}
}

func TestResolve_DefaultScenario(t *testing.T) {
	if filepath.Separator != '/' {
		t.Skip("unix path scenario")
	}
	var created string
	log, _ := observed()
	for _, override := range []string{"", "   ", "\t\n"} {
		res := Resolver{
			Override: override,
			Home:     "/home/alice",
			MkdirAll: func(p string, _ os.FileMode) error { created = p; return nil },
			Stat:     func(string) (os.FileInfo, error) { return nil, os.ErrNotExist },
			Log:      log,
		}.Resolve()

		if res.Dir != "/home/alice/logs/csp/" {
			t.Errorf("override %q: Dir = %q, want /home/alice/logs/csp/", override, res.Dir)
		}
	}
	if created != "/home/alice/logs/csp/" {
		t.Errorf("MkdirAll called with %q", created)
	}
}

func TestResolve_DefaultUnderHome(t *testing.T) {
	home := t.TempDir()
	log, _ := observed()

	res := Resolver{Home: home + sep, Log: log}.Resolve()

	want := filepath.Join(home, "logs", "csp") + sep
	if res.Dir != want {
		t.Errorf("Dir = %q, want %q", res.Dir, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("default directory was not created: %v", err)
	}
}

func TestDefault_BlankHome(t *testing.T) {
	want := "." + sep + filepath.Join("logs", "csp") + sep
	if got := Default(""); got != want {
		t.Errorf("Default(\"\") = %q, want %q", got, want)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	base := t.TempDir()
	log, _ := observed()
	r := Resolver{Override: filepath.Join(base, "x"), Log: log}

	first, second := r.Resolve(), r.Resolve()
	if first.Dir != second.Dir {
		t.Errorf("resolutions differ: %q vs %q", first.Dir, second.Dir)
	}
	if Current() != second.Dir {
		t.Errorf("Current() = %q, want %q", Current(), second.Dir)
	}
}

func TestResolve_CreationFailure(t *testing.T) {
	log, logs := observed()
	cause := errors.New("permission denied")

	res := Resolver{
		Override: filepath.Join("no", "access"),
		MkdirAll: func(string, os.FileMode) error { return cause },
		Stat:     func(string) (os.FileInfo, error) { return nil, os.ErrNotExist },
		Log:      log,
	}.Resolve()

	want := filepath.Join("no", "access") + sep
	if res.Dir != want {
		t.Errorf("Dir = %q, want %q", res.Dir, want)
	}
	if !errors.Is(res.Err, ErrDirectoryCreation) || !errors.Is(res.Err, cause) {
		t.Errorf("Err = %v, want ErrDirectoryCreation wrapping the cause", res.Err)
	}
	if Current() != want {
		t.Errorf("Current() = %q, path must be published despite the failure", Current())
	}

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warns) != 1 || !strings.Contains(warns[0].Message, "failed to create") {
		t.Errorf("expected one warning, got %+v", warns)
	}
	if logs.FilterLevelExact(zapcore.InfoLevel).Len() != 1 {
		t.Error("the resolved-path info line is emitted even on failure")
	}
}

func TestResolve_PathIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	log, _ := observed()

	res := Resolver{Override: file, Log: log}.Resolve()
	if res.Err == nil {
		t.Error("expected an error when the path is a regular file")
	}
	if res.Dir != file+sep {
		t.Errorf("Dir = %q", res.Dir)
	}
}

func TestResolve_ExistingDirectorySkipsCreation(t *testing.T) {
	dir := t.TempDir()
	log, _ := observed()

	res := Resolver{
		Override: dir,
		MkdirAll: func(string, os.FileMode) error { t.Error("MkdirAll called for an existing directory"); return nil },
		Log:      log,
	}.Resolve()
	if res.Err != nil {
		t.Errorf("Err = %v", res.Err)
	}
}
