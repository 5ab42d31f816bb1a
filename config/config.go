// Package config reads the few properties the log bootstrap needs.
//
// Properties are flat dotted keys. They come from, highest precedence
// first: explicit WithProperty options, the environment, and a YAML
// properties file. A blank environment variable counts as unset:
//
//	csp.sentinel.log.dir: /var/log/app
//	csp.sentinel.log.writer: lumberjack
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Property keys.
const (
	LogDirKey = "csp.sentinel.log.dir"
	WriterKey = "csp.sentinel.log.writer"
)

// Environment variables.
const (
	LogDirEnv = "CSP_SENTINEL_LOG_DIR"
	WriterEnv = "CSP_SENTINEL_LOG_WRITER"
	FileEnv   = "CSP_SENTINEL_CONFIG_FILE"
)

var envByKey = map[string]string{
	LogDirKey: LogDirEnv,
	WriterKey: WriterEnv,
}

// Config is the resolved bootstrap configuration.
type Config struct {
	// LogDir is the override directory; blank selects the default location.
	LogDir string
	// Writer names the rotating writer backend (native, lumberjack, logrotate).
	Writer string
	// Home is the directory the default location is computed under.
	Home string
}

type loader struct {
	file       string
	fileSet    bool
	properties map[string]string
	lookupEnv  func(string) (string, bool)
	home       string
	userHome   func() (string, error)
}

// Option configures Load.
type Option func(*loader)

// WithProperty sets a property, overriding the environment and the file.
func WithProperty(key, value string) Option {
	return func(l *loader) {
		l.properties[key] = value
	}
}

// WithFile reads properties from a YAML file instead of the one named by
// CSP_SENTINEL_CONFIG_FILE.
func WithFile(path string) Option {
	return func(l *loader) {
		l.file = path
		l.fileSet = true
	}
}

// WithEnv replaces os.LookupEnv.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(l *loader) {
		l.lookupEnv = lookup
	}
}

// WithHome sets the home directory instead of asking the OS.
func WithHome(home string) Option {
	return func(l *loader) {
		l.home = home
	}
}

// Load assembles a Config. A missing properties file is ignored; an
// unreadable or malformed one is an error.
func Load(opts ...Option) (Config, error) {
	l := &loader{
		properties: make(map[string]string),
		lookupEnv:  os.LookupEnv,
		userHome:   os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(l)
	}

	if !l.fileSet {
		l.file, _ = l.lookupEnv(FileEnv)
	}

	fileProps := map[string]string{}
	if strings.TrimSpace(l.file) != "" {
		props, err := LoadFile(l.file)
		switch {
		case err == nil:
			fileProps = props
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, err
		}
	}

	get := func(key string) string {
		if v, ok := l.properties[key]; ok {
			return v
		}
		if v, ok := l.lookupEnv(envByKey[key]); ok && strings.TrimSpace(v) != "" {
			return v
		}
		return fileProps[key]
	}

	cfg := Config{
		LogDir: get(LogDirKey),
		Writer: get(WriterKey),
		Home:   l.home,
	}
	if cfg.Home == "" {
		home, err := l.userHome()
		if err != nil || home == "" {
			home = "."
		}
		cfg.Home = home
	}
	return cfg, nil
}

// LoadFile parses a flat YAML properties file.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	props := map[string]string{}
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return props, nil
}
