package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment is a snapshot of the process environment variables the
// resolution engine consults. It is captured once at startup and
// passed in explicitly so the core packages never read the
// environment themselves.
type Environment struct {
	// PathDirs are the PATH entries, in order.
	PathDirs []string
	// VirtualEnv is the root of the active virtual environment, or
	// empty (VIRTUAL_ENV).
	VirtualEnv string
	// DefaultVersion is the PY_PYTHON preference, or empty.
	DefaultVersion string
	// MajorDefaults maps a major number to the PY_PYTHON{major}
	// preference, e.g. 3 -> "3.6".
	MajorDefaults map[uint]string
}

// CaptureEnvironment snapshots the current process environment.
func CaptureEnvironment() Environment {
	env := Environment{
		VirtualEnv:     os.Getenv("VIRTUAL_ENV"),
		DefaultVersion: os.Getenv("PY_PYTHON"),
		MajorDefaults:  make(map[uint]string),
	}

	if path := os.Getenv("PATH"); path != "" {
		env.PathDirs = strings.Split(path, string(os.PathListSeparator))
	}

	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, "PY_PYTHON") {
			continue
		}
		suffix := strings.TrimPrefix(name, "PY_PYTHON")
		if suffix == "" {
			continue
		}
		major, err := strconv.ParseUint(suffix, 10, 32)
		if err != nil {
			continue
		}
		env.MajorDefaults[uint(major)] = value
	}

	return env
}

// SearchPath returns the directories to scan, in order: the PATH
// entries followed by the configured extra paths.
func (e Environment) SearchPath(cfg *Config) []string {
	dirs := make([]string, 0, len(e.PathDirs))
	dirs = append(dirs, e.PathDirs...)
	if cfg != nil {
		dirs = append(dirs, cfg.Search.ExtraPaths...)
	}
	return dirs
}
