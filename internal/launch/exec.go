package launch

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Execer replaces the current process image with another executable.
// This allows for mocking in tests and dependency injection.
type Execer interface {
	// Exec runs path with argv, inheriting the current environment.
	// On success it never returns; any return value is a fatal error.
	Exec(path string, argv []string) error
}

// OSExecer is the default implementation using execve(2)
type OSExecer struct{}

// NewOSExecer creates a new OSExecer instance
func NewOSExecer() *OSExecer {
	return &OSExecer{}
}

// Exec replaces the current process image
func (e *OSExecer) Exec(path string, argv []string) error {
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	// Unreachable: exec either replaced the process or failed.
	return nil
}
