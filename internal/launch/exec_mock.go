package launch

// MockExecer records exec calls instead of performing them.
// Used by tests that drive the full command path.
type MockExecer struct {
	// Err is returned by Exec; the zero value simulates a successful
	// handoff (which in reality never returns).
	Err error

	// Calls holds one entry per Exec invocation.
	Calls []MockExecCall
}

// MockExecCall captures the arguments of a single Exec invocation.
type MockExecCall struct {
	Path string
	Argv []string
}

// NewMockExecer creates a new MockExecer instance
func NewMockExecer() *MockExecer {
	return &MockExecer{}
}

// Exec records the call and returns the configured error.
func (e *MockExecer) Exec(path string, argv []string) error {
	e.Calls = append(e.Calls, MockExecCall{Path: path, Argv: argv})
	return e.Err
}
