package execution

import (
	"context"
	"sync"
)

// MockResult is a canned response for a MockCommandRunner.
type MockResult struct {
	Output []byte
	Err    error
}

// MockCommandRunner implements CommandRunner in memory for tests. Calls
// are recorded in order; responses are looked up by command line, with
// a fallback default.
type MockCommandRunner struct {
	mu      sync.Mutex
	Calls   []Command
	results map[string]MockResult
	Default MockResult
}

// NewMockCommandRunner creates a new MockCommandRunner.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{results: make(map[string]MockResult)}
}

// Respond registers a canned result for the exact command line.
func (m *MockCommandRunner) Respond(cmdline string, output string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[cmdline] = MockResult{Output: []byte(output), Err: err}
}

// Run records the call and returns the canned result for its command
// line, or the default.
func (m *MockCommandRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, cmd)
	if res, ok := m.results[cmd.String()]; ok {
		return res.Output, res.Err
	}
	return m.Default.Output, m.Default.Err
}

// CommandLines returns the recorded command lines in call order.
func (m *MockCommandRunner) CommandLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		lines[i] = c.String()
	}
	return lines
}
