package toolchain

import (
	"context"
	"fmt"
	"sync"
)

var _ Runner = (*MockRunner)(nil)

// MockRunner records every command instead of spawning it
type MockRunner struct {
	mu       sync.RWMutex
	calls    []Command
	failures map[string]error
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		failures: make(map[string]error),
	}
}

// Run records cmd and returns the failure configured for its binary, if any
func (m *MockRunner) Run(ctx context.Context, cmd Command) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	recorded := cmd
	recorded.Args = append([]string(nil), cmd.Args...)
	m.calls = append(m.calls, recorded)

	if err, ok := m.failures[cmd.Name]; ok {
		return err
	}
	return nil
}

// FailOn makes every invocation of the named binary fail with err. A nil
// err simulates a non-zero exit.
func (m *MockRunner) FailOn(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err == nil {
		err = fmt.Errorf("%s exited with status 1", name)
	}
	m.failures[name] = err
}

// Calls returns the recorded commands in invocation order
func (m *MockRunner) Calls() []Command {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]Command(nil), m.calls...)
}

// Names returns the binaries invoked, in order
func (m *MockRunner) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.calls))
	for _, c := range m.calls {
		names = append(names, c.Name)
	}
	return names
}

// Reset clears recorded calls but keeps configured failures
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = nil
}
