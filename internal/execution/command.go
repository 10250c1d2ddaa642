package execution

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Command describes a single external tool invocation.
type Command struct {
	Argv []string // program and arguments; Argv[0] is the binary
	Dir  string   // working directory, empty for cwd
	Env  []string // KEY=VALUE pairs appended to the current environment
}

// String returns the command line for logging.
func (c Command) String() string {
	return strings.Join(c.Argv, " ")
}

// CommandRunner provides an abstraction over external process dispatch
// for testability. Run blocks until the process exits and returns its
// combined output; a non-zero exit is returned as the error.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// OSCommandRunner implements CommandRunner using os/exec.
type OSCommandRunner struct{}

// NewOSCommandRunner creates a new OSCommandRunner.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run executes the command and waits for completion. Cancelling the
// context kills the child process.
func (r *OSCommandRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd.Argv[0], cmd.Argv[1:]...)
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)
	return c.CombinedOutput()
}
