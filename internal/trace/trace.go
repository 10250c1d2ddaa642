// Package trace derives waveform artifact locations for traced test
// runs. The wrapper only names the artifacts and prepares the output
// directory; the testbench harness performs the actual capture, guided
// by the environment variables set per test.
package trace

import (
	"fmt"
	"os"
	"path/filepath"

	"simtool/internal/domain"
)

// Environment variables understood by the testbench harness.
const (
	EnvDumpTrace = "SIMTOOL_DUMP_TRACE"
	EnvVCDPath   = "SIMTOOL_TRACE_VCD"
	EnvGTKWPath  = "SIMTOOL_TRACE_GTKW"
)

// Capture names and prepares waveform artifacts for a run.
type Capture struct {
	dir string
}

// NewCapture creates a Capture writing artifacts under dir.
func NewCapture(dir string) *Capture {
	return &Capture{dir: dir}
}

// Dir returns the trace output directory.
func (c *Capture) Dir() string {
	return c.dir
}

// Prepare creates the trace output directory.
func (c *Capture) Prepare() error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create trace dir: %w", err)
	}
	return nil
}

// VCDPath returns the waveform file path for a test. Dotted names
// contain no path separators, so the identifier is used directly.
func (c *Capture) VCDPath(id domain.TestID) string {
	return filepath.Join(c.dir, id.Name+".vcd")
}

// GTKWPath returns the gtkwave save file path for a test.
func (c *Capture) GTKWPath(id domain.TestID) string {
	return filepath.Join(c.dir, id.Name+".gtkw")
}

// Env returns the environment the harness needs to capture exactly one
// waveform/save-file pair for the given test.
func (c *Capture) Env(id domain.TestID) []string {
	return []string{
		EnvDumpTrace + "=1",
		EnvVCDPath + "=" + c.VCDPath(id),
		EnvGTKWPath + "=" + c.GTKWPath(id),
	}
}
