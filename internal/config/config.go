package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all configuration for both binaries.
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Output settings
	TraceDir    string
	ResultsDir  string
	ResultsFile string

	// Test framework invocation (argv prefix, dotted name appended)
	Runner []string

	// Lint tool binaries
	Black   string
	Flake8  string
	Pyright string

	// Directories to skip when scanning for tests
	SkipDirs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags shared across commands.
type Flags struct {
	Query    string
	List     bool
	Trace    bool
	Verbose  bool
	Failed   bool
	FailFast bool
	TestDir  string
}

// fileConfig mirrors the optional simtool.toml layout.
type fileConfig struct {
	ProjectPath string   `toml:"project_path"`
	TestPath    string   `toml:"test_path"`
	TraceDir    string   `toml:"trace_dir"`
	ResultsDir  string   `toml:"results_dir"`
	ResultsFile string   `toml:"results_file"`
	Runner      []string `toml:"runner"`
	SkipDirs    []string `toml:"skip_dirs"`

	Lint struct {
		Black   string `toml:"black"`
		Flake8  string `toml:"flake8"`
		Pyright string `toml:"pyright"`
	} `toml:"lint"`
}

// New creates a new Config with defaults.
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		TestPath:    DefaultTestPath,
		TraceDir:    DefaultTraceDir,
		ResultsDir:  DefaultResultsDir,
		ResultsFile: DefaultResultsFile,
		Black:       DefaultBlack,
		Flake8:      DefaultFlake8,
		Pyright:     DefaultPyright,
	}
	cfg.Runner = make([]string, len(DefaultRunner))
	copy(cfg.Runner, DefaultRunner)
	cfg.SkipDirs = make([]string, len(DefaultSkipDirs))
	copy(cfg.SkipDirs, DefaultSkipDirs)
	return cfg
}

// Load creates a config from defaults, the optional simtool.toml in the
// project root, and the .env overlay. Flags are applied later by the
// commands, so precedence is: defaults < toml < env < flags.
func Load(projectPath string) (*Config, error) {
	cfg := New()
	if projectPath != "" {
		cfg.ProjectPath = projectPath
	}

	if err := cfg.applyFile(filepath.Join(cfg.ProjectPath, DefaultConfigFile)); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	return cfg, nil
}

// applyFile overlays values from a TOML config file. A missing file is
// not an error.
func (c *Config) applyFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.ProjectPath != "" {
		c.ProjectPath = fc.ProjectPath
	}
	if fc.TestPath != "" {
		c.TestPath = fc.TestPath
	}
	if fc.TraceDir != "" {
		c.TraceDir = fc.TraceDir
	}
	if fc.ResultsDir != "" {
		c.ResultsDir = fc.ResultsDir
	}
	if fc.ResultsFile != "" {
		c.ResultsFile = fc.ResultsFile
	}
	if len(fc.Runner) > 0 {
		c.Runner = fc.Runner
	}
	if len(fc.SkipDirs) > 0 {
		c.SkipDirs = fc.SkipDirs
	}
	if fc.Lint.Black != "" {
		c.Black = fc.Lint.Black
	}
	if fc.Lint.Flake8 != "" {
		c.Flake8 = fc.Lint.Flake8
	}
	if fc.Lint.Pyright != "" {
		c.Pyright = fc.Lint.Pyright
	}
	return nil
}

// applyEnv overlays SIMTOOL_* environment variables, loading a .env
// file from the project root first if one exists.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	// .env is optional; real environment variables still apply
	_ = godotenv.Load(envPath)

	if v := os.Getenv("SIMTOOL_RUNNER"); v != "" {
		c.Runner = strings.Fields(v)
	}
	if v := os.Getenv("SIMTOOL_TEST_PATH"); v != "" {
		c.TestPath = v
	}
	if v := os.Getenv("SIMTOOL_TRACE_DIR"); v != "" {
		c.TraceDir = v
	}
}

// GetTestPath returns the test tree root, using the flag if provided.
func (c *Config) GetTestPath() string {
	if c.Flags.TestDir != "" {
		if filepath.IsAbs(c.Flags.TestDir) {
			return c.Flags.TestDir
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestDir)
	}
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetTraceDir returns the trace output directory as an absolute path.
// The framework process runs from the test root, so relative artifact
// paths would resolve against the wrong directory.
func (c *Config) GetTraceDir() string {
	p := c.TraceDir
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectPath, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetResultsPath returns the absolute path to the results JSON file so
// run and the failure viewer always read/write the same file
// regardless of cwd.
func (c *Config) GetResultsPath() string {
	p := filepath.Join(c.ProjectPath, c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
