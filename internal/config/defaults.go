package config

const (
	// DefaultProjectPath is the default project root
	DefaultProjectPath = "."
	// DefaultTestPath is the default test tree, relative to the project root
	DefaultTestPath = "test"
	// DefaultTraceDir is where waveform artifacts are written
	DefaultTraceDir = "test/__traces__"
	// DefaultResultsDir is the default output directory for run results
	DefaultResultsDir = "build"
	// DefaultResultsFile is the default results file name
	DefaultResultsFile = "test-results.json"
	// DefaultConfigFile is the optional per-project config file
	DefaultConfigFile = "simtool.toml"
)

// DefaultRunner is the default test framework invocation; the dotted
// test name is appended as the final argument.
var DefaultRunner = []string{"python3", "-m", "unittest"}

// DefaultSkipDirs are directories ignored when scanning for tests
var DefaultSkipDirs = []string{
	"__pycache__",
	"__traces__",
	"venv",
	".venv",
	"build",
}

// Default lint tool binaries
const (
	DefaultBlack   = "black"
	DefaultFlake8  = "flake8"
	DefaultPyright = "pyright"
)
