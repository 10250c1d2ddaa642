package cli

import "simtool/internal/config"

// Flags holds command-line flags
type Flags struct {
	List     bool
	Trace    bool
	Verbose  bool
	Failed   bool
	FailFast bool
	TestDir  string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		List:     f.List,
		Trace:    f.Trace,
		Verbose:  f.Verbose,
		Failed:   f.Failed,
		FailFast: f.FailFast,
		TestDir:  f.TestDir,
	}
}
