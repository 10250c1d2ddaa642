package domain

// LintStageResult is the outcome of one external tool invocation made
// by the lint dispatcher.
type LintStageResult struct {
	Stage   string // stage name, e.g. "check_format/black"
	Command string // command line that was run
	Output  string // combined tool output
	Err     error  // nil on success; exec error or non-zero exit otherwise
}

// Success reports whether the stage passed.
func (r LintStageResult) Success() bool {
	return r.Err == nil
}
