package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"simtool/internal/config"
	"simtool/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintTestList prints matching test identifiers grouped as a tree:
// file, then class, then methods. Only prints; never executes.
func (f *Formatter) PrintTestList(tests []domain.TestID) {
	color.Green("Found %d test(s):\n", len(tests))

	lastFile, lastClass := "", ""
	for _, test := range tests {
		if test.File != lastFile {
			relPath, err := filepath.Rel(f.config.ProjectPath, test.File)
			if err != nil {
				relPath = test.File
			}
			color.Cyan("%s", relPath)
			lastFile = test.File
			lastClass = ""
		}
		if test.Class != lastClass {
			if test.Class != "" {
				fmt.Printf("  %s\n", color.WhiteString(test.Class))
			}
			lastClass = test.Class
		}
		indent := "  "
		if test.Class != "" {
			indent = "    "
		}
		fmt.Printf("%s%s\n", indent, color.YellowString(test.Name))
	}
}

// PrintRunSummary displays the run statistics after execution.
func (f *Formatter) PrintRunSummary(meta domain.RunMeta) {
	fmt.Println()
	color.Cyan("╔════════════════════════════════════════════════════════════╗")
	color.Cyan("║                   Test Execution Summary                   ║")
	color.Cyan("╚════════════════════════════════════════════════════════════╝")

	fmt.Printf("  %-16s %d\n", "Total tests:", meta.TotalTests)
	color.Green("  %-16s %d", "Passed:", meta.PassedTests)
	if meta.FailedTests > 0 {
		color.Red("  %-16s %d", "Failed:", meta.FailedTests)
	} else {
		fmt.Printf("  %-16s %d\n", "Failed:", meta.FailedTests)
	}
	if meta.FailedTestCases > 0 {
		color.Red("  %-16s %d", "Failed cases:", meta.FailedTestCases)
	}
	fmt.Printf("  %-16s %s\n", "Duration:", meta.Duration)
	if meta.Query != "" {
		fmt.Printf("  %-16s %q\n", "Query:", meta.Query)
	}
	if meta.Traced {
		fmt.Printf("  %-16s %s\n", "Traces:", f.config.GetTraceDir())
	}
}

// PrintFailures prints a short per-test failure report after a run.
func (f *Formatter) PrintFailures(failures []domain.TestFailure) {
	if len(failures) == 0 {
		return
	}
	fmt.Println()
	for _, failure := range failures {
		color.Red("%s: %s", failure.Kind, failure.TestName)
		if failure.File != "" {
			fmt.Printf("  %s:%d\n", failure.File, failure.Line)
		}
		if failure.Message != "" {
			firstLine := strings.SplitN(failure.Message, "\n", 2)[0]
			fmt.Printf("  %s\n", firstLine)
		}
	}
}

// PrintLintResults prints per-stage lint outcomes. Failing stages dump
// their tool output; passing stages stay quiet beyond the status line.
func (f *Formatter) PrintLintResults(results []domain.LintStageResult) {
	for _, result := range results {
		if result.Success() {
			color.Green("✓ %s", result.Stage)
			continue
		}
		color.Red("✗ %s", result.Stage)
		if output := strings.TrimSpace(result.Output); output != "" {
			fmt.Println(output)
		} else {
			fmt.Printf("  %v\n", result.Err)
		}
	}
}
