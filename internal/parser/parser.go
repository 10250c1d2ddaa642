package parser

import "simtool/internal/domain"

// Parser parses test framework output and extracts failures.
type Parser interface {
	ParseFailures(result domain.TestResult) []domain.TestFailure
}
