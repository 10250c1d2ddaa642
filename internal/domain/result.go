package domain

import "time"

// TestResult represents the result of executing a single test.
type TestResult struct {
	Test     TestID        // Identifier of the executed test
	Success  bool          // Whether the test passed
	Output   string        // Raw output from the test framework
	Err      error         // Error if the framework invocation itself failed
	Duration time.Duration // Time taken to execute
}

// CaseCounts aggregates individual test case results as reported by
// the framework output. One invocation can run several cases, so the
// case totals may exceed the invocation totals.
type CaseCounts struct {
	Passed int
	Failed int
}

// RunMeta contains metadata about a test run.
type RunMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	PassedTestCases int     `json:"passed_test_cases"`
	FailedTestCases int     `json:"failed_test_cases"`
	Query           string  `json:"query,omitempty"`
	Traced          bool    `json:"traced"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the persisted output structure for a test run.
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []TestFailure `json:"details"`
}
