package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"simtool/internal/domain"
)

// Save writes run results and failures to the configured JSON file.
// Case counts come from the parsed framework output; invocation counts
// come from the results themselves.
func (s *JSONStorage) Save(results []domain.TestResult, failures []domain.TestFailure, cases domain.CaseCounts, duration time.Duration, query string, traced bool) error {
	passed := 0
	failed := 0
	for _, r := range results {
		if r.Success {
			passed++
		} else {
			failed++
		}
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalTests:      len(results),
			PassedTests:     passed,
			FailedTests:     failed,
			PassedTestCases: cases.Passed,
			FailedTestCases: cases.Failed,
			Query:           query,
			Traced:          traced,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}
	return s.SaveOutput(&output)
}

// Load reads the last run results from the configured JSON file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetResultsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
