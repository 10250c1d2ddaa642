package storage

import (
	"time"

	"simtool/internal/config"
	"simtool/internal/domain"
)

// Storage persists and loads test run results (e.g. for the failure
// viewer and the --failed re-run selection).
type Storage interface {
	Save(results []domain.TestResult, failures []domain.TestFailure, cases domain.CaseCounts, duration time.Duration, query string, traced bool) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolving failures
	// in the viewer).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured
// results path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's
// results JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
