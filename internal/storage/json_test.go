package storage

import (
	"errors"
	"os"
	"testing"
	"time"

	"simtool/internal/config"
	"simtool/internal/domain"
)

func testStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st := testStorage(t)

	results := []domain.TestResult{
		{Test: domain.TestID{Name: "test_core.TestCore.test_asm"}, Success: true},
		{Test: domain.TestID{Name: "test_core.TestCore.test_mem"}, Success: false, Err: errors.New("exit status 1")},
	}
	failures := []domain.TestFailure{
		{
			TestName: "test_core.TestCore.test_mem",
			Kind:     "FAIL",
			Message:  "AssertionError: 1 != 2",
			File:     "test/test_core.py",
			Line:     42,
		},
	}

	cases := domain.CaseCounts{Passed: 3, Failed: 2}
	if err := st.Save(results, failures, cases, 1500*time.Millisecond, "TestCore", true); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	meta := output.Meta
	if meta.TotalTests != 2 || meta.PassedTests != 1 || meta.FailedTests != 1 {
		t.Errorf("unexpected meta counts: %+v", meta)
	}
	if meta.PassedTestCases != 3 || meta.FailedTestCases != 2 {
		t.Errorf("unexpected case counts: %+v", meta)
	}
	if meta.Query != "TestCore" {
		t.Errorf("expected query TestCore, got %q", meta.Query)
	}
	if !meta.Traced {
		t.Error("expected traced flag to persist")
	}
	if meta.DurationSeconds != 1.5 {
		t.Errorf("expected 1.5s duration, got %f", meta.DurationSeconds)
	}
	if len(output.Details) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(output.Details))
	}
	if output.Details[0].TestName != "test_core.TestCore.test_mem" {
		t.Errorf("unexpected failure name: %s", output.Details[0].TestName)
	}
}

func TestJSONStorage_SaveOutput_ResolvedRoundTrip(t *testing.T) {
	st := testStorage(t)

	output := &domain.RunOutput{
		Meta:    domain.RunMeta{TotalTests: 1, FailedTests: 1},
		Details: []domain.TestFailure{{TestName: "test_core.TestCore.test_mem", Resolved: true}},
	}
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !loaded.Details[0].Resolved {
		t.Error("resolved status was not persisted")
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st := testStorage(t)

	_, err := st.Load()
	if err == nil {
		t.Error("expected error when no results file exists")
	}
}

func TestJSONStorage_CreatesResultsDir(t *testing.T) {
	st := testStorage(t)

	if err := st.Save(nil, nil, domain.CaseCounts{}, 0, "", false); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if _, err := os.Stat(st.cfg.GetResultsPath()); err != nil {
		t.Errorf("results file not created: %v", err)
	}
}
