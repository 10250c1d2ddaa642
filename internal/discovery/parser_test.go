package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParser_FindTests(t *testing.T) {
	parser := NewParser()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test_scheduler.py")
	pyContent := `import random
from amaranth import *


class SchedulerTestCircuit(Elaboratable):
    def __init__(self, gen_params):
        self.gen_params = gen_params

    def elaborate(self, platform):
        return Module()


class TestScheduler(TestCaseWithSimulator):
    def setUp(self):
        self.circuit = SchedulerTestCircuit(self.gen_params)

    def test_single(self):
        self.run_sim()

    def test_multi(self):
        self.run_sim()

    def helper_method(self):
        pass


class TestWakeup(TestCaseWithSimulator):
    def test_rs_wakeup(self):
        self.run_sim()


def test_standalone():
    assert True


def build_fixture():
    pass
`
	if err := os.WriteFile(testFile, []byte(pyContent), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	t.Run("finds tests in source order", func(t *testing.T) {
		tests, err := parser.FindTests(testFile, "scheduler.test_scheduler")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{
			"scheduler.test_scheduler.TestScheduler.test_single",
			"scheduler.test_scheduler.TestScheduler.test_multi",
			"scheduler.test_scheduler.TestWakeup.test_rs_wakeup",
			"scheduler.test_scheduler.test_standalone",
		}
		if len(tests) != len(expected) {
			t.Fatalf("expected %d tests, got %d: %v", len(expected), len(tests), tests)
		}
		for i, want := range expected {
			if tests[i].Name != want {
				t.Errorf("test %d: expected %s, got %s", i, want, tests[i].Name)
			}
		}
	})

	t.Run("does not report helpers or non-test classes", func(t *testing.T) {
		tests, err := parser.FindTests(testFile, "scheduler.test_scheduler")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, test := range tests {
			if test.Method == "helper_method" || test.Method == "build_fixture" {
				t.Errorf("should not report %s as a test", test.Method)
			}
			if test.Class == "SchedulerTestCircuit" {
				t.Errorf("should not report methods of non-test class: %s", test.Name)
			}
		}
	})

	t.Run("fills in identifier parts", func(t *testing.T) {
		tests, err := parser.FindTests(testFile, "scheduler.test_scheduler")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := tests[0]
		if first.File != testFile {
			t.Errorf("expected file %s, got %s", testFile, first.File)
		}
		if first.Module != "scheduler.test_scheduler" {
			t.Errorf("unexpected module: %s", first.Module)
		}
		if first.Class != "TestScheduler" || first.Method != "test_single" {
			t.Errorf("unexpected parts: %s / %s", first.Class, first.Method)
		}
	})

	t.Run("finds tests regardless of class naming convention", func(t *testing.T) {
		suffixFile := filepath.Join(tmpDir, "test_wakeup.py")
		content := `class SchedulerTestCase(TestCaseWithSimulator):
    def test_insert(self):
        self.run_sim()


class RegressionSuite(TestCaseWithSimulator):
    def test_issue_42(self):
        self.run_sim()
`
		if err := os.WriteFile(suffixFile, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		tests, err := parser.FindTests(suffixFile, "test_wakeup")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{
			"test_wakeup.SchedulerTestCase.test_insert",
			"test_wakeup.RegressionSuite.test_issue_42",
		}
		if len(tests) != len(expected) {
			t.Fatalf("expected %d tests, got %d: %v", len(expected), len(tests), tests)
		}
		for i, want := range expected {
			if tests[i].Name != want {
				t.Errorf("test %d: expected %s, got %s", i, want, tests[i].Name)
			}
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTests("/non/existent/test_file.py", "test_file")
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}

func TestDiscovery_Discover(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "scheduler"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	files := map[string]string{
		"test_core.py": `class TestCore(TestCaseWithSimulator):
    def test_asm(self):
        pass
`,
		"scheduler/test_scheduler.py": `class TestScheduler(TestCaseWithSimulator):
    def test_single(self):
        pass
`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	disc := New(nil)
	tests, err := disc.Discover(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tests) != 2 {
		t.Fatalf("expected 2 tests, got %d", len(tests))
	}
	found := make(map[string]bool)
	for _, test := range tests {
		found[test.Name] = true
	}
	for _, want := range []string{"test_core.TestCore.test_asm", "scheduler.test_scheduler.TestScheduler.test_single"} {
		if !found[want] {
			t.Errorf("expected to find %s, got %v", want, tests)
		}
	}
}
