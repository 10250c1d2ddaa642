package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simtool/internal/domain"
)

const failingOutput = `F.E
======================================================================
FAIL: test_single (test_transactions.TestScheduler)
----------------------------------------------------------------------
Traceback (most recent call last):
  File "/project/test/test_transactions.py", line 42, in test_single
    self.assertEqual(result, expected)
AssertionError: 1 != 2

======================================================================
ERROR: test_multi (test_transactions.TestScheduler)
----------------------------------------------------------------------
Traceback (most recent call last):
  File "/project/test/common.py", line 17, in run_sim
    sim.run()
  File "/project/test/test_transactions.py", line 58, in test_multi
    self.run_sim()
RuntimeError: simulation deadlock

----------------------------------------------------------------------
Ran 3 tests in 0.004s

FAILED (failures=1, errors=1)
`

const passingOutput = `...
----------------------------------------------------------------------
Ran 3 tests in 0.002s

OK
`

func result(output string, success bool) domain.TestResult {
	var err error
	if !success {
		err = errors.New("exit status 1")
	}
	return domain.TestResult{
		Test:    domain.NewTestID("test/test_transactions.py", "test_transactions", "TestScheduler", "test_single"),
		Success: success,
		Output:  output,
		Err:     err,
	}
}

func TestUnittestParser_ParseCounts(t *testing.T) {
	p := NewUnittestParser()

	t.Run("passing run", func(t *testing.T) {
		passed, failed := p.ParseCounts(result(passingOutput, true))
		assert.Equal(t, 3, passed)
		assert.Equal(t, 0, failed)
	})

	t.Run("failing run", func(t *testing.T) {
		passed, failed := p.ParseCounts(result(failingOutput, false))
		assert.Equal(t, 1, passed)
		assert.Equal(t, 2, failed)
	})

	t.Run("unparseable output falls back to one case", func(t *testing.T) {
		passed, failed := p.ParseCounts(result("Segmentation fault\n", false))
		assert.Equal(t, 0, passed)
		assert.Equal(t, 1, failed)

		passed, failed = p.ParseCounts(result("", true))
		assert.Equal(t, 1, passed)
		assert.Equal(t, 0, failed)
	})
}

func TestUnittestParser_ParseFailures(t *testing.T) {
	p := NewUnittestParser()

	t.Run("extracts both failure blocks", func(t *testing.T) {
		failures := p.ParseFailures(result(failingOutput, false))
		require.Len(t, failures, 2)

		first := failures[0]
		assert.Equal(t, "FAIL", first.Kind)
		assert.Equal(t, "test_transactions.TestScheduler.test_single", first.TestName)
		assert.Equal(t, "/project/test/test_transactions.py", first.File)
		assert.Equal(t, 42, first.Line)
		require.Len(t, first.Traceback, 1)
		assert.Contains(t, first.Message, "AssertionError: 1 != 2")

		second := failures[1]
		assert.Equal(t, "ERROR", second.Kind)
		assert.Equal(t, "test_transactions.TestScheduler.test_multi", second.TestName)
		require.Len(t, second.Traceback, 2)
		// Innermost frame wins
		assert.Equal(t, "/project/test/test_transactions.py", second.File)
		assert.Equal(t, 58, second.Line)
		assert.Contains(t, second.Message, "RuntimeError: simulation deadlock")
	})

	t.Run("passing output has no failures", func(t *testing.T) {
		failures := p.ParseFailures(result(passingOutput, true))
		assert.Empty(t, failures)
	})

	t.Run("crash without failure blocks keeps the tail", func(t *testing.T) {
		lines := make([]string, 0, 40)
		for i := 0; i < 40; i++ {
			lines = append(lines, "noise")
		}
		lines = append(lines, "Segmentation fault")
		failures := p.ParseFailures(result(strings.Join(lines, "\n"), false))

		require.Len(t, failures, 1)
		assert.Equal(t, "ERROR", failures[0].Kind)
		assert.Equal(t, "test_transactions.TestScheduler.test_single", failures[0].TestName)
		assert.Contains(t, failures[0].Message, "Segmentation fault")
		assert.LessOrEqual(t, len(strings.Split(failures[0].Message, "\n")), 20)
	})
}
