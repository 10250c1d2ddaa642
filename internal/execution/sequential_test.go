package execution

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simtool/internal/domain"
)

func schedulerTests() []domain.TestID {
	return []domain.TestID{
		domain.NewTestID("test/test_transactions.py", "test_transactions", "TestScheduler", "test_single"),
		domain.NewTestID("test/test_transactions.py", "test_transactions", "TestScheduler", "test_multi"),
		domain.NewTestID("test/test_other.py", "test_other", "TestFoo", "test_x"),
	}
}

func TestSequentialExecutor_Execute(t *testing.T) {
	cfg := testConfig()

	t.Run("runs every test in discovery order", func(t *testing.T) {
		mock := NewMockCommandRunner()
		mock.Default = MockResult{Output: []byte("OK\n")}
		executor := NewSequentialExecutor(NewRunner(cfg, mock, nil), nil, zerolog.Nop())

		results, _, err := executor.Execute(context.Background(), schedulerTests())

		require.NoError(t, err)
		require.Len(t, results, 3)
		lines := mock.CommandLines()
		assert.Equal(t, "python3 -m unittest test_transactions.TestScheduler.test_single", lines[0])
		assert.Equal(t, "python3 -m unittest test_transactions.TestScheduler.test_multi", lines[1])
		assert.Equal(t, "python3 -m unittest test_other.TestFoo.test_x", lines[2])
	})

	t.Run("empty set runs nothing", func(t *testing.T) {
		mock := NewMockCommandRunner()
		executor := NewSequentialExecutor(NewRunner(cfg, mock, nil), nil, zerolog.Nop())

		results, _, err := executor.Execute(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Empty(t, mock.Calls)
	})

	t.Run("fail fast stops after first failure", func(t *testing.T) {
		mock := NewMockCommandRunner()
		mock.Default = MockResult{Output: []byte("OK\n")}
		mock.Respond("python3 -m unittest test_transactions.TestScheduler.test_single",
			"FAILED (failures=1)\n", errors.New("exit status 1"))

		executor := NewSequentialExecutor(NewRunner(cfg, mock, nil), nil, zerolog.Nop())
		executor.SetFailFast(true)

		results, _, err := executor.Execute(context.Background(), schedulerTests())

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Success)
		assert.Len(t, mock.Calls, 1)
	})

	t.Run("collects failures without fail fast", func(t *testing.T) {
		mock := NewMockCommandRunner()
		mock.Default = MockResult{Output: []byte("OK\n")}
		mock.Respond("python3 -m unittest test_transactions.TestScheduler.test_multi",
			"FAILED (failures=1)\n", errors.New("exit status 1"))

		executor := NewSequentialExecutor(NewRunner(cfg, mock, nil), nil, zerolog.Nop())

		results, _, err := executor.Execute(context.Background(), schedulerTests())

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.True(t, results[0].Success)
		assert.False(t, results[1].Success)
		assert.True(t, results[2].Success)
	})

	t.Run("cancelled context aborts the run", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mock := NewMockCommandRunner()
		executor := NewSequentialExecutor(NewRunner(cfg, mock, nil), nil, zerolog.Nop())

		results, _, err := executor.Execute(ctx, schedulerTests())

		require.Error(t, err)
		assert.Empty(t, results)
	})
}
