package puzzle

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	var m Map

	assert.True(t, m.Register("2019:5", nil))
	assert.True(t, m.Register("2019:2", nil))
	assert.False(t, m.Register("2019:2", nil))

	assert.Equal(t, 1, m.Find("2019:2"))
	assert.Equal(t, -1, m.Find("2021:1"))
	assert.Equal(t, []string{"2019:2", "2019:5"}, m.IDs())
}

func TestRun(t *testing.T) {
	var m Map
	errBroken := errors.New("broken")

	m.Register("a", func(*Env) (Result, error) { return Result{Part1: 1, Part2: "two"}, nil })
	m.Register("b", func(*Env) (Result, error) { return Result{}, errBroken })
	m.Register("c", func(*Env) (Result, error) { return Result{Part1: 3}, nil })

	var ran []string
	results := map[string]Result{}
	err := m.Run(&Env{}, []string{"c", "x", "b", "a"}, func(id string, r Result, _ time.Duration) {
		ran = append(ran, id)
		results[id] = r
	})

	require.Error(t, err)
	assert.Equal(t, []string{"c", "a"}, ran)
	assert.Equal(t, Result{Part1: 1, Part2: "two"}, results["a"])
	assert.Equal(t, Result{Part1: 3}, results["c"])

	var set ErrorSet
	require.True(t, errors.As(err, &set))
	assert.Equal(t, 2, set.Len())
	assert.True(t, errors.Is(err, ErrUnknownPuzzle))
	assert.True(t, errors.Is(err, errBroken))
	assert.Contains(t, err.Error(), "x: unrecognized puzzle")
	assert.Contains(t, err.Error(), "b: broken")
}

func TestRunAllOK(t *testing.T) {
	var m Map
	m.Register("a", func(*Env) (Result, error) { return Result{}, nil })
	assert.NoError(t, m.Run(&Env{}, []string{"a", "a"}, nil))
}

func TestRunCancelled(t *testing.T) {
	var m Map
	calls := 0
	m.Register("a", func(*Env) (Result, error) { calls++; return Result{}, nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Run(&Env{Context: ctx}, []string{"a", "a"}, nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, calls)
}
