package y2019

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hexaflex/aoc/input"
	"github.com/hexaflex/aoc/intcode"
	"github.com/hexaflex/aoc/puzzle"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairProgram returns a program computing mem[noun] + verb + offset into
// address 0, where mem[k] = 100*k for every k past the program header.
// For nouns in [5, 100) this makes the result 100*noun + verb + offset.
func pairProgram(offset int64) string {
	var sb strings.Builder
	sb.WriteString("1001,0,0,0,99")
	for k := int64(5); k < pairRange; k++ {
		fmt.Fprintf(&sb, ",%d", 100*k+offset)
	}
	return sb.String()
}

func newComputer(t *testing.T, program string) *intcode.Computer {
	t.Helper()
	c := intcode.New(false)
	require.NoError(t, c.Load(program))
	return c
}

func newEnv(t *testing.T, files map[string]string) *puzzle.Env {
	t.Helper()
	dir := t.TempDir()
	for id, text := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".txt"), []byte(text+"\n"), 0644))
	}
	return &puzzle.Env{
		Context: context.Background(),
		Input:   input.NewLoader(dir),
		Workers: 1,
	}
}

func TestRunPair(t *testing.T) {
	c := newComputer(t, "1,9,10,3,2,3,11,0,99,30,40,50")

	// The first call captures the loaded program.
	v, err := RunPair(c, Pair{9, 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3500, v)

	v, err = RunPair(c, Pair{9, 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3500, v)

	// 1,10,11,3 -> mem[3] = 90; 2,3,11,0 -> 90*50
	v, err = RunPair(c, Pair{10, 11})
	require.NoError(t, err)
	assert.EqualValues(t, 4500, v)
}

func TestScanVisitsAllPairs(t *testing.T) {
	c := newComputer(t, pairProgram(0))
	c.Capture()

	var visited []Pair
	err := ScanNounVerb(c, func(p Pair, _ int64) bool {
		visited = append(visited, p)
		return true
	})
	require.NoError(t, err)

	require.Len(t, visited, pairRange*pairRange)
	assert.Equal(t, Pair{0, 0}, visited[0])
	assert.Equal(t, Pair{0, 1}, visited[1])
	assert.Equal(t, Pair{1, 0}, visited[pairRange])
	assert.Equal(t, Pair{99, 99}, visited[len(visited)-1])

	seen := make(map[Pair]bool)
	for _, p := range visited {
		seen[p] = true
	}
	assert.Len(t, seen, pairRange*pairRange)
}

func TestSearchNounVerb(t *testing.T) {
	c := newComputer(t, pairProgram(0))
	c.Capture()

	p, err := SearchNounVerb(c, 7742)
	require.NoError(t, err)
	assert.Equal(t, Pair{77, 42}, p)
	assert.EqualValues(t, 7742, p.Answer())

	// Searching again from the same checkpoint is deterministic.
	p, err = SearchNounVerb(c, 7742)
	require.NoError(t, err)
	assert.Equal(t, Pair{77, 42}, p)

	_, err = SearchNounVerb(c, -1)
	assert.True(t, errors.Is(err, ErrNoPair))
}

func TestSearchNounVerbError(t *testing.T) {
	c := newComputer(t, "1,0,0,0,99")

	_, err := SearchNounVerb(c, 1<<40)
	require.Error(t, err)
	assert.True(t, errors.Is(err, intcode.ErrAddressRange))
	assert.Contains(t, err.Error(), "noun 0, verb 5")
}

func TestSearchNounVerbParallel(t *testing.T) {
	program := pairProgram(0)

	for _, workers := range []int{0, 1, 3, 8, 200} {
		t.Run(fmt.Sprint(workers), func(t *testing.T) {
			p, err := SearchNounVerbParallel(context.Background(), program, 7742, workers)
			require.NoError(t, err)
			assert.Equal(t, Pair{77, 42}, p)

			_, err = SearchNounVerbParallel(context.Background(), program, -1, workers)
			assert.True(t, errors.Is(err, ErrNoPair))
		})
	}
}

func TestSearchNounVerbParallelPicksFirst(t *testing.T) {
	// mem[3] is 0, so noun 3 yields verb and noun 1 yields 1 + verb;
	// both reach 50, noun 1 comes first.
	program := pairProgram(0)

	c := newComputer(t, program)
	c.Capture()
	want, err := SearchNounVerb(c, 50)
	require.NoError(t, err)
	assert.Equal(t, Pair{1, 49}, want)

	for _, workers := range []int{2, 3, 4} {
		have, err := SearchNounVerbParallel(context.Background(), program, 50, workers)
		require.NoError(t, err)
		assert.Equal(t, want, have, "%d workers", workers)
	}
}

func TestSearchNounVerbParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SearchNounVerbParallel(ctx, pairProgram(0), 7742, 4)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSearchNounVerbParallelBadProgram(t *testing.T) {
	_, err := SearchNounVerbParallel(context.Background(), "1,x", 0, 2)
	assert.True(t, errors.Is(err, intcode.ErrParse))
}

func TestDay02(t *testing.T) {
	const offset = 19690720 - 7742

	for _, workers := range []int{1, 4} {
		env := newEnv(t, map[string]string{"2019_02": pairProgram(offset)})
		env.Workers = workers

		r, err := Day02(env)
		require.NoError(t, err)
		assert.EqualValues(t, 1202+offset, r.Part1)
		assert.EqualValues(t, 7742, r.Part2)
	}
}

func TestDay02MissingInput(t *testing.T) {
	_, err := Day02(newEnv(t, nil))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDiagnose(t *testing.T) {
	tests := []struct {
		program string
		id      int64
		want    int64
		err     error
	}{
		{"3,0,4,0,99", 1, 1, nil},
		{"3,9,104,0,104,0,4,9,99,0", 1, 1, nil},
		{"3,9,104,0,104,0,4,9,99,0", 5, 5, nil},
		{"104,3,104,8,99", 1, 0, ErrDiagnostic},
		{"99", 1, 0, ErrDiagnostic},
		{"3,0,3,0,99", 1, 0, intcode.ErrInputEmpty},
	}

	for _, tt := range tests {
		c := newComputer(t, tt.program)

		have, err := Diagnose(c, tt.id)
		if tt.err != nil {
			assert.True(t, errors.Is(err, tt.err), "%s: %v", tt.program, err)
			continue
		}

		require.NoError(t, err, tt.program)
		assert.Equal(t, tt.want, have, tt.program)
	}
}

func TestDay05(t *testing.T) {
	env := newEnv(t, map[string]string{"2019_05": "3,11,104,0,1002,11,3,11,4,11,99,0"})

	r, err := Day05(env)
	require.NoError(t, err)
	assert.EqualValues(t, 3, r.Part1)
	assert.Nil(t, r.Part2)
}

func TestRegister(t *testing.T) {
	var m puzzle.Map
	Register(&m)
	assert.Equal(t, []string{"2019:2", "2019:5"}, m.IDs())
}
