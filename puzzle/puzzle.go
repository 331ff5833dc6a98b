// Package puzzle keeps track of the available puzzle solutions and runs them.
package puzzle

import (
	"context"
	"sort"
	"time"

	"github.com/hexaflex/aoc/input"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Env carries everything a solution may need at runtime.
type Env struct {
	Context context.Context
	Input   *input.Loader // Source of puzzle inputs.
	Debug   bool          // Enable instruction tracing in virtual machines.
	Workers int           // Upper bound on goroutines used by parallel solutions.
}

// Result holds the answers to both parts of a puzzle.
// A nil part has not been solved.
type Result struct {
	Part1 interface{}
	Part2 interface{}
}

// Func solves a puzzle.
type Func func(*Env) (Result, error)

// Puzzle binds a solution to its id, formatted as "<year>:<day>".
type Puzzle struct {
	ID    string
	Solve Func
}

// Map contains a list of registered puzzles.
type Map []Puzzle

// Register adds the given solution to the map.
// Returns false if the id is already present.
func (m *Map) Register(id string, f Func) bool {
	if (*m).Find(id) > -1 {
		return false
	}

	*m = append(*m, Puzzle{ID: id, Solve: f})
	return true
}

// Find returns the index for the puzzle with the given id.
// Returns -1 if it can't be found.
func (m Map) Find(id string) int {
	for i, p := range m {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// IDs returns the registered ids in sorted order.
func (m Map) IDs() []string {
	ids := make([]string, len(m))
	for i, p := range m {
		ids[i] = p.ID
	}
	sort.Strings(ids)
	return ids
}

// ReportFunc receives the outcome of each puzzle run.
type ReportFunc func(id string, r Result, elapsed time.Duration)

// Run solves the given puzzles in order and reports each result.
// A failing or unknown puzzle does not stop the remaining ones;
// all failures are returned together.
func (m Map) Run(env *Env, ids []string, report ReportFunc) error {
	var errorset ErrorSet

	for _, id := range ids {
		index := m.Find(id)
		if index == -1 {
			errorset.Append(errors.WithMessage(ErrUnknownPuzzle, id))
			continue
		}

		if env.Context != nil {
			if err := env.Context.Err(); err != nil {
				errorset.Append(errors.Wrapf(err, "%s", id))
				break
			}
		}

		log.WithField("puzzle", id).Debug("start")
		start := time.Now()

		r, err := m[index].Solve(env)
		elapsed := time.Since(start)
		if err != nil {
			errorset.Append(errors.Wrapf(err, "%s", id))
			continue
		}

		log.WithFields(log.Fields{
			"puzzle":  id,
			"elapsed": elapsed,
		}).Debug("done")

		if report != nil {
			report(id, r, elapsed)
		}
	}

	if errorset.Len() == 0 {
		return nil
	}

	return errorset
}
