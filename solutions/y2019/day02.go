package y2019

import (
	"context"

	"github.com/hexaflex/aoc/intcode"
	"github.com/hexaflex/aoc/puzzle"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Day 2 inputs are written to addresses 1 and 2 and the answer is read
// from address 0.
const (
	nounAddr   = 1
	verbAddr   = 2
	resultAddr = 0

	// Noun and verb each range over [0, pairRange).
	pairRange = 100

	day02Target = 19690720
)

// ErrNoPair is returned when no noun/verb pair yields the target.
var ErrNoPair = errors.New("no noun/verb pair produces the target")

// Pair is a noun/verb combination.
type Pair struct {
	Noun, Verb int64
}

// Answer encodes the pair as 100*noun + verb.
func (p Pair) Answer() int64 {
	return 100*p.Noun + p.Verb
}

// Day02 restores the gravity assist program.
func Day02(env *puzzle.Env) (puzzle.Result, error) {
	var r puzzle.Result

	c, program, err := loadComputer(env, "2019_02")
	if err != nil {
		return r, err
	}

	c.Capture()

	if r.Part1, err = RunPair(c, Pair{12, 2}); err != nil {
		return r, err
	}

	var p Pair
	if env.Workers > 1 {
		p, err = SearchNounVerbParallel(env.Context, program, day02Target, env.Workers)
	} else {
		p, err = SearchNounVerb(c, day02Target)
	}
	if err != nil {
		return r, err
	}

	r.Part2 = p.Answer()
	return r, nil
}

// RunPair resets c to its checkpoint, capturing one first if none
// exists, patches in the pair and runs the program.
func RunPair(c *intcode.Computer, p Pair) (int64, error) {
	if !c.HasSnapshot() {
		c.Capture()
	}

	if err := c.Reset(); err != nil {
		return 0, err
	}
	if err := c.Set(nounAddr, p.Noun); err != nil {
		return 0, err
	}
	if err := c.Set(verbAddr, p.Verb); err != nil {
		return 0, err
	}

	return c.Run(resultAddr)
}

// ScanNounVerb runs the program once for every pair in row-major order,
// noun first, and hands each result to visit. The scan stops early when
// visit returns false. Every run starts from c's checkpoint, see RunPair.
func ScanNounVerb(c *intcode.Computer, visit func(p Pair, result int64) bool) error {
	for noun := int64(0); noun < pairRange; noun++ {
		for verb := int64(0); verb < pairRange; verb++ {
			p := Pair{noun, verb}

			v, err := RunPair(c, p)
			if err != nil {
				return errors.Wrapf(err, "noun %d, verb %d", noun, verb)
			}

			if !visit(p, v) {
				return nil
			}
		}
	}
	return nil
}

// SearchNounVerb returns the first pair, in ScanNounVerb order, for which
// the program produces target.
func SearchNounVerb(c *intcode.Computer, target int64) (Pair, error) {
	var found *Pair

	err := ScanNounVerb(c, func(p Pair, v int64) bool {
		if v == target {
			found = &p
		}
		return found == nil
	})

	switch {
	case err != nil:
		return Pair{}, err
	case found == nil:
		return Pair{}, ErrNoPair
	}
	return *found, nil
}

// SearchNounVerbParallel searches the same space as SearchNounVerb,
// spreading nouns over up to workers goroutines, each with its own
// computer. When several pairs match, the one SearchNounVerb would have
// found is returned.
func SearchNounVerbParallel(ctx context.Context, program string, target int64, workers int) (Pair, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > pairRange {
		workers = pairRange
	}

	// best[w] holds the lowest match found by worker w.
	best := make([]*Pair, workers)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		w := w

		g.Go(func() error {
			c := intcode.New(false)
			if err := c.Load(program); err != nil {
				return err
			}
			c.Capture()

			for noun := int64(w); noun < pairRange; noun += int64(workers) {
				if err := gctx.Err(); err != nil {
					return err
				}

				for verb := int64(0); verb < pairRange; verb++ {
					p := Pair{noun, verb}

					v, err := RunPair(c, p)
					if err != nil {
						return errors.Wrapf(err, "noun %d, verb %d", noun, verb)
					}

					if v == target {
						log.WithFields(log.Fields{"worker": w, "noun": noun, "verb": verb}).Debug("match")
						best[w] = &p
						return nil
					}
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Pair{}, err
	}

	var found *Pair
	for _, p := range best {
		if p != nil && (found == nil || p.Answer() < found.Answer()) {
			found = p
		}
	}

	if found == nil {
		return Pair{}, ErrNoPair
	}

	return *found, nil
}
