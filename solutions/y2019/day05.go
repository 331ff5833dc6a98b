package y2019

import (
	"github.com/hexaflex/aoc/intcode"
	"github.com/hexaflex/aoc/puzzle"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// System id of the ship's air conditioner unit.
const airConditionerID = 1

// ErrDiagnostic is returned when the diagnostic program reports a failing test.
var ErrDiagnostic = errors.New("diagnostic test failed")

// Day05 runs the TEST diagnostic program for the air conditioner.
func Day05(env *puzzle.Env) (puzzle.Result, error) {
	var r puzzle.Result

	c, _, err := loadComputer(env, "2019_05")
	if err != nil {
		return r, err
	}

	code, err := Diagnose(c, airConditionerID)
	if err != nil {
		return r, err
	}

	r.Part1 = code
	return r, nil
}

// Diagnose feeds the system id to the diagnostic program loaded in c
// and returns the diagnostic code, which is the last value it outputs.
// Every value before it is a test result and must be zero.
func Diagnose(c *intcode.Computer, systemID int64) (int64, error) {
	c.AddInput(systemID)

	if _, err := c.Run(0); err != nil {
		return 0, err
	}

	out := c.DrainOutput()
	log.WithField("output", out).Debug("diagnostic output")

	if len(out) == 0 {
		return 0, errors.WithMessage(ErrDiagnostic, "no output")
	}

	for i, v := range out[:len(out)-1] {
		if v != 0 {
			return 0, errors.WithMessagef(ErrDiagnostic, "test %d returned %d", i, v)
		}
	}

	return out[len(out)-1], nil
}
