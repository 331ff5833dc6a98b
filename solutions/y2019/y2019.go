// Package y2019 holds the solutions for the 2019 event.
package y2019

import (
	"github.com/hexaflex/aoc/intcode"
	"github.com/hexaflex/aoc/puzzle"
)

// Register adds all 2019 solutions to m.
func Register(m *puzzle.Map) {
	m.Register("2019:2", Day02)
	m.Register("2019:5", Day05)
}

// loadComputer creates a computer holding the program stored in the
// input file with the given id.
func loadComputer(env *puzzle.Env, id string) (*intcode.Computer, string, error) {
	program, err := env.Input.ReadAll(id)
	if err != nil {
		return nil, "", err
	}

	c := intcode.New(env.Debug)
	if err := c.Load(program); err != nil {
		return nil, "", err
	}

	return c, program, nil
}
