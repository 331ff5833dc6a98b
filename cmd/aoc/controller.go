package main

import (
	"os"
	"time"

	"github.com/hexaflex/aoc/intcode"
	"github.com/pkg/errors"
)

// Controller controls the execution of an Intcode program.
type Controller struct {
	computer *intcode.Computer
	elapsed  time.Duration
}

// NewController creates a new controller with an empty computer.
func NewController(debug bool) *Controller {
	return &Controller{
		computer: intcode.New(debug),
	}
}

// Load loads the program stored in the given file.
func (c *Controller) Load(file string) error {
	fd, err := os.Open(file)
	if err != nil {
		return errors.Wrap(err, "load program")
	}
	defer fd.Close()

	return c.computer.LoadReader(fd)
}

// Memory returns the program memory.
func (c *Controller) Memory() intcode.Memory {
	return c.computer.Memory()
}

// AddInput queues input values for the program.
func (c *Controller) AddInput(values ...int64) {
	c.computer.AddInput(values...)
}

// Output drains the program's output.
func (c *Controller) Output() []int64 {
	return c.computer.DrainOutput()
}

// Run executes the program until it halts and returns the value at resultAt.
func (c *Controller) Run(resultAt int64) (int64, error) {
	start := time.Now()
	defer func() { c.elapsed += time.Since(start) }()

	return c.computer.Run(resultAt)
}

// Steps returns the number of executed instructions.
func (c *Controller) Steps() uint64 {
	return c.computer.Steps()
}

// Frequency returns the average execution rate in instructions per second.
func (c *Controller) Frequency() float64 {
	if c.elapsed <= 0 {
		return 0
	}
	return float64(c.computer.Steps()) / c.elapsed.Seconds()
}
