package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hexaflex/aoc/puzzle"
	"github.com/hexaflex/aoc/solutions/y2019"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd(puzzles()).ExecuteContext(ctx)
	if err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}

// puzzles returns all known solutions.
func puzzles() puzzle.Map {
	var m puzzle.Map
	y2019.Register(&m)
	return m
}
