package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hexaflex/aoc/asm"
	"github.com/hexaflex/aoc/input"
	"github.com/hexaflex/aoc/puzzle"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// newRootCmd creates the command tree for the given puzzles.
func newRootCmd(puzzles puzzle.Map) *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code solutions.",
		Long:          "Advent of Code solutions and a standalone Intcode computer.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintln(cmd.OutOrStdout(), Version())
				return nil
			}
			return cmd.Help()
		},
	}

	root.Flags().Bool("version", false, "Display version information.")
	addConfigFlags(root)

	root.AddCommand(
		newSolveCmd(puzzles),
		newListCmd(puzzles),
		newExecCmd(),
		newAsmCmd(),
		newDisasmCmd(),
	)

	return root
}

func newSolveCmd(puzzles puzzle.Map) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <year:day>...",
		Short: "Solve the given puzzles.",
		Long:  "Solve the given puzzles in order, e.g. 'aoc solve 2019:2 2019:5'.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := parseConfig(cmd)
			if err != nil {
				return err
			}
			config.applyLogging()

			env := &puzzle.Env{
				Context: cmd.Context(),
				Input:   input.NewLoader(config.InputDir),
				Debug:   config.Debug,
				Workers: config.Workers,
			}

			w := cmd.OutOrStdout()
			start := time.Now()

			err = puzzles.Run(env, args, func(id string, r puzzle.Result, elapsed time.Duration) {
				fmt.Fprintf(w, "\n-- Problem %s\n", id)
				if r.Part1 != nil {
					fmt.Fprintf(w, "  part1: %v\n", r.Part1)
				}
				if r.Part2 != nil {
					fmt.Fprintf(w, "  part2: %v\n", r.Part2)
				}
				fmt.Fprintf(w, "-- %dms\n", elapsed.Milliseconds())
			})

			fmt.Fprintf(w, "\nTotal time: %dms\n", time.Since(start).Milliseconds())
			return err
		},
	}
}

func newListCmd(puzzles puzzle.Map) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available puzzles.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(puzzles.IDs(), "\n"))
		},
	}
}

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [flags] <program file>",
		Short: "Run an Intcode program.",
		Long:  "Load an Intcode program from a file, queue the given inputs and run it until it halts.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := parseConfig(cmd)
			if err != nil {
				return err
			}
			config.applyLogging()

			inputs, _ := cmd.Flags().GetInt64Slice("input")
			resultAt, _ := cmd.Flags().GetInt64("result")

			c := NewController(config.Debug)
			if err := c.Load(args[0]); err != nil {
				return err
			}
			c.AddInput(inputs...)

			result, err := c.Run(resultAt)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "result: %d\n", result)
			fmt.Fprintf(w, "output: %v\n", c.Output())
			fmt.Fprintf(w, "steps:  %d (%.0f/s)\n", c.Steps(), c.Frequency())
			return nil
		},
	}

	cmd.Flags().Int64Slice("input", nil, "Value to queue as program input. May be repeated.")
	cmd.Flags().Int64("result", 0, "Address to print once the program halts.")
	return cmd
}

func newAsmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asm <source file>",
		Short: "Assemble a program.",
		Long:  "Assemble the given source file and print the program in the comma separated form read by exec.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fd, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open source")
			}
			defer fd.Close()

			m, err := asm.Build(args[0], fd)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), asm.Format(m))
			return nil
		},
	}
}

func newDisasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm <program file>",
		Short: "Disassemble a program.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewController(false)
			if err := c.Load(args[0]); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), asm.Disassemble(c.Memory()))
			return nil
		},
	}
}
