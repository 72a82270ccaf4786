package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/tetris"
)

type rootOptions struct {
	SimOptions
	Verbose   bool
	Clipboard bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "blockfall-sim",
		Short: "Play headless blockfall games and report the results",
		Long: `Run a batch of headless blockfall games driven by a bot and print a
Markdown report with scores, line clear counts and scheduler timings.

Example:
  blockfall-sim --games 20 --ticks 2000 --seed 7
  blockfall-sim --bot script --script "left,left,rotate,down" --print-board`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.Games, "games", "n", 10, "number of games to play")
	flags.IntVar(&opts.Ticks, "ticks", 1000, "maximum gravity ticks per game")
	flags.Uint64Var(&opts.Seed, "seed", 1, "random seed for pieces and the random bot")
	flags.StringVar(&opts.Bot, "bot", botRandom, "input bot (random|script)")
	flags.StringVar(&opts.Script, "script", "", "comma or space separated commands for the script bot")
	flags.IntVar(&opts.Moves, "moves", 3, "maximum commands the random bot queues per tick")
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML game configuration")
	flags.StringVar(&opts.Picker, "picker", "", fmt.Sprintf("shape picker override (%s|%s)", tetris.PickerUniform, tetris.PickerBag))
	flags.BoolVar(&opts.PrintBoard, "print-board", false, "include each game's final board in the report")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&opts.Clipboard, "clipboard", false, "also copy the report to the clipboard")

	return cmd
}

func runSim(cmd *cobra.Command, opts *rootOptions) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	slog.Info("running simulation", "games", opts.Games, "ticks", opts.Ticks, "bot", opts.Bot, "seed", opts.Seed)
	report, err := Simulate(opts.SimOptions)
	if err != nil {
		return err
	}
	slog.Info("simulation finished", "elapsed", report.TotalTime, "lines", report.Totals.Lines)

	var buf bytes.Buffer
	if err := report.Generate(&buf); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	for i, g := range report.Results {
		if g.Board != "" {
			fmt.Fprintf(&buf, "\n### Game %d final board\n```\n%s```\n", i+1, g.Board)
		}
	}

	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return err
	}

	if opts.Clipboard {
		if err := clipboard.WriteAll(buf.String()); err != nil {
			slog.Warn("could not copy report to clipboard", "error", err)
		} else {
			slog.Info("report copied to clipboard")
		}
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
