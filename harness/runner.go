// Package harness runs one puzzle day from the command line: it resolves
// the input, parses it, runs the selected parts and prints the answers.
package harness

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/jorge-barreto/aoch/day"
)

// Runner drives one day through parse and its parts.
type Runner[T, A any] struct {
	Day      day.Day[T, A]
	Config   Config
	Embedded string    // input compiled into the day program
	Stdin    io.Reader // defaults to os.Stdin
	Out      io.Writer // defaults to os.Stdout
	Logger   *zap.Logger
}

// Run executes the configured number of repeats. Errors from parsing or
// solving are returned as-is, wrapped with the stage they came from; the
// runner does not recover from them.
func (r *Runner[T, A]) Run(ctx context.Context) error {
	if err := r.Config.Validate(); err != nil {
		return err
	}
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.Int("day", r.Day.Number()))

	input, err := r.Config.Input.Read(r.Embedded, r.Stdin)
	if err != nil {
		return fmt.Errorf("reading input from %s: %w", r.Config.Input, err)
	}
	logger.Debug("input resolved",
		zap.Stringer("source", r.Config.Input),
		zap.Int("bytes", len(input)))

	var data T
	if !r.Config.ParsePerRun {
		if data, err = r.parse(logger, input); err != nil {
			return err
		}
	}

	parts := r.Config.Part.Parts()
	for i := 0; i < r.Config.Repeat; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if r.Config.ParsePerRun {
			if data, err = r.parse(logger, input); err != nil {
				return err
			}
		}
		for _, part := range parts {
			answer, err := r.solve(logger, part, data)
			if err != nil {
				return err
			}
			if !r.Config.Quiet {
				fmt.Fprintf(out, "Day %d Part %d: %v\n", r.Day.Number(), int(part), answer)
			}
		}
	}
	return nil
}

func (r *Runner[T, A]) parse(logger *zap.Logger, input string) (T, error) {
	var data T
	_, err := measure(logger, "parse", r.Config.AllocStats, func() error {
		var err error
		data, err = r.Day.Parse(input)
		return err
	})
	if err != nil {
		return data, fmt.Errorf("day %d: parsing input: %w", r.Day.Number(), err)
	}
	return data, nil
}

func (r *Runner[T, A]) solve(logger *zap.Logger, part day.Part, data T) (A, error) {
	var answer A
	stage := fmt.Sprintf("part%d", int(part))
	_, err := measure(logger, stage, r.Config.AllocStats, func() error {
		var err error
		answer, err = day.Solve(r.Day, part, data)
		return err
	})
	if err != nil {
		return answer, fmt.Errorf("day %d, %s: %w", r.Day.Number(), part, err)
	}
	return answer, nil
}
