package harness

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/jorge-barreto/aoch/day"
	"github.com/jorge-barreto/aoch/internal/logging"
	"github.com/jorge-barreto/aoch/internal/ux"
)

// Flags returns the run flags shared by single-day and multi-day programs.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "input-file", Aliases: []string{"i"}, Usage: "read input from `PATH` instead of the embedded input; - reads stdin"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "do not print answers"},
		&cli.IntFlag{Name: "repeat", Aliases: []string{"n"}, Value: 1, Usage: "run the selected parts `N` times"},
		&cli.BoolFlag{Name: "parse-per-run", Usage: "re-parse the input on every repeat"},
		&cli.BoolFlag{Name: "one", Usage: "only run part one"},
		&cli.BoolFlag{Name: "two", Usage: "only run part two"},
		&cli.BoolFlag{Name: "alloc-stats", Usage: "log allocations made by each stage"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
	}
}

// ConfigFromCommand builds a Config from parsed flags. A positional input
// path is accepted as well as --input-file.
func ConfigFromCommand(cmd *cli.Command) (Config, error) {
	cfg := Config{
		Input:       ResolveInput(cmd.String("input-file"), cmd.Args().First()),
		Part:        SelectPart(cmd.Bool("one"), cmd.Bool("two")),
		Repeat:      int(cmd.Int("repeat")),
		ParsePerRun: cmd.Bool("parse-per-run"),
		Quiet:       cmd.Bool("quiet"),
		AllocStats:  cmd.Bool("alloc-stats"),
		Verbose:     cmd.Bool("verbose"),
	}
	if cfg.Repeat < 1 {
		return cfg, fmt.Errorf("--repeat must be at least 1, got %d", cfg.Repeat)
	}
	if cmd.Args().Len() > 1 {
		return cfg, fmt.Errorf("expected at most one input path, got %d", cmd.Args().Len())
	}
	return cfg, nil
}

// Command returns the command-line program for a single day.
func Command[T, A any](d day.Day[T, A], embedded string) *cli.Command {
	entry := Bind(d, embedded)
	return &cli.Command{
		Name:      fmt.Sprintf("day%02d", d.Number()),
		Usage:     entry.Title(),
		ArgsUsage: "[input-file|-]",
		Flags:     Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := ConfigFromCommand(cmd)
			if err != nil {
				return err
			}
			return runEntry(ctx, cmd, entry, cfg)
		},
	}
}

// Main runs d as a program and exits non-zero on any failure.
func Main[T, A any](d day.Day[T, A], embedded string) {
	run(Command(d, embedded))
}

func runEntry(ctx context.Context, cmd *cli.Command, e Entry, cfg Config) error {
	logger, err := logging.New(cfg.Verbose || cfg.AllocStats)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	root := cmd.Root()
	return e.Run(ctx, cfg, root.Reader, root.Writer, logging.WithRun(logger))
}

func run(cmd *cli.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		stop()
		fail(err)
	}
}

func fail(err error) {
	ux.Error(os.Stderr, err)
	os.Exit(1)
}

// Entry is a day with its types erased, for programs that host several days.
type Entry struct {
	Day  int
	Name string
	run  func(ctx context.Context, cfg Config, stdin io.Reader, out io.Writer, logger *zap.Logger) error
}

// Bind wraps d and its embedded input into an Entry.
func Bind[T, A any](d day.Day[T, A], embedded string) Entry {
	return Entry{
		Day:  d.Number(),
		Name: d.Name(),
		run: func(ctx context.Context, cfg Config, stdin io.Reader, out io.Writer, logger *zap.Logger) error {
			r := &Runner[T, A]{
				Day:      d,
				Config:   cfg,
				Embedded: embedded,
				Stdin:    stdin,
				Out:      out,
				Logger:   logger,
			}
			return r.Run(ctx)
		},
	}
}

// Title is the human-readable label, e.g. "Day 12: Passage Pathing".
func (e Entry) Title() string {
	if e.Name == "" {
		return fmt.Sprintf("Day %d", e.Day)
	}
	return fmt.Sprintf("Day %d: %s", e.Day, e.Name)
}

// Run executes the entry with the given configuration.
func (e Entry) Run(ctx context.Context, cfg Config, stdin io.Reader, out io.Writer, logger *zap.Logger) error {
	if e.run == nil {
		return fmt.Errorf("day %d has no runner (use harness.Bind)", e.Day)
	}
	return e.run(ctx, cfg, stdin, out, logger)
}
