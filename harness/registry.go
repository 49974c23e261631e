package harness

import (
	"context"
	"fmt"
	"slices"

	cli "github.com/urfave/cli/v3"
)

// Registry holds the days compiled into one program.
type Registry struct {
	entries []Entry
}

// NewRegistry returns a registry holding entries, rejecting duplicate days.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{}
	for _, e := range entries {
		if err := r.Add(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers e. Day numbers must be within 1..25 and unique.
func (r *Registry) Add(e Entry) error {
	if e.Day < 1 || e.Day > 25 {
		return fmt.Errorf("day %d is out of range [1, 25]", e.Day)
	}
	for _, existing := range r.entries {
		if existing.Day == e.Day {
			return fmt.Errorf("day %d registered twice", e.Day)
		}
	}
	r.entries = append(r.entries, e)
	slices.SortFunc(r.entries, func(a, b Entry) int { return a.Day - b.Day })
	return nil
}

// Entries returns the registered days in ascending order.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Select returns the entry for day n. Zero selects the latest day.
func (r *Registry) Select(n int) (Entry, error) {
	if len(r.entries) == 0 {
		return Entry{}, fmt.Errorf("no days registered")
	}
	if n == 0 {
		return r.entries[len(r.entries)-1], nil
	}
	for _, e := range r.entries {
		if e.Day == n {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("day %d is not registered", n)
}

// Command returns a program that runs one registered day, chosen by --day.
func (r *Registry) Command(name string) *cli.Command {
	flags := append([]cli.Flag{
		&cli.IntFlag{Name: "day", Aliases: []string{"d"}, Usage: "day `N` to run; defaults to the latest registered day"},
	}, Flags()...)
	return &cli.Command{
		Name:      name,
		Usage:     "Run an Advent of Code day",
		ArgsUsage: "[input-file|-]",
		Flags:     flags,
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List registered days",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					for _, e := range r.entries {
						fmt.Fprintln(cmd.Root().Writer, e.Title())
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := r.Select(int(cmd.Int("day")))
			if err != nil {
				return err
			}
			cfg, err := ConfigFromCommand(cmd)
			if err != nil {
				return err
			}
			return runEntry(ctx, cmd, e, cfg)
		},
	}
}

// MainDays runs a program hosting several days and exits non-zero on any
// failure.
func MainDays(entries ...Entry) {
	r, err := NewRegistry(entries...)
	if err != nil {
		fail(err)
	}
	run(r.Command("aoc"))
}
