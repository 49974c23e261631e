package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/jorge-barreto/aoch/internal/config"
	"github.com/jorge-barreto/aoch/internal/docs"
	"github.com/jorge-barreto/aoch/internal/fetch"
	"github.com/jorge-barreto/aoch/internal/logging"
	"github.com/jorge-barreto/aoch/internal/manifest"
	"github.com/jorge-barreto/aoch/internal/scaffold"
	"github.com/jorge-barreto/aoch/internal/ux"
)

func main() {
	app := &cli.Command{
		Name:        "aoch",
		Usage:       "Scaffold and run Advent of Code solutions in Go",
		Description: "Run 'aoch docs' for documentation on days, testing, inputs and configuration.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Debug logging"},
			&cli.StringFlag{Name: "session", Usage: "Session `TOKEN` for downloading inputs (overrides " + fetch.SessionEnv + " and the session file)"},
		},
		Commands: []*cli.Command{
			initCmd(),
			newCmd(),
			adoptCmd(),
			downloadCmd(),
			statusCmd(),
			docsCmd(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		stop()
		ux.Error(os.Stderr, err)
		os.Exit(1)
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize an aoch project in the current directory",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "year", Usage: "Event `YEAR` (defaults to the latest event)"},
			&cli.StringFlag{Name: "module", Usage: "Module `PATH` for a new go.mod"},
			&cli.BoolFlag{Name: "no-git", Usage: "Do not run git init"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			year := int(cmd.Int("year"))
			if year == 0 {
				year = latestEvent(time.Now())
			}
			s := &scaffold.Scaffolder{
				Root:    dir,
				Resolve: resolver(""),
				Logger:  logger,
			}
			ux.Step("Initializing %d project in %s", year, dir)
			if err := s.Init(ctx, scaffold.InitOptions{
				Year:   year,
				Module: cmd.String("module"),
				NoGit:  cmd.Bool("no-git"),
			}); err != nil {
				return err
			}
			ux.Success("Initialized %s", config.FileName)
			ux.Hint("Next", "aoch new 1")
			return nil
		},
	}
}

func dayFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "omit-deps", Aliases: []string{"o"}, Usage: "Do not add default-deps to go.mod"},
		&cli.StringSliceFlag{Name: "install-dep", Aliases: []string{"i"}, Usage: "Add `MODULE[@VERSION]` to go.mod (repeatable)"},
		&cli.BoolFlag{Name: "no-download", Usage: "Write an empty input instead of downloading it"},
	}
}

func dayOptions(cmd *cli.Command) scaffold.DayOptions {
	return scaffold.DayOptions{
		OmitDeps: cmd.Bool("omit-deps"),
		Deps:     cmd.StringSlice("install-dep"),
		Download: !cmd.Bool("no-download"),
	}
}

func newCmd() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Scaffold a new day",
		ArgsUsage: "<day> [name]",
		Flags:     dayFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, logger, err := openProject(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			answers := scaffold.DayAnswers{Name: strings.Join(cmd.Args().Tail(), " ")}
			if arg := cmd.Args().First(); arg != "" {
				if answers.Day, err = scaffold.ParseDay(arg); err != nil {
					return err
				}
			} else if ux.Interactive() {
				if answers, err = scaffold.PromptDay(answers); err != nil {
					return err
				}
			} else {
				return fmt.Errorf("usage: aoch new <day> [name]")
			}

			opts := dayOptions(cmd)
			opts.Day = answers.Day
			opts.Name = answers.Name
			ux.Step("Scaffolding day %d", opts.Day)
			if err := s.NewDay(ctx, opts); err != nil {
				return err
			}
			dir := "./" + config.DayDir(opts.Day)
			ux.Success("Day %d ready", opts.Day)
			ux.Hint("Test", "go test "+dir)
			ux.Hint("Run", "go run "+dir)
			return nil
		},
	}
}

func adoptCmd() *cli.Command {
	return &cli.Command{
		Name:      "adopt",
		Usage:     "Scaffold the current directory, taking the day number from its name",
		ArgsUsage: "[name]",
		Flags:     dayFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			s, logger, err := openProject(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			name := strings.Join(cmd.Args().Slice(), " ")
			ux.Step("Adopting %s", filepath.Base(dir))
			err = s.Adopt(ctx, dir, name, dayOptions(cmd))
			if errors.Is(err, scaffold.ErrNoDayNumber) {
				ux.Warn("%v; nothing to do", err)
				return nil
			}
			return err
		},
	}
}

func downloadCmd() *cli.Command {
	return &cli.Command{
		Name:      "download",
		Usage:     "Download inputs for the given days, or every registered day",
		ArgsUsage: "[day...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Replace inputs already on disk"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, logger, err := openProject(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if s.Inputs == nil {
				return fetch.ErrNoSession
			}

			var days []int
			for _, arg := range cmd.Args().Slice() {
				n, err := scaffold.ParseDay(arg)
				if err != nil {
					return err
				}
				days = append(days, n)
			}
			ux.Step("Downloading inputs for %d", s.Config.Year)
			return s.Download(ctx, days, cmd.Bool("force"))
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "List scaffolded days and their inputs",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, logger, err := openProject(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			ux.RenderStatus(ux.Out, s.Config.Year, s.Config.Module, s.Status())
			return nil
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Fprint(ux.Out, "\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Fprintf(ux.Out, "  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Fprintln(ux.Out, "\nRun 'aoch docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			return docs.Render(ux.Out, t, ux.IsTerminal(os.Stdout))
		},
	}
}

func newLogger(cmd *cli.Command) (*zap.Logger, error) {
	logger, err := logging.New(cmd.Bool("verbose"))
	if err != nil {
		return nil, err
	}
	return logging.WithRun(logger), nil
}

// openProject loads the project enclosing the working directory and builds
// a scaffolder for it. Inputs is left nil when no session token is found.
func openProject(cmd *cli.Command) (*scaffold.Scaffolder, *zap.Logger, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	root, err := config.FindRoot(wd)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, nil, err
	}

	s := &scaffold.Scaffolder{
		Root:    root,
		Config:  cfg,
		Resolve: resolver(cfg.ProxyURL),
		Logger:  logger,
	}
	session, err := fetch.Session(cmd.String("session"), cfg.SessionPath(root))
	switch {
	case errors.Is(err, fetch.ErrNoSession):
		logger.Debug("no session token found", zap.String("session-file", cfg.SessionPath(root)))
	case err != nil:
		return nil, nil, err
	default:
		s.Inputs = &fetch.Client{BaseURL: cfg.BaseURL, Year: cfg.Year, Session: session, Logger: logger}
	}
	return s, logger, nil
}

func resolver(proxyURL string) scaffold.Resolver {
	if proxyURL == "" {
		proxyURL = "https://proxy.golang.org"
	}
	return func(ctx context.Context, r manifest.Requirement) (manifest.Requirement, error) {
		return manifest.Resolve(ctx, proxyURL, r)
	}
}

// latestEvent is the most recent event year that has started by now.
func latestEvent(now time.Time) int {
	if now.Month() == time.December {
		return now.Year()
	}
	return now.Year() - 1
}
