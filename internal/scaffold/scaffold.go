// Package scaffold creates aoch projects and the per-day programs inside
// them.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jorge-barreto/aoch/internal/config"
	"github.com/jorge-barreto/aoch/internal/fsutil"
	"github.com/jorge-barreto/aoch/internal/manifest"
	"github.com/jorge-barreto/aoch/internal/ux"
	"github.com/jorge-barreto/aoch/internal/vcs"
)

// HarnessModule is the module generated day programs import.
const HarnessModule = "github.com/jorge-barreto/aoch"

// GoVersion is written to new go.mod files.
const GoVersion = "1.24"

// createManifest is replaced in tests.
var createManifest = manifest.Create

// Inputs downloads puzzle input. *fetch.Client implements it.
type Inputs interface {
	Input(ctx context.Context, day int) ([]byte, error)
}

// Resolver turns a requirement with a version query into a concrete one.
type Resolver func(ctx context.Context, r manifest.Requirement) (manifest.Requirement, error)

// Scaffolder writes files into one aoch project.
type Scaffolder struct {
	Root    string
	Config  *config.Config
	Inputs  Inputs // nil when no session token is available
	Resolve Resolver
	Logger  *zap.Logger
}

func (s *Scaffolder) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// InitOptions configures a new project.
type InitOptions struct {
	Year   int
	Module string
	NoGit  bool
}

// Init creates aoch.yaml, go.mod and .gitignore in s.Root and initializes
// a git repository. An existing go.mod is kept and its module path used.
func (s *Scaffolder) Init(ctx context.Context, opts InitOptions) error {
	cfgPath := filepath.Join(s.Root, config.FileName)
	if fsutil.Exists(cfgPath) {
		return fmt.Errorf("%s already exists in %s", config.FileName, s.Root)
	}

	modPath := filepath.Join(s.Root, "go.mod")
	if mp, err := manifest.ModulePath(modPath); err == nil {
		if opts.Module != "" && opts.Module != mp {
			return fmt.Errorf("go.mod declares module %s, not %s", mp, opts.Module)
		}
		opts.Module = mp
	}
	if opts.Module == "" {
		opts.Module = fmt.Sprintf("aoc%d", opts.Year)
	}

	cfg := &config.Config{Year: opts.Year, Module: opts.Module}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if fsutil.Exists(modPath) {
		ux.Skipped("go.mod", "already exists")
	} else {
		if err := createManifest(modPath, opts.Module, GoVersion); err != nil {
			return fmt.Errorf("creating go.mod: %w", err)
		}
		ux.Created("go.mod")
	}
	if err := s.addDeps(ctx, []string{HarnessModule}); err != nil {
		ux.Warn("could not add %s to go.mod: %v", HarnessModule, err)
	}

	ignore, err := render(templates, "gitignore", projectData{SessionFile: cfg.SessionFile, InputFile: cfg.InputFile})
	if err != nil {
		return err
	}
	if created, err := fsutil.CreateFile(filepath.Join(s.Root, ".gitignore"), ignore, 0644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	} else if created {
		ux.Created(".gitignore")
	} else {
		ux.Skipped(".gitignore", "already exists")
	}

	// aoch.yaml goes last so a failed init can be rerun.
	if err := config.Save(s.Root, cfg); err != nil {
		return err
	}
	s.Config = cfg
	ux.Created(config.FileName)

	switch {
	case opts.NoGit:
	case vcs.IsRepo(ctx, s.Root):
		ux.Skipped("git init", "already a repository")
	default:
		if err := vcs.Init(ctx, s.Root); err != nil {
			ux.Warn("%v", err)
		} else {
			ux.Created(".git")
		}
	}
	return nil
}

// DayOptions configures one scaffolded day.
type DayOptions struct {
	Day      int
	Name     string
	Dir      string // defaults to <root>/dayNN
	Existing bool   // the directory may already exist
	OmitDeps bool
	Deps     []string // extra module[@version] requirements
	Download bool
}

// NewDay creates the day directory with its program, test and input, adds
// dependencies to go.mod and registers the day in aoch.yaml.
func (s *Scaffolder) NewDay(ctx context.Context, opts DayOptions) error {
	if opts.Day < 1 || opts.Day > 25 {
		return fmt.Errorf("day %d is out of range [1, 25]", opts.Day)
	}
	if opts.Dir == "" {
		opts.Dir = filepath.Join(s.Root, config.DayDir(opts.Day))
	}
	opts.Name = titleName(opts.Name)
	rel := s.rel(opts.Dir)

	if opts.Existing {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", rel, err)
		}
	} else if err := os.Mkdir(opts.Dir, 0755); err != nil {
		return fmt.Errorf("unable to create folder %s: %w", rel, err)
	} else {
		ux.Created(rel + "/")
	}

	data := dayData{
		Day:           opts.Day,
		DayNum:        fmt.Sprintf("%02d", opts.Day),
		DayName:       opts.Name,
		HarnessModule: HarnessModule,
		InputFile:     s.Config.InputFile,
	}
	for _, f := range []struct{ tmpl, file string }{
		{"main.go", "main.go"},
		{"main_test.go", "main_test.go"},
	} {
		content, err := render(templates, f.tmpl, data)
		if err != nil {
			return err
		}
		if err := s.create(filepath.Join(opts.Dir, f.file), content); err != nil {
			return err
		}
	}

	if err := s.placeInput(ctx, opts.Day, opts.Dir, opts.Download); err != nil {
		return err
	}

	var deps []string
	if !opts.OmitDeps {
		deps = append(deps, s.Config.DefaultDeps...)
	}
	deps = append(deps, opts.Deps...)
	if err := s.addDeps(ctx, deps); err != nil {
		return err
	}

	dirRel, err := filepath.Rel(s.Root, opts.Dir)
	if err != nil || strings.HasPrefix(dirRel, "..") {
		dirRel = opts.Dir
	}
	if s.Config.Register(config.Day{Day: opts.Day, Name: opts.Name, Dir: filepath.ToSlash(dirRel)}) {
		if err := config.Save(s.Root, s.Config); err != nil {
			return fmt.Errorf("registering day %d: %w", opts.Day, err)
		}
		ux.Updated(config.FileName)
	}
	s.logger().Debug("day scaffolded", zap.Int("day", opts.Day), zap.String("dir", opts.Dir))
	return nil
}

// ErrNoDayNumber means a directory name has no single run of digits.
var ErrNoDayNumber = errors.New("unable to retrieve day number from folder name")

// DayFromDir extracts the day number from a directory name such as
// "day07" or "07-amplifiers". The digits must form one contiguous run.
func DayFromDir(name string) (int, error) {
	nums := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return ' '
	}, filepath.Base(name))
	trimmed := strings.TrimSpace(nums)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w %q (are there non-contiguous numbers?)", ErrNoDayNumber, filepath.Base(name))
	}
	return n, nil
}

// Adopt scaffolds an existing directory, taking the day number from its
// name.
func (s *Scaffolder) Adopt(ctx context.Context, dir, name string, opts DayOptions) error {
	n, err := DayFromDir(dir)
	if err != nil {
		return err
	}
	opts.Day = n
	opts.Name = name
	opts.Dir = dir
	opts.Existing = true
	return s.NewDay(ctx, opts)
}

// Download fetches inputs for days, or every registered day when days is
// empty. Days without a directory are skipped. Existing non-empty inputs
// are kept unless force is set.
func (s *Scaffolder) Download(ctx context.Context, days []int, force bool) error {
	if s.Inputs == nil {
		return fmt.Errorf("downloading inputs needs a session token")
	}
	if len(days) == 0 {
		for _, d := range s.Config.Days {
			days = append(days, d.Day)
		}
	}
	if len(days) == 0 {
		ux.Warn("no days registered in %s", config.FileName)
		return nil
	}
	var failed []string
	for _, n := range days {
		dir := s.dayDir(n)
		if !fsutil.Exists(dir) {
			ux.Skipped(s.rel(dir), "no such directory")
			continue
		}
		if err := s.downloadInput(ctx, n, dir, force); err != nil {
			failed = append(failed, fmt.Sprintf("day %d: %v", n, err))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d download(s) failed:\n  %s", len(failed), strings.Join(failed, "\n  "))
	}
	return nil
}

// Status lists registered days and any dayNN directories that are not
// registered yet.
func (s *Scaffolder) Status() []ux.DayStatus {
	byDay := map[int]ux.DayStatus{}
	for _, d := range s.Config.Days {
		byDay[d.Day] = ux.DayStatus{Day: d.Day, Name: d.Name, Dir: d.Dir, Registered: true}
	}
	entries, _ := os.ReadDir(s.Root)
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "day") {
			continue
		}
		n, err := DayFromDir(e.Name())
		if err != nil || n < 1 || n > 25 {
			continue
		}
		if _, ok := byDay[n]; !ok {
			byDay[n] = ux.DayStatus{Day: n, Dir: e.Name()}
		}
	}

	out := make([]ux.DayStatus, 0, len(byDay))
	for _, st := range byDay {
		dir := fsutil.ExpandPath(st.Dir, s.Root)
		st.Exists = fsutil.Exists(dir)
		st.InputBytes = fsutil.Size(filepath.Join(dir, s.Config.InputFile))
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func (s *Scaffolder) dayDir(n int) string {
	dir := config.DayDir(n)
	if d, ok := s.Config.Lookup(n); ok && d.Dir != "" {
		dir = d.Dir
	}
	return fsutil.ExpandPath(dir, s.Root)
}

// placeInput fills dir/<input-file> while scaffolding. Without a session,
// or when the download fails, an empty placeholder is written so the day's
// //go:embed still compiles.
func (s *Scaffolder) placeInput(ctx context.Context, n int, dir string, download bool) error {
	if download {
		if s.Inputs == nil {
			ux.Warn("no session token; day %d input left empty", n)
		} else if err := s.downloadInput(ctx, n, dir, false); err != nil {
			s.logger().Debug("download failed", zap.Int("day", n), zap.Error(err))
			ux.Warn("day %d input not downloaded: %v", n, err)
		} else {
			return nil
		}
	}
	path := filepath.Join(dir, s.Config.InputFile)
	created, err := fsutil.CreateFile(path, nil, 0644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.rel(path), err)
	}
	if created {
		ux.Created(s.rel(path))
	}
	return nil
}

// downloadInput writes the downloaded input for day n into dir. A
// non-empty input already on disk is kept unless force is set.
func (s *Scaffolder) downloadInput(ctx context.Context, n int, dir string, force bool) error {
	path := filepath.Join(dir, s.Config.InputFile)
	rel := s.rel(path)
	existing := fsutil.Size(path)
	if existing > 0 && !force {
		ux.Skipped(rel, "already downloaded")
		return nil
	}
	data, err := s.Inputs.Input(ctx, n)
	if err != nil {
		return err
	}
	if err := fsutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	if existing >= 0 {
		ux.Updated(rel)
	} else {
		ux.Created(rel)
	}
	return nil
}

func (s *Scaffolder) addDeps(ctx context.Context, deps []string) error {
	if len(deps) == 0 {
		return nil
	}
	reqs := make([]manifest.Requirement, 0, len(deps))
	for _, d := range deps {
		r, err := manifest.ParseRequirement(d)
		if err != nil {
			return fmt.Errorf("dependency %q: %w", d, err)
		}
		if s.Resolve != nil {
			if r, err = s.Resolve(ctx, r); err != nil {
				return err
			}
		}
		reqs = append(reqs, r)
	}
	added, err := manifest.AddRequires(filepath.Join(s.Root, "go.mod"), reqs)
	if err != nil {
		return fmt.Errorf("editing go.mod: %w", err)
	}
	for _, r := range added {
		s.logger().Debug("requirement added", zap.Stringer("module", r))
	}
	if len(added) > 0 {
		ux.Updated("go.mod")
	}
	return nil
}

func (s *Scaffolder) create(path string, content []byte) error {
	created, err := fsutil.CreateFile(path, content, 0644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.rel(path), err)
	}
	if created {
		ux.Created(s.rel(path))
	} else {
		ux.Skipped(s.rel(path), "already exists")
	}
	return nil
}

func (s *Scaffolder) rel(path string) string {
	if r, err := filepath.Rel(s.Root, path); err == nil && !strings.HasPrefix(r, "..") {
		return filepath.ToSlash(r)
	}
	return path
}

var title = cases.Title(language.English)

// titleName title-cases an all-lowercase day name, so "sonar sweep"
// becomes "Sonar Sweep". Names with any capital are kept as written.
func titleName(name string) string {
	name = strings.TrimSpace(name)
	if name != strings.ToLower(name) {
		return name
	}
	return title.String(name)
}
