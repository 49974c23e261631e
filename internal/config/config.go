package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/jorge-barreto/aoch/internal/fsutil"
)

// FileName is the project config file at the root of an aoch project.
const FileName = "aoch.yaml"

// Day is one scaffolded puzzle day.
type Day struct {
	Day  int    `yaml:"day"`
	Name string `yaml:"name,omitempty"`
	Dir  string `yaml:"dir,omitempty"`
}

type Config struct {
	Year        int      `yaml:"year"`
	Module      string   `yaml:"module"`
	SessionFile string   `yaml:"session-file,omitempty"`
	InputFile   string   `yaml:"input-file,omitempty"`
	BaseURL     string   `yaml:"base-url,omitempty"`
	ProxyURL    string   `yaml:"proxy-url,omitempty"`
	DefaultDeps []string `yaml:"default-deps,omitempty"`
	Days        []Day    `yaml:"days,omitempty"`
}

// Load reads root/aoch.yaml and returns a validated Config.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save validates cfg and writes it to root/aoch.yaml.
func Save(root string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return fsutil.WriteFile(filepath.Join(root, FileName), data, 0644)
}

// FindRoot walks up from dir to the first directory holding aoch.yaml.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if fsutil.Exists(filepath.Join(dir, FileName)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found (searched from cwd to root); run 'aoch init' first", FileName)
		}
		dir = parent
	}
}

// Lookup returns the registered entry for day n.
func (c *Config) Lookup(n int) (Day, bool) {
	i := slices.IndexFunc(c.Days, func(d Day) bool { return d.Day == n })
	if i < 0 {
		return Day{}, false
	}
	return c.Days[i], true
}

// Register adds or updates day d, keeping days sorted. It reports whether
// the config changed.
func (c *Config) Register(d Day) bool {
	if d.Dir == "" {
		d.Dir = DayDir(d.Day)
	}
	i := slices.IndexFunc(c.Days, func(e Day) bool { return e.Day == d.Day })
	if i >= 0 {
		if d.Name == "" {
			d.Name = c.Days[i].Name
		}
		if c.Days[i] == d {
			return false
		}
		c.Days[i] = d
		return true
	}
	c.Days = append(c.Days, d)
	slices.SortFunc(c.Days, func(a, b Day) int { return a.Day - b.Day })
	return true
}

// DayDir is the default directory name for day n.
func DayDir(n int) string {
	return fmt.Sprintf("day%02d", n)
}

// SessionPath returns the session file path resolved against root.
func (c *Config) SessionPath(root string) string {
	return fsutil.ExpandPath(c.SessionFile, root)
}
