package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/mod/module"
)

const (
	firstYear       = 2015
	defaultSession  = "session.txt"
	defaultInput    = "input.txt"
	defaultBaseURL  = "https://adventofcode.com"
	defaultProxyURL = "https://proxy.golang.org"
)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Year < firstYear {
		return fmt.Errorf("config: 'year' must be %d or later, got %d", firstYear, cfg.Year)
	}
	if cfg.Module == "" {
		return fmt.Errorf("config: 'module' is required")
	}
	if err := module.CheckImportPath(cfg.Module); err != nil {
		return fmt.Errorf("config: 'module': %w", err)
	}

	if cfg.SessionFile == "" {
		cfg.SessionFile = defaultSession
	}
	if cfg.InputFile == "" {
		cfg.InputFile = defaultInput
	}
	if strings.ContainsAny(cfg.InputFile, `/\`) {
		return fmt.Errorf("config: 'input-file' must be a plain file name, got %q", cfg.InputFile)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.ProxyURL == "" {
		cfg.ProxyURL = defaultProxyURL
	}
	for _, key := range []struct{ name, value string }{{"base-url", cfg.BaseURL}, {"proxy-url", cfg.ProxyURL}} {
		u, err := url.Parse(key.value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config: '%s' must be an http(s) URL, got %q", key.name, key.value)
		}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.ProxyURL = strings.TrimRight(cfg.ProxyURL, "/")

	for _, dep := range cfg.DefaultDeps {
		path, _, _ := strings.Cut(dep, "@")
		if err := module.CheckPath(path); err != nil {
			return fmt.Errorf("config: 'default-deps': %w", err)
		}
	}

	seen := make(map[int]bool)
	for i := range cfg.Days {
		d := &cfg.Days[i]
		if d.Day < 1 || d.Day > 25 {
			return fmt.Errorf("config: days: day %d is out of range [1, 25]", d.Day)
		}
		if seen[d.Day] {
			return fmt.Errorf("config: days: duplicate day %d", d.Day)
		}
		seen[d.Day] = true
		if d.Dir == "" {
			d.Dir = DayDir(d.Day)
		}
	}
	return nil
}
