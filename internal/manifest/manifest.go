// Package manifest edits go.mod files for scaffolded projects.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"

	"github.com/jorge-barreto/aoch/internal/fsutil"
)

// Latest is the version query resolved through the module proxy.
const Latest = "latest"

var httpClient = &http.Client{Timeout: 15 * time.Second}

// Requirement is a module path with an optional version or query.
type Requirement struct {
	Path    string
	Version string
}

func (r Requirement) String() string {
	if r.Version == "" {
		return r.Path
	}
	return r.Path + "@" + r.Version
}

// ParseRequirement parses "path" or "path@version". A missing version
// means latest.
func ParseRequirement(s string) (Requirement, error) {
	path, version, _ := strings.Cut(strings.TrimSpace(s), "@")
	if err := module.CheckPath(path); err != nil {
		return Requirement{}, err
	}
	if version == "" {
		version = Latest
	}
	if version != Latest && !semver.IsValid(version) {
		return Requirement{}, fmt.Errorf("%s: %q is not a semantic version", path, version)
	}
	return Requirement{Path: path, Version: version}, nil
}

// Resolve turns a latest query into a concrete version by asking the
// module proxy at proxyURL.
func Resolve(ctx context.Context, proxyURL string, r Requirement) (Requirement, error) {
	if r.Version != "" && r.Version != Latest {
		return r, nil
	}
	escaped, err := module.EscapePath(r.Path)
	if err != nil {
		return r, err
	}
	url := fmt.Sprintf("%s/%s/@latest", strings.TrimRight(proxyURL, "/"), escaped)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return r, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return r, fmt.Errorf("resolving %s: %w", r.Path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return r, fmt.Errorf("resolving %s: %s: %s", r.Path, resp.Status, strings.TrimSpace(string(body)))
	}
	var info struct {
		Version string
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return r, fmt.Errorf("resolving %s: %w", r.Path, err)
	}
	if !semver.IsValid(info.Version) {
		return r, fmt.Errorf("resolving %s: proxy returned invalid version %q", r.Path, info.Version)
	}
	return Requirement{Path: r.Path, Version: info.Version}, nil
}

// Create writes a new go.mod declaring modulePath. It fails if path
// already exists.
func Create(path, modulePath, goVersion string) error {
	if fsutil.Exists(path) {
		return fmt.Errorf("%s already exists", path)
	}
	f := new(modfile.File)
	if err := f.AddModuleStmt(modulePath); err != nil {
		return err
	}
	if err := f.AddGoStmt(goVersion); err != nil {
		return err
	}
	data, err := f.Format()
	if err != nil {
		return err
	}
	return fsutil.WriteFile(path, data, 0644)
}

// ModulePath returns the module path declared by the go.mod at path.
func ModulePath(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mp := modfile.ModulePath(data)
	if mp == "" {
		return "", fmt.Errorf("%s: no module directive", path)
	}
	return mp, nil
}

// AddRequires adds reqs to the go.mod at path. Each requirement must carry
// a concrete version. A module already required at the same or a newer
// version is left alone. The requirements actually written are returned.
func AddRequires(path string, reqs []Requirement) ([]Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, err
	}

	var added []Requirement
	for _, r := range reqs {
		if !semver.IsValid(r.Version) {
			return nil, fmt.Errorf("%s: unresolved version %q", r.Path, r.Version)
		}
		if have := required(f, r.Path); have != "" && semver.Compare(have, r.Version) >= 0 {
			continue
		}
		if err := f.AddRequire(r.Path, r.Version); err != nil {
			return nil, err
		}
		added = append(added, r)
	}
	if len(added) == 0 {
		return nil, nil
	}

	f.Cleanup()
	out, err := f.Format()
	if err != nil {
		return nil, err
	}
	if err := fsutil.WriteFile(path, out, 0644); err != nil {
		return nil, err
	}
	return added, nil
}

func required(f *modfile.File, path string) string {
	for _, r := range f.Require {
		if r.Mod.Path == path {
			return r.Mod.Version
		}
	}
	return ""
}
