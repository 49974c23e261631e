package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrMissingTemplateKey = errors.New("missing template key")
	ErrUnexpandedToken    = errors.New("unexpanded template token")
)

// leftover matches {{Name}}-style placeholders that survived rendering.
var leftover = regexp.MustCompile(`\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// dayData is the data every day template is executed with.
type dayData struct {
	Day           int
	DayNum        string // zero-padded, e.g. "07"
	DayName       string
	HarnessModule string
	InputFile     string
}

type projectData struct {
	SessionFile string
	InputFile   string
}

// render executes templates/<name>.tmpl from fsys with missingkey=error.
func render(fsys fs.FS, name string, data any) ([]byte, error) {
	path := "templates/" + name + ".tmpl"
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}
	if loc := leftover.Find(buf.Bytes()); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, loc, name)
	}
	return buf.Bytes(), nil
}
