package docs

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Topic holds a single documentation article.
type Topic struct {
	Name    string // short slug used as CLI argument
	Title   string // human-readable title
	Summary string // one-line description for topic listing
	Content string // full article text in Markdown
}

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Get looks up a topic by name. Returns an error with a hint if not found.
func Get(name string) (Topic, error) {
	for _, t := range topics {
		if t.Name == name {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("unknown topic %q; run 'aoch docs' to list available topics", name)
}

// Render writes t to w. With styled set the Markdown is rendered for a
// terminal; otherwise it is written as-is.
func Render(w io.Writer, t Topic, styled bool) error {
	if !styled {
		_, err := io.WriteString(w, t.Content)
		return err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(t.Content)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", t.Name, err)
	}
	_, err = io.WriteString(w, out)
	return err
}
