package ux

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// DayStatus is one row of the project status listing.
type DayStatus struct {
	Day        int
	Name       string
	Dir        string
	Registered bool  // listed in aoch.yaml
	Exists     bool  // the day directory is on disk
	InputBytes int64 // -1 when no input file exists
}

// RenderStatus prints the project header followed by one line per day.
func RenderStatus(w io.Writer, year int, module string, days []DayStatus) {
	fmt.Fprintf(w, "%s  %d\n", Bold.Render("Year:"), year)
	fmt.Fprintf(w, "%s %s\n", Bold.Render("Module:"), module)

	if len(days) == 0 {
		fmt.Fprintf(w, "\n  %s\n\n", Dim.Render("(no days yet)"))
		return
	}

	fmt.Fprintf(w, "\n%s\n", Bold.Render("Days:"))
	for _, d := range days {
		marker := "  "
		if !d.Registered {
			marker = Yellow.Render("?") + " "
		}
		name := d.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "  %s%s  %-28s %s\n", marker, Dim.Render(fmt.Sprintf("%02d", d.Day)), name, inputState(d))
	}
	fmt.Fprintln(w)
}

func inputState(d DayStatus) string {
	switch {
	case !d.Exists:
		return Red.Render("missing " + d.Dir)
	case d.InputBytes < 0:
		return Yellow.Render("no input")
	case d.InputBytes == 0:
		return Yellow.Render("empty input")
	default:
		return Green.Render("input " + humanize.Bytes(uint64(d.InputBytes)))
	}
}
