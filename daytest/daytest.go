// Package daytest checks day implementations against example inputs from
// the puzzle text.
//
//	func TestPartOne(t *testing.T) {
//		daytest.Run(t, Day{}, day.PartOne, []daytest.Case[int]{
//			{Input: example, Want: 2},
//		})
//	}
//
// A failing case stops the test function through t.Fatalf. Panics raised
// by the day under test are recovered and reported the same way, with the
// input that triggered them.
package daytest

import (
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/jorge-barreto/aoch/day"
)

// T is the subset of *testing.T the harness needs.
type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Case is one example input with the expected answer.
type Case[A any] struct {
	Input string
	Want  A
}

// Pair is one input/output example for a helper function.
type Pair[I, O any] struct {
	In   I
	Want O
}

var (
	renderer = lipgloss.NewRenderer(os.Stdout)
	wantText = renderer.NewStyle().Foreground(lipgloss.Color("2"))
	gotText  = renderer.NewStyle().Foreground(lipgloss.Color("1"))

	// Answers are compared field by field, unexported fields included.
	compare = cmp.Exporter(func(reflect.Type) bool { return true })
)

// Run parses each case's input and solves part of it, failing t at the
// first case whose answer differs from Want, whose parse or solve returns
// an error, or which panics.
func Run[D, A any](t T, d day.Day[D, A], part day.Part, cases []Case[A]) {
	t.Helper()
	if part != day.PartOne && part != day.PartTwo {
		t.Fatalf("daytest: Run needs PartOne or PartTwo, got %s", part)
		return
	}
	for i, c := range cases {
		data, p, err := contain(func() (D, error) { return d.Parse(c.Input) })
		if p != nil {
			t.Fatalf("case %d: parse panicked: %v\ninput:\n%s", i, p.value, panicInput(c.Input))
			return
		}
		if err != nil {
			t.Fatalf("case %d: parse failed: %v\ninput:\n%s", i, err, Truncate(c.Input))
			return
		}

		got, p, err := contain(func() (A, error) { return day.Solve(d, part, data) })
		if p != nil {
			t.Fatalf("case %d: %s panicked: %v\ninput:\n%s", i, part, p.value, panicInput(c.Input))
			return
		}
		if err != nil {
			t.Fatalf("case %d: %s failed: %v\ninput:\n%s", i, part, err, Truncate(c.Input))
			return
		}
		if !cmp.Equal(c.Want, got, compare) {
			t.Fatalf("case %d: %s answer mismatch\ninput:\n%s\n%s", i, part, Truncate(c.Input), mismatch(c.Want, got))
			return
		}
	}
}

// Check runs f on each pair's input and fails t at the first result that
// differs from Want.
func Check[I, O any](t T, f func(I) O, cases []Pair[I, O]) {
	t.Helper()
	for i, c := range cases {
		got, p, _ := contain(func() (O, error) { return f(c.In), nil })
		if p != nil {
			t.Fatalf("case %d: panicked on %v: %v", i, c.In, p.value)
			return
		}
		if !cmp.Equal(c.Want, got, compare) {
			t.Fatalf("case %d: input %v\n%s", i, c.In, mismatch(c.Want, got))
			return
		}
	}
}

// Input reads name from fsys, usually an embed.FS of example files, and
// fails t if it cannot.
func Input(t T, fsys fs.FS, name string) string {
	t.Helper()
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		t.Fatalf("daytest: reading %s: %v", name, err)
		return ""
	}
	return string(data)
}

type recovered struct {
	value any
}

func contain[R any](fn func() (R, error)) (res R, p *recovered, err error) {
	defer func() {
		if v := recover(); v != nil {
			p = &recovered{value: v}
		}
	}()
	res, err = fn()
	return res, nil, err
}

func mismatch(want, got any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "expected: %s\n", wantText.Render(fmt.Sprint(want)))
	fmt.Fprintf(&b, "actual:   %s", gotText.Render(fmt.Sprint(got)))
	if !scalar(want) {
		fmt.Fprintf(&b, "\ndiff (-expected +actual):\n%s", cmp.Diff(want, got, compare))
	}
	return b.String()
}

func scalar(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
