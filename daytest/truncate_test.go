package daytest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbered(n int, trailingNewline bool) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	s := strings.Join(lines, "\n")
	if trailingNewline {
		s += "\n"
	}
	return s
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"short", "a\nb\n", "a\nb\n"},
		{"ten lines", numbered(10, true), numbered(10, true)},
		{"ten lines no newline", numbered(10, false), numbered(10, false)},
		{"eleven lines no newline", numbered(11, false), numbered(11, false)},
		{"eleven lines", numbered(11, true), numbered(11, false) + "...<0 more lines>..."},
		{"twelve lines", numbered(12, true), numbered(11, false) + "...<1 more lines>..."},
		{"twelve lines no newline", numbered(12, false), numbered(11, false) + "...<0 more lines>..."},
		{"many lines", numbered(25, true), numbered(11, false) + "...<14 more lines>..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input))
		})
	}
}

func TestTruncate_Idempotent(t *testing.T) {
	for _, n := range []int{0, 3, 10, 11, 12, 40} {
		for _, nl := range []bool{true, false} {
			once := Truncate(numbered(n, nl))
			assert.Equal(t, once, Truncate(once), "n=%d newline=%v", n, nl)
		}
	}
}

func TestTruncate_CutsAtEleventhNewline(t *testing.T) {
	out := Truncate(numbered(30, true))
	assert.Equal(t, 10, strings.Count(out, "\n"))
	assert.True(t, strings.HasSuffix(out, "\nline 11...<19 more lines>..."))
}

func TestPanicInput_CountsCharacters(t *testing.T) {
	accented := strings.Repeat("é", 150)
	assert.Equal(t, accented, panicInput(accented))

	long := strings.Repeat("é", 201)
	assert.Equal(t, "<201 characters of input omitted>", panicInput(long))
}
