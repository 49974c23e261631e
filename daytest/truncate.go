package daytest

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const keepLines = 10

// Truncate shortens input for failure messages. The first 10 newlines are
// skipped; if an 11th exists the text is cut there and
// "...<N more lines>..." is appended, N being the newlines after the cut.
// Truncating an already truncated string returns it unchanged.
func Truncate(input string) string {
	cut := -1
	for i, n := 0, 0; i < len(input); i++ {
		if input[i] == '\n' {
			n++
			if n > keepLines {
				cut = i
				break
			}
		}
	}
	if cut < 0 {
		return input
	}
	omitted := strings.Count(input[cut+1:], "\n")
	return fmt.Sprintf("%s...<%d more lines>...", input[:cut], omitted)
}

const maxPanicInput = 200

// panicInput returns input for a panic report, replacing inputs longer
// than maxPanicInput characters with a placeholder.
func panicInput(input string) string {
	if n := utf8.RuneCountInString(input); n > maxPanicInput {
		return fmt.Sprintf("<%d characters of input omitted>", n)
	}
	return input
}
