package scaffold

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

// DayAnswers holds what the interactive day prompt collected.
type DayAnswers struct {
	Day  int
	Name string
}

// PromptDay asks for the day number and puzzle name. Fields already set in
// defaults are offered as the initial values.
func PromptDay(defaults DayAnswers) (DayAnswers, error) {
	dayText := ""
	if defaults.Day != 0 {
		dayText = strconv.Itoa(defaults.Day)
	}
	name := defaults.Name

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Day").
			Description("Day of the month, 1 through 25").
			Value(&dayText).
			Validate(func(s string) error {
				_, err := ParseDay(s)
				return err
			}),
		huh.NewInput().
			Title("Puzzle name").
			Description("Optional, e.g. Sonar Sweep").
			Value(&name),
	)).WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return DayAnswers{}, ErrCancelled
		}
		return DayAnswers{}, fmt.Errorf("prompt: %w", err)
	}
	n, err := ParseDay(dayText)
	if err != nil {
		return DayAnswers{}, err
	}
	return DayAnswers{Day: n, Name: strings.TrimSpace(name)}, nil
}

// ParseDay parses a day number in [1, 25].
func ParseDay(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("day must be a number, got %q", s)
	}
	if n < 1 || n > 25 {
		return 0, fmt.Errorf("day %d is out of range [1, 25]", n)
	}
	return n, nil
}
