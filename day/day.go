// Package day defines the contract every Advent of Code solution implements
// and the error taxonomy shared by parsing and solving.
package day

import "fmt"

// Day is one puzzle day. T is the parsed-data type produced by Parse and
// handed to both parts; implementations that cache work between parts use a
// pointer type for T. A is the answer type.
//
// PartOne and PartTwo must each produce a correct answer when called alone
// on freshly parsed data. A part that has not been written yet returns
// ErrUnimplemented.
type Day[T, A any] interface {
	// Number is the day of the month, 1 through 25.
	Number() int
	// Name is the puzzle title, e.g. "Growing Pots".
	Name() string
	Parse(input string) (T, error)
	PartOne(data T) (A, error)
	PartTwo(data T) (A, error)
}

// Part selects one half of a puzzle. The zero value means both parts.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists the parts a run covers for the given selection.
func (p Part) Parts() []Part {
	switch p {
	case PartOne, PartTwo:
		return []Part{p}
	default:
		return []Part{PartOne, PartTwo}
	}
}

func (p Part) String() string {
	switch p {
	case PartOne:
		return "Part 1"
	case PartTwo:
		return "Part 2"
	case 0:
		return "both parts"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// Solve runs the selected part of d on data.
func Solve[T, A any](d Day[T, A], part Part, data T) (A, error) {
	switch part {
	case PartOne:
		return d.PartOne(data)
	case PartTwo:
		return d.PartTwo(data)
	default:
		var zero A
		return zero, Errorf("day %d: cannot solve %s", d.Number(), part)
	}
}
