// Package parsing holds the small text helpers most puzzle parsers start
// from: trimmed lines, whitespace-separated numbers and blank-line groups.
package parsing

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/jorge-barreto/aoch/day"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Trimmed trims s and reports whether anything is left.
func Trimmed(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Lines returns the trimmed, non-empty lines of input.
func Lines(input string) []string {
	var out []string
	for _, line := range strings.Split(input, "\n") {
		if s, ok := Trimmed(line); ok {
			out = append(out, s)
		}
	}
	return out
}

// ParseNumber converts s to N. Failures are IntegerParseFailure or
// FloatParseFailure day errors.
func ParseNumber[N Number](s string) (N, error) {
	var zero N
	rt := reflect.TypeFor[N]()
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(s, rt.Bits())
		if err != nil {
			return zero, day.ParseFloat(err)
		}
		return N(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := strconv.ParseUint(s, 10, rt.Bits())
		if err != nil {
			return zero, day.ParseInt(err)
		}
		return N(v), nil
	default:
		v, err := strconv.ParseInt(s, 10, rt.Bits())
		if err != nil {
			return zero, day.ParseInt(err)
		}
		return N(v), nil
	}
}

// FromLines parses one number per non-empty line.
func FromLines[N Number](input string) ([]N, error) {
	return parseAll[N](Lines(input))
}

// FromFields parses whitespace-separated numbers.
func FromFields[N Number](input string) ([]N, error) {
	return parseAll[N](strings.Fields(input))
}

func parseAll[N Number](items []string) ([]N, error) {
	out := make([]N, 0, len(items))
	for _, s := range items {
		n, err := ParseNumber[N](s)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// FromLinesWith maps each trimmed, non-empty line through fn.
func FromLinesWith[T any](input string, fn func(string) T) []T {
	lines := Lines(input)
	out := make([]T, 0, len(lines))
	for _, line := range lines {
		out = append(out, fn(line))
	}
	return out
}

// TryFromLinesWith is FromLinesWith for a fallible fn. The returned error
// names the zero-based line index within input and is classified with
// day.From; a *day.Error from fn stays reachable through errors.As.
func TryFromLinesWith[T any](input string, fn func(string) (T, error)) ([]T, error) {
	var out []T
	for i, line := range strings.Split(input, "\n") {
		s, ok := Trimmed(line)
		if !ok {
			continue
		}
		v, err := fn(s)
		if err != nil {
			return nil, day.From(fmt.Errorf("error parsing input line %d: %w", i, err))
		}
		out = append(out, v)
	}
	return out, nil
}

// FromGroupedLines parses blank-line separated groups of numbers, one
// number per line.
func FromGroupedLines[N Number](input string) ([][]N, error) {
	var groups [][]N
	for _, block := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n") {
		if _, ok := Trimmed(block); !ok {
			continue
		}
		nums, err := FromLines[N](block)
		if err != nil {
			return nil, err
		}
		groups = append(groups, nums)
	}
	return groups, nil
}
