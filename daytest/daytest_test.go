package daytest

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jorge-barreto/aoch/day"
	"github.com/jorge-barreto/aoch/parsing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder is a T whose Fatalf ends the calling goroutine like the real
// testing.T does.
type recorder struct {
	failed bool
	msg    string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.msg = fmt.Sprintf(format, args...)
	runtime.Goexit()
}

func record(fn func(t T)) *recorder {
	r := &recorder{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(r)
	}()
	<-done
	return r
}

type policy struct {
	lo, hi   int
	letter   byte
	password string
}

// passwords counts valid passwords. PartOne is configurable so tests can
// make it misbehave.
type passwords struct {
	partOne func([]policy) (int, error)
}

func (passwords) Number() int  { return 2 }
func (passwords) Name() string { return "Password Philosophy" }

func (passwords) Parse(input string) ([]policy, error) {
	return parsing.TryFromLinesWith(input, func(line string) (policy, error) {
		var p policy
		if _, err := fmt.Sscanf(line, "%d-%d %c: %s", &p.lo, &p.hi, &p.letter, &p.password); err != nil {
			panic("malformed policy " + line)
		}
		return p, nil
	})
}

func (d passwords) PartOne(ps []policy) (int, error) {
	if d.partOne != nil {
		return d.partOne(ps)
	}
	valid := 0
	for _, p := range ps {
		n := strings.Count(p.password, string(p.letter))
		if n >= p.lo && n <= p.hi {
			valid++
		}
	}
	return valid, nil
}

func (passwords) PartTwo(ps []policy) (int, error) {
	valid := 0
	for _, p := range ps {
		a := p.password[p.lo-1] == p.letter
		b := p.password[p.hi-1] == p.letter
		if a != b {
			valid++
		}
	}
	return valid, nil
}

const example = "1-3 a: abcde\n1-3 b: cdefg\n2-9 c: ccccccccc\n"

func TestRun_Passes(t *testing.T) {
	Run(t, passwords{}, day.PartOne, []Case[int]{{Input: example, Want: 2}})
	Run(t, passwords{}, day.PartTwo, []Case[int]{{Input: example, Want: 1}})
}

func TestRun_StubReturningZeroPasses(t *testing.T) {
	stub := passwords{partOne: func([]policy) (int, error) { return 0, nil }}
	r := record(func(t T) {
		Run(t, stub, day.PartOne, []Case[int]{{Input: example, Want: 0}})
	})
	assert.False(t, r.failed, r.msg)
}

func TestRun_UnimplementedFails(t *testing.T) {
	stub := passwords{partOne: func([]policy) (int, error) { return 0, day.ErrUnimplemented }}
	r := record(func(t T) {
		Run(t, stub, day.PartOne, []Case[int]{{Input: example, Want: 0}})
	})
	require.True(t, r.failed)
	assert.Contains(t, r.msg, "Unimplemented")
	assert.Contains(t, r.msg, "1-3 a: abcde")
}

func TestRun_SolvePanicFails(t *testing.T) {
	stub := passwords{partOne: func([]policy) (int, error) { panic("not yet") }}
	r := record(func(t T) {
		Run(t, stub, day.PartOne, []Case[int]{{Input: example, Want: 0}})
	})
	require.True(t, r.failed)
	assert.Contains(t, r.msg, "Part 1 panicked: not yet")
}

func TestRun_ParsePanicReportsPayloadAndInput(t *testing.T) {
	r := record(func(t T) {
		Run(t, passwords{}, day.PartOne, []Case[int]{{Input: "garbage\n", Want: 0}})
	})
	require.True(t, r.failed)
	assert.Contains(t, r.msg, "parse panicked")
	assert.Contains(t, r.msg, "malformed policy garbage")
	assert.Contains(t, r.msg, "garbage\n")
}

func TestRun_ParsePanicOmitsLongInput(t *testing.T) {
	long := strings.Repeat("x", 300) + "\n"
	r := record(func(t T) {
		Run(t, passwords{}, day.PartOne, []Case[int]{{Input: long, Want: 0}})
	})
	require.True(t, r.failed)
	assert.Contains(t, r.msg, "<301 characters of input omitted>")
	assert.NotContains(t, r.msg, strings.Repeat("x", 300))
}

func TestRun_MismatchNamesCase(t *testing.T) {
	r := record(func(t T) {
		Run(t, passwords{}, day.PartOne, []Case[int]{
			{Input: example, Want: 2},
			{Input: example, Want: 5},
		})
	})
	require.True(t, r.failed)
	assert.Contains(t, r.msg, "case 1: Part 1 answer mismatch")
	assert.Contains(t, r.msg, "expected: 5")
	assert.Contains(t, r.msg, "actual:   2")
	assert.NotContains(t, r.msg, "diff")
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	calls := 0
	counting := passwords{partOne: func([]policy) (int, error) {
		calls++
		return 1, nil
	}}
	r := record(func(t T) {
		Run(t, counting, day.PartOne, []Case[int]{
			{Input: example, Want: 9},
			{Input: example, Want: 1},
		})
	})
	require.True(t, r.failed)
	assert.Equal(t, 1, calls)
}

func TestRun_RejectsBothParts(t *testing.T) {
	r := record(func(t T) {
		Run(t, passwords{}, 0, []Case[int]{{Input: example, Want: 2}})
	})
	require.True(t, r.failed)
}

type grid struct {
	cells [][]int
}

type gridDay struct{ out grid }

func (gridDay) Number() int                      { return 11 }
func (gridDay) Name() string                     { return "Grid" }
func (gridDay) Parse(string) (struct{}, error)   { return struct{}{}, nil }
func (g gridDay) PartOne(struct{}) (grid, error) { return g.out, nil }
func (gridDay) PartTwo(struct{}) (grid, error)   { return grid{}, errors.New("unused") }

func TestRun_StructuredMismatchIncludesDiff(t *testing.T) {
	d := gridDay{out: grid{cells: [][]int{{1, 2}, {3, 4}}}}
	Run(t, d, day.PartOne, []Case[grid]{{Input: "", Want: grid{cells: [][]int{{1, 2}, {3, 4}}}}})

	r := record(func(t T) {
		Run(t, d, day.PartOne, []Case[grid]{{Input: "", Want: grid{cells: [][]int{{1, 2}, {3, 5}}}}})
	})
	require.True(t, r.failed)
	assert.Contains(t, r.msg, "diff (-expected +actual)")
}

func TestCheck(t *testing.T) {
	double := func(n int) int { return n * 2 }
	Check(t, double, []Pair[int, int]{{In: 1, Want: 2}, {In: 21, Want: 42}})

	r := record(func(t T) {
		Check(t, double, []Pair[int, int]{{In: 1, Want: 2}, {In: 3, Want: 7}})
	})
	require.True(t, r.failed)
	assert.Contains(t, r.msg, "case 1: input 3")
}

func TestCheck_Panic(t *testing.T) {
	r := record(func(t T) {
		Check(t, func(s string) byte { return s[5] }, []Pair[string, byte]{{In: "ab", Want: 0}})
	})
	require.True(t, r.failed)
	assert.Contains(t, r.msg, "panicked on ab")
}

func TestInput(t *testing.T) {
	fsys := fstest.MapFS{"example.txt": {Data: []byte(example)}}
	assert.Equal(t, example, Input(t, fsys, "example.txt"))

	r := record(func(t T) { Input(t, fsys, "missing.txt") })
	require.True(t, r.failed)
	assert.Contains(t, r.msg, "missing.txt")
}
