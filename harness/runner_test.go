package harness

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jorge-barreto/aoch/day"
	"github.com/jorge-barreto/aoch/parsing"
)

// countingDay sums its input for part one and multiplies it for part two,
// recording every call.
type countingDay struct {
	parses   int
	partOnes int
	partTwos int
	parseErr error
	partErr  error
}

type nums struct {
	values []int
	sum    *int // cached by part one
}

func (d *countingDay) Number() int  { return 7 }
func (d *countingDay) Name() string { return "Counting" }

func (d *countingDay) Parse(input string) (*nums, error) {
	d.parses++
	if d.parseErr != nil {
		return nil, d.parseErr
	}
	values, err := parsing.FromLines[int](input)
	if err != nil {
		return nil, err
	}
	return &nums{values: values}, nil
}

func (d *countingDay) PartOne(n *nums) (int, error) {
	d.partOnes++
	if d.partErr != nil {
		return 0, d.partErr
	}
	if n.sum == nil {
		s := 0
		for _, v := range n.values {
			s += v
		}
		n.sum = &s
	}
	return *n.sum, nil
}

func (d *countingDay) PartTwo(n *nums) (int, error) {
	d.partTwos++
	if d.partErr != nil {
		return 0, d.partErr
	}
	p := 1
	for _, v := range n.values {
		p *= v
	}
	return p, nil
}

func newTestRunner(t *testing.T, d *countingDay, cfg Config) (*Runner[*nums, int], *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Runner[*nums, int]{
		Day:      d,
		Config:   cfg,
		Embedded: "2\n3\n4\n",
		Stdin:    strings.NewReader("5\n6\n"),
		Out:      &out,
	}, &out
}

func TestRun_BothParts(t *testing.T) {
	d := &countingDay{}
	r, out := newTestRunner(t, d, Config{})

	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := "Day 7 Part 1: 9\nDay 7 Part 2: 24\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
	if d.parses != 1 || d.partOnes != 1 || d.partTwos != 1 {
		t.Fatalf("calls: parse=%d one=%d two=%d", d.parses, d.partOnes, d.partTwos)
	}
}

func TestRun_PartSelection(t *testing.T) {
	tests := []struct {
		name     string
		one, two bool
		wantOne  int
		wantTwo  int
	}{
		{"neither", false, false, 3, 3},
		{"both", true, true, 3, 3},
		{"one only", true, false, 3, 0},
		{"two only", false, true, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &countingDay{}
			r, _ := newTestRunner(t, d, Config{Part: SelectPart(tt.one, tt.two), Repeat: 3})
			if err := r.Run(context.Background()); err != nil {
				t.Fatal(err)
			}
			if d.partOnes != tt.wantOne || d.partTwos != tt.wantTwo {
				t.Fatalf("one=%d two=%d, want one=%d two=%d", d.partOnes, d.partTwos, tt.wantOne, tt.wantTwo)
			}
		})
	}
}

func TestRun_ParseOnceUnlessPerRun(t *testing.T) {
	d := &countingDay{}
	r, _ := newTestRunner(t, d, Config{Repeat: 4})
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if d.parses != 1 {
		t.Fatalf("parses = %d, want 1", d.parses)
	}

	d = &countingDay{}
	r, _ = newTestRunner(t, d, Config{Repeat: 4, ParsePerRun: true})
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if d.parses != 4 {
		t.Fatalf("parses = %d, want 4", d.parses)
	}
}

func TestRun_Quiet(t *testing.T) {
	r, out := newTestRunner(t, &countingDay{}, Config{Quiet: true, Repeat: 2})
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Fatalf("quiet run printed %q", out.String())
	}
}

func TestRun_StdinInput(t *testing.T) {
	r, out := newTestRunner(t, &countingDay{}, Config{Input: ResolveInput("-"), Part: day.PartOne})
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Day 7 Part 1: 11\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRun_ParseErrorPropagates(t *testing.T) {
	d := &countingDay{}
	r, out := newTestRunner(t, d, Config{})
	r.Embedded = "1\nnope\n"

	err := r.Run(context.Background())
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected parse failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "IntegerParseFailure") {
		t.Fatalf("error = %q", err)
	}
	if d.partOnes != 0 || out.Len() != 0 {
		t.Fatal("parts should not run after a parse failure")
	}
}

func TestRun_UnimplementedPropagates(t *testing.T) {
	d := &countingDay{partErr: day.ErrUnimplemented}
	r, _ := newTestRunner(t, d, Config{Repeat: 3})

	err := r.Run(context.Background())
	if !errors.Is(err, day.ErrUnimplemented) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "Part 1") {
		t.Fatalf("error should name the part: %q", err)
	}
	if d.partOnes != 1 {
		t.Fatalf("runner should stop at the first failure, ran part one %d times", d.partOnes)
	}
}

func TestRun_InvalidRepeat(t *testing.T) {
	r, _ := newTestRunner(t, &countingDay{}, Config{Repeat: -2})
	if err := r.Run(context.Background()); err == nil {
		t.Fatal("expected error for negative repeat")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	d := &countingDay{}
	r, _ := newTestRunner(t, d, Config{Repeat: 5})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if d.partOnes != 0 {
		t.Fatalf("parts ran %d times after cancel", d.partOnes)
	}
}

func TestRun_AllocStatsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r, _ := newTestRunner(t, &countingDay{}, Config{AllocStats: true})
	r.Logger = zap.New(core)

	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	stages := map[string]bool{}
	for _, e := range logs.FilterMessage("allocations").All() {
		stages[e.ContextMap()["stage"].(string)] = true
	}
	for _, want := range []string{"parse", "part1", "part2"} {
		if !stages[want] {
			t.Fatalf("no allocation entry for %s; got %v", want, stages)
		}
	}
}

func TestSelectPart(t *testing.T) {
	if SelectPart(false, false) != 0 || SelectPart(true, true) != 0 {
		t.Fatal("neither/both should select both parts")
	}
	if SelectPart(true, false) != day.PartOne {
		t.Fatal("--one should select part one")
	}
	if SelectPart(false, true) != day.PartTwo {
		t.Fatal("--two should select part two")
	}
}
