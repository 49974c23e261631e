package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with aoch",
		Content: topicQuickstart,
	},
	{
		Name:    "days",
		Title:   "Writing a Day",
		Summary: "The Day interface, parsed data and answer types",
		Content: topicDays,
	},
	{
		Name:    "running",
		Title:   "Running a Day",
		Summary: "Command-line flags, input selection and repeats",
		Content: topicRunning,
	},
	{
		Name:    "testing",
		Title:   "Testing a Day",
		Summary: "daytest.Run, daytest.Check and failure output",
		Content: topicTesting,
	},
	{
		Name:    "inputs",
		Title:   "Puzzle Inputs",
		Summary: "Session tokens and downloading inputs",
		Content: topicInputs,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "aoch.yaml fields and defaults",
		Content: topicConfig,
	},
}

const topicQuickstart = "# Quick Start" + `

1. Create a project:

        mkdir aoc2021 && cd aoc2021
        aoch init --year 2021 --module example.com/aoc2021

   This writes aoch.yaml, go.mod and .gitignore and runs git init.

2. Store your session token (see ` + "`aoch docs inputs`" + `):

        echo "<token>" > session.txt

3. Scaffold a day:

        aoch new 1 "Sonar Sweep"

   day01/ now holds main.go, main_test.go and the downloaded input.txt.

4. Solve and check:

        go test ./day01
        go run ./day01
`

const topicDays = "# Writing a Day" + `

A day implements ` + "`day.Day[T, A]`" + `:

    type Day01 struct{}

    func (Day01) Number() int                         { return 1 }
    func (Day01) Name() string                        { return "Sonar Sweep" }
    func (Day01) Parse(input string) ([]int, error)   { return parsing.FromLines[int](input) }
    func (Day01) PartOne(depths []int) (int, error)   { ... }
    func (Day01) PartTwo(depths []int) (int, error)   { ... }

- **T** is the parsed data handed to both parts. Use a pointer type when
  part one caches work that part two reuses.
- **A** is the answer type. It is printed with fmt and compared in tests
  with go-cmp.
- Each part must give the right answer when run alone on freshly parsed
  data.
- A part you have not written yet returns ` + "`day.ErrUnimplemented`" + `.

Errors from parsing helpers are already ` + "`*day.Error`" + ` values.
` + "`day.Errorf`, `day.Ensure` and `day.From`" + ` cover the rest.
`

const topicRunning = "# Running a Day" + `

Every generated day calls ` + "`harness.Main`" + `:

    go run ./day07 [flags] [input-file|-]

| Flag | Meaning |
|---|---|
| ` + "`--input-file, -i PATH`" + ` | read input from PATH; ` + "`-`" + ` reads stdin |
| ` + "`--one`" + ` | only run part one |
| ` + "`--two`" + ` | only run part two |
| ` + "`--repeat, -n N`" + ` | run the selected parts N times |
| ` + "`--parse-per-run`" + ` | parse again on every repeat |
| ` + "`--quiet, -q`" + ` | do not print answers |
| ` + "`--alloc-stats`" + ` | log allocations per stage |
| ` + "`--verbose, -v`" + ` | debug logging with stage timings |

Without a path the input embedded at build time is used. ` + "`-`" + ` always
means stdin, even when a path is also given. Passing both ` + "`--one`" + ` and
` + "`--two`" + ` runs both parts.

Any parse or solve error is printed as ` + "`error: ...`" + ` and the program
exits with status 1.
`

const topicTesting = "# Testing a Day" + `

    func TestPartOne(t *testing.T) {
        daytest.Run(t, Day02{}, day.PartOne, []daytest.Case[int]{
            {Input: example, Want: 2},
        })
    }

For each case, in order, ` + "`daytest.Run`" + ` parses the input, solves the
part and compares the answer with Want. The test stops at the first
failure. The failure names the case and shows the input; long inputs are
cut after 11 lines with a count of the newlines left out.

Panics in Parse or in a part are recovered and reported as failures with
the panic value. Inputs longer than 200 characters are replaced by a size note.

` + "`daytest.Check`" + ` runs the same comparison for a helper function:

    daytest.Check(t, fuel, []daytest.Pair[int, int]{{In: 100756, Want: 33583}})
`

const topicInputs = "# Puzzle Inputs" + `

Inputs are personal, so downloading one needs your adventofcode.com
session cookie. aoch looks for it in this order:

1. the ` + "`--session`" + ` flag
2. the ` + "`AOC_SESSION`" + ` environment variable
3. the file named by ` + "`session-file`" + ` in aoch.yaml (default session.txt)

` + "`aoch new`" + ` downloads the day's input as it scaffolds. When no token is
found or the day is not unlocked yet, an empty input.txt is written so
the program still builds. Fetch it later with:

    aoch download 7
    aoch download          # every registered day
    aoch download --force  # replace inputs already on disk

A day program can also read any other input: pass a path, or ` + "`-`" + ` to
read stdin, as in ` + "`go run ./day07 - < example.txt`" + `.

The generated .gitignore keeps inputs and the session file out of git.
`

const topicConfig = "# Configuration Reference" + `

aoch.yaml sits at the project root:

    year: 2021
    module: example.com/aoc2021
    session-file: session.txt
    input-file: input.txt
    base-url: https://adventofcode.com
    proxy-url: https://proxy.golang.org
    default-deps:
      - golang.org/x/exp
    days:
      - day: 1
        name: Sonar Sweep
        dir: day01

| Field | Default | Meaning |
|---|---|---|
| year | required | event year, 2015 or later |
| module | required | module path of the project |
| session-file | session.txt | session token file; ` + "`~`" + ` and ` + "`$VAR`" + ` are expanded |
| input-file | input.txt | input file name inside each day directory |
| base-url | https://adventofcode.com | where inputs are downloaded from |
| proxy-url | https://proxy.golang.org | module proxy used to resolve @latest |
| default-deps | none | modules added to go.mod for every new day |
| days | none | scaffolded days, maintained by aoch |
`
