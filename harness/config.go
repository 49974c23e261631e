package harness

import (
	"fmt"

	"github.com/jorge-barreto/aoch/day"
)

// Config is the run configuration built once from the command line.
type Config struct {
	Input       InputSource
	Part        day.Part // zero runs both parts
	Repeat      int
	ParsePerRun bool
	Quiet       bool
	AllocStats  bool
	Verbose     bool
}

// SelectPart maps the --one/--two flags to a part. Exactly one flag selects
// that part; neither or both select both parts.
func SelectPart(one, two bool) day.Part {
	if one == two {
		return 0
	}
	if one {
		return day.PartOne
	}
	return day.PartTwo
}

// Validate checks the config and sets defaults.
func (c *Config) Validate() error {
	if c.Repeat == 0 {
		c.Repeat = 1
	}
	if c.Repeat < 0 {
		return fmt.Errorf("--repeat must be at least 1, got %d", c.Repeat)
	}
	switch c.Part {
	case 0, day.PartOne, day.PartTwo:
	default:
		return fmt.Errorf("unknown part %d", int(c.Part))
	}
	return nil
}
