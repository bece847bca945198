// Package flags provides support for seqctl CLI args
package flags

import (
	"errors"
	"flag"
	"fmt"

	"hop.computer/seqs/config"
)

const usage = "seqctl [-C config] [-V] [-k] [-color auto|always|never] run <script.toml>\n" +
	"       seqctl [-C config] [-V] [-color auto|always|never] sort <strings|people|numbers> values..."

// ErrMissingCommand is returned when no command follows the flags.
var ErrMissingCommand = errors.New("missing command\nusage: " + usage)

// ErrUnknownCommand is returned when the command is not run or sort.
var ErrUnknownCommand = errors.New("unknown command")

// ErrMissingScript is returned when run is not followed by exactly one path.
var ErrMissingScript = errors.New("usage: seqctl run <script.toml>")

// ErrMissingMode is returned when sort is not followed by a mode.
var ErrMissingMode = errors.New("usage: seqctl sort <strings|people|numbers> values...")

// ErrUnknownMode is returned when the sort mode is not recognized.
var ErrUnknownMode = errors.New("unknown sort mode")

// Commands.
const (
	CommandRun  = "run"
	CommandSort = "sort"
)

// Sort modes.
const (
	SortStrings = "strings"
	SortPeople  = "people"
	SortNumbers = "numbers"
)

// Flags holds CLI arguments for seqctl.
type Flags struct {
	ConfigPath      string
	Verbose         bool   // debug logging
	ContinueOnError bool   // overrides the config file when set
	Color           string // overrides the config file when non-empty

	Command    string
	ScriptPath string   // run
	SortMode   string   // sort
	Values     []string // sort
}

func defineFlags(fs *flag.FlagSet, f *Flags) {
	fs.StringVar(&f.ConfigPath, "C", "", "path to config (uses ~/.seqs/config.toml when unspecified)")
	fs.BoolVar(&f.Verbose, "V", false, "display debug logging")
	fs.BoolVar(&f.ContinueOnError, "k", false, "keep running a script after a failed operation")
	fs.StringVar(&f.Color, "color", "", "colorize output: auto, always, or never")
}

// ParseArgs defines and parses the flags from the command line. args[0] is the
// program name.
func ParseArgs(args []string) (*Flags, error) {
	f := new(Flags)
	fs := new(flag.FlagSet)
	defineFlags(fs, f)

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		return nil, ErrMissingCommand
	}
	f.Command = fs.Arg(0)
	rest := fs.Args()[1:]

	switch f.Command {
	case CommandRun:
		if len(rest) != 1 {
			return nil, ErrMissingScript
		}
		f.ScriptPath = rest[0]
	case CommandSort:
		if len(rest) < 1 {
			return nil, ErrMissingMode
		}
		f.SortMode = rest[0]
		switch f.SortMode {
		case SortStrings, SortPeople, SortNumbers:
		default:
			return nil, fmt.Errorf("%w %q", ErrUnknownMode, f.SortMode)
		}
		f.Values = rest[1:]
	default:
		return nil, fmt.Errorf("%w %q\nusage: %s", ErrUnknownCommand, f.Command, usage)
	}
	return f, nil
}

func mergeFlagsAndConfig(f *Flags, c *config.Config) error {
	if f.ContinueOnError {
		c.ContinueOnError = true
	}
	if f.Color != "" {
		c.Color = f.Color
	}
	if f.Verbose {
		c.LogLevel = "debug"
	}
	return c.Validate()
}

// LoadConfigFromFlags loads the config file named in flags (or the default)
// and applies flag overrides on top of it.
func LoadConfigFromFlags(f *Flags) (*config.Config, error) {
	c, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := mergeFlagsAndConfig(f, c); err != nil {
		return nil, err
	}
	return c, nil
}
