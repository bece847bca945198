// Package config contains the structure and loading of the seqctl
// configuration file.
package config

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/seqs/pkg/combinators"
	"hop.computer/seqs/pkg/thunks"
)

const (
	// UserConfigDirectory is the dirname of the directory holding the user
	// configuration, relative to the home directory.
	UserConfigDirectory = ".seqs"

	// ConfigFile is the name of the config file inside UserConfigDirectory.
	ConfigFile = "config.toml"
)

// Color settings.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrUnknownSetting is returned when a config file contains a key that does
// not map to a Config field.
var ErrUnknownSetting = errors.New("unknown setting")

// ErrInvalidColor is returned when Color is not auto, always, or never.
var ErrInvalidColor = errors.New("invalid Color: must be auto, always, or never")

// Config is a parsed seqctl configuration.
type Config struct {
	LogLevel        string // logrus level name, e.g. "info"
	Color           string // auto, always, or never
	ContinueOnError bool   // keep running a script after a failed operation
	Separator       string // joins values in printed output
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	c.LogLevel = combinators.Or(c.LogLevel, logrus.InfoLevel.String())
	c.Color = combinators.Or(strings.ToLower(c.Color), ColorAuto)
	c.Separator = combinators.Or(c.Separator, " ")
}

// Validate checks that every setting holds an accepted value.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid LogLevel")
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Wrapf(ErrInvalidColor, "got %q", c.Color)
	}
	return nil
}

// Level returns the parsed LogLevel. It falls back to Info if LogLevel does not
// parse; Validate reports that case.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Parse decodes a TOML configuration, fills in defaults, and validates it.
func Parse(b []byte) (*Config, error) {
	var c Config
	md, err := toml.Decode(string(b), &c)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Wrapf(ErrUnknownSetting, "%q", undecoded[0].String())
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// UserDirectory returns the path to the configuration directory for the
// current user, or the empty string if the home directory is unknown.
func UserDirectory() string {
	home, err := thunks.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDirectory)
}

// DefaultPath returns the path of the user's config file.
func DefaultPath() string {
	dir := UserDirectory()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ConfigFile)
}

// Load reads the config file at path. An empty path means DefaultPath, and a
// missing default file yields Default(). A missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}
	b, err := fs.ReadFile(fileSystem, path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			logrus.Debugf("no config at %s, using defaults", path)
			return Default(), nil
		}
		return nil, errors.Wrap(err, "unable to read config")
	}
	c, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}
