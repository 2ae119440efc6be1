package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration.
type Config struct {
	App    AppConfig    `toml:"app"`
	Log    LogConfig    `toml:"log"`
	People PeopleConfig `toml:"people"`
	UI     UIConfig     `toml:"ui"`
	Script ScriptConfig `toml:"script"`
}

// AppConfig controls top-level application behavior.
type AppConfig struct {
	// Title is the window title.
	Title string `toml:"title"`
	// ShowMessageBox pops a modal box describing each observed click.
	ShowMessageBox bool `toml:"show_message_box"`
}

// LogConfig controls logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File receives the log; empty means stderr.
	File string `toml:"file"`
}

// PeopleConfig describes the demo form's rows. Names and Ages are
// parallel lists; a missing or empty age renders an empty age label.
type PeopleConfig struct {
	Names []string `toml:"names"`
	Ages  []string `toml:"ages"`
}

// Rows returns the number of form rows.
func (p PeopleConfig) Rows() int { return len(p.Names) }

// Age returns the age for row i, or the empty string when the ages
// list is shorter than the names list.
func (p PeopleConfig) Age(i int) string {
	if i < 0 || i >= len(p.Ages) {
		return ""
	}
	return p.Ages[i]
}

// UIConfig controls rendering.
type UIConfig struct {
	// Theme is a path to a theme YAML file; empty uses terminal
	// default colors.
	Theme string `toml:"theme"`
	// FPS is the repaint rate.
	FPS int `toml:"fps"`
	// Mouse enables mouse reporting.
	Mouse bool `toml:"mouse"`
}

// ScriptConfig points at an optional Lua script run at startup.
type ScriptConfig struct {
	Path string `toml:"path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Title:          "Slow Flow",
			ShowMessageBox: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		People: PeopleConfig{
			Names: []string{"Alice", "Bob", "Carol", "Dan", "Erin"},
			Ages:  []string{"27", "34", "", "41", ""},
		},
		UI: UIConfig{
			FPS:   30,
			Mouse: true,
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file
// is not an error; the defaults come back unchanged. A file that
// parses but fails validation returns the validation error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		perr := &ParseError{Path: path, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var logLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks value ranges and cross-field consistency.
func (c *Config) Validate() error {
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return &ValidationError{
			Field:  "log.level",
			Reason: fmt.Sprintf("unknown level %q", c.Log.Level),
		}
	}
	if len(c.People.Ages) > len(c.People.Names) {
		return &ValidationError{
			Field:  "people.ages",
			Reason: fmt.Sprintf("%d ages for %d names", len(c.People.Ages), len(c.People.Names)),
		}
	}
	if c.UI.FPS < 1 || c.UI.FPS > 120 {
		return &ValidationError{
			Field:  "ui.fps",
			Reason: fmt.Sprintf("%d is outside 1..120", c.UI.FPS),
		}
	}
	return nil
}
