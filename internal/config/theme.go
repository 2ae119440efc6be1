package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/IVSoftware/debug-slow-flow/internal/backend"
)

// Theme is a set of resolved paint styles. The zero value of every
// style means "terminal default colors", so the zero Theme is usable
// on any terminal.
type Theme struct {
	Name   string
	Window backend.Style
	Panel  backend.Style
	Label  backend.Style
	Button backend.Style
	Accent backend.Style
}

// themeFile is the YAML shape of a theme on disk. Colors are hex
// triplets like "#1e1e2e"; an empty or missing color keeps the
// terminal default.
type themeFile struct {
	Name   string `yaml:"name"`
	Colors struct {
		Background string `yaml:"background"`
		Foreground string `yaml:"foreground"`
		Panel      string `yaml:"panel"`
		Button     string `yaml:"button"`
		Accent     string `yaml:"accent"`
	} `yaml:"colors"`
}

// DefaultTheme returns the terminal-default theme.
func DefaultTheme() *Theme {
	return &Theme{Name: "default"}
}

// LoadTheme reads a theme YAML file and resolves it into styles. A
// missing file is not an error and yields the default theme.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTheme(), nil
		}
		return nil, fmt.Errorf("reading theme file %s: %w", path, err)
	}

	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return resolveTheme(&tf)
}

func resolveTheme(tf *themeFile) (*Theme, error) {
	bg, err := parseColor("colors.background", tf.Colors.Background)
	if err != nil {
		return nil, err
	}
	fg, err := parseColor("colors.foreground", tf.Colors.Foreground)
	if err != nil {
		return nil, err
	}
	panel, err := parseColor("colors.panel", tf.Colors.Panel)
	if err != nil {
		return nil, err
	}
	button, err := parseColor("colors.button", tf.Colors.Button)
	if err != nil {
		return nil, err
	}
	accent, err := parseColor("colors.accent", tf.Colors.Accent)
	if err != nil {
		return nil, err
	}

	// A theme that only names its base colors still gets a distinct
	// panel tint and accent, derived by blending in Lab space.
	if !bg.IsDefault() && !fg.IsDefault() {
		if panel.IsDefault() {
			panel = blendColors(bg, fg, 0.12)
		}
		if accent.IsDefault() {
			accent = blendColors(fg, bg, 0.35)
		}
	}

	t := &Theme{Name: tf.Name}
	if t.Name == "" {
		t.Name = "unnamed"
	}

	t.Window = backend.Style{FG: fg, BG: bg}
	t.Panel = backend.Style{FG: fg, BG: panel}
	t.Label = t.Panel
	if button.IsDefault() {
		t.Button = backend.Style{FG: fg, BG: bg, Reverse: true}
	} else {
		t.Button = backend.Style{FG: bg, BG: button, Bold: true}
	}
	t.Accent = backend.Style{FG: accent, BG: bg, Bold: true}
	return t, nil
}

// parseColor turns a hex triplet into a backend color. The empty
// string maps to the terminal default.
func parseColor(field, s string) (backend.Color, error) {
	if s == "" {
		return backend.Color{}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return backend.Color{}, fmt.Errorf("%w: %s: %q", ErrBadColor, field, s)
	}
	r, g, b := c.RGB255()
	return backend.NewColor(r, g, b), nil
}

// blendColors mixes a toward b by t in Lab space. Both colors must be
// concrete RGB values.
func blendColors(a, b backend.Color, t float64) backend.Color {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return backend.NewColor(r, g, bl)
}
