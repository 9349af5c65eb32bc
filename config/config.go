// Package config loads colorpick settings from a TOML file layered over defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/colorpick/color"
	"github.com/lixenwraith/colorpick/site"
	"github.com/lixenwraith/colorpick/tui"
)

// ErrInvalid is returned when a loaded configuration fails validation
var ErrInvalid = errors.New("invalid config")

// MaxPaletteSize bounds palette.size
const MaxPaletteSize = 64

// Duration decodes TOML strings like "2s" or "1500ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full settings tree
type Config struct {
	Palette PaletteConfig `toml:"palette"`
	Toast   ToastConfig   `toml:"toast"`
	UI      UIConfig      `toml:"ui"`
	Site    SiteConfig    `toml:"site"`
	Log     LogConfig     `toml:"log"`
}

// PaletteConfig controls palette generation
type PaletteConfig struct {
	Size int `toml:"size"`
}

// ToastConfig controls the notification element
type ToastConfig struct {
	Duration Duration `toml:"duration"`
}

// UIConfig controls the interactive front-end
type UIConfig struct {
	ColorMode string `toml:"color_mode"` // auto, truecolor, 256
	Sound     bool   `toml:"sound"`
}

// SiteConfig overrides the HTML chrome strings
type SiteConfig struct {
	Brand   string `toml:"brand"`
	TipURL  string `toml:"tip_url"`
	Tagline string `toml:"tagline"`
}

// LogConfig controls debug logging
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Palette: PaletteConfig{Size: color.DefaultPaletteSize},
		Toast:   ToastConfig{Duration: Duration{tui.DefaultToastDuration}},
		UI:      UIConfig{ColorMode: "auto"},
		Site: SiteConfig{
			Brand:   site.DefaultBrand,
			TipURL:  site.DefaultTipURL,
			Tagline: site.DefaultTagline,
		},
		Log: LogConfig{Dir: "logs"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/colorpick/config.toml (or the OS equivalent)
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "colorpick", "config.toml"), nil
}

// Load reads path over Default()
// An empty path uses DefaultPath and tolerates a missing file; an explicit path must exist
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes TOML data over Default() and validates the result
// Unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.Palette.Size < 1 || c.Palette.Size > MaxPaletteSize {
		return fmt.Errorf("%w: palette.size %d outside 1..%d", ErrInvalid, c.Palette.Size, MaxPaletteSize)
	}
	if c.Toast.Duration.Duration <= 0 {
		return fmt.Errorf("%w: toast.duration must be positive", ErrInvalid)
	}
	if _, err := tui.ParseColorMode(c.UI.ColorMode); err != nil {
		return fmt.Errorf("%w: ui.color_mode: %w", ErrInvalid, err)
	}
	return nil
}

// SiteBuilder returns the HTML chrome builder for these settings
func (c Config) SiteBuilder() site.Builder {
	return site.Builder{
		Brand:   c.Site.Brand,
		TipURL:  c.Site.TipURL,
		Tagline: c.Site.Tagline,
	}
}

// ColorMode resolves ui.color_mode, consulting the environment for "auto"
func (c Config) ColorMode() tui.ColorMode {
	mode, err := tui.ParseColorMode(c.UI.ColorMode)
	if err != nil || mode == tui.ColorModeAuto {
		return tui.DetectColorMode(os.Getenv)
	}
	return mode
}
