package lcdui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"9fans.net/go/draw"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config configures a GUI. Use DefaultConfig and change what is needed, or
// LoadConfig.
type Config struct {
	Width        int  `toml:"width" yaml:"width"`               // Display width in pixels.
	Height       int  `toml:"height" yaml:"height"`             // Display height in pixels.
	Memory       int  `toml:"memory" yaml:"memory"`             // Bytes for widgets, owned texts and colors. 0 is unlimited.
	Transparency bool `toml:"transparency" yaml:"transparency"` // Honour widget transparency when invalidating.

	TouchBuffer   int `toml:"touch_buffer" yaml:"touch_buffer"`       // Queued touch samples.
	KeyBuffer     int `toml:"key_buffer" yaml:"key_buffer"`           // Queued keys.
	LongClickMsec int `toml:"long_click_msec" yaml:"long_click_msec"` // Press duration for a long click.
	DblClickMsec  int `toml:"dbl_click_msec" yaml:"dbl_click_msec"`   // Max time between clicks of a double click.
	TimerMsec     int `toml:"timer_msec" yaml:"timer_msec"`           // Timer resolution of Run.

	Debug Debug       `toml:"debug" yaml:"debug"`
	Theme ThemeConfig `toml:"theme" yaml:"theme"`

	Logger *slog.Logger `toml:"-" yaml:"-"` // Default logs to stderr.
}

// Debug enables debug logging of parts of the engine.
type Debug struct {
	Invalidate bool `toml:"invalidate" yaml:"invalidate"`
	Order      bool `toml:"order" yaml:"order"`
	Input      bool `toml:"input" yaml:"input"`
}

// ThemeConfig holds colors as "#rrggbb" or "#rrggbbaa".
type ThemeConfig struct {
	Background string `toml:"background" yaml:"background"`
	Foreground string `toml:"foreground" yaml:"foreground"`
	Text       string `toml:"text" yaml:"text"`
	Border     string `toml:"border" yaml:"border"`
	Accent     string `toml:"accent" yaml:"accent"`
}

// Theme is a parsed ThemeConfig.
type Theme struct {
	Background, Foreground, Text, Border, Accent draw.Color
}

func DefaultConfig() Config {
	return Config{
		Width:         320,
		Height:        240,
		TouchBuffer:   16,
		KeyBuffer:     16,
		LongClickMsec: 1000,
		DblClickMsec:  300,
		TimerMsec:     10,
		Theme: ThemeConfig{
			Background: "#fcfcfc",
			Foreground: "#f8f8f8",
			Text:       "#333333",
			Border:     "#bbbbbb",
			Accent:     "#3272dc",
		},
	}
}

// LoadConfig reads a TOML or YAML file, by extension, over DefaultConfig.
func LoadConfig(path string) (c Config, err error) {
	check, handle := errorHandler(func(xerr error) {
		c = Config{}
		err = xerr
	})
	defer handle()

	buf, err := os.ReadFile(path)
	check(err, "read config")
	c = DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		check(toml.Unmarshal(buf, &c), "parse toml config")
	case ".yaml", ".yml":
		check(yaml.Unmarshal(buf, &c), "parse yaml config")
	default:
		check(fmt.Errorf("unknown extension %q", ext), "config")
	}
	check(c.Validate(), "config")
	return c, nil
}

// Validate checks the values can be used for a GUI.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("bad display size %dx%d", c.Width, c.Height)
	case c.Memory < 0:
		return fmt.Errorf("negative memory %d", c.Memory)
	case c.TouchBuffer <= 0 || c.KeyBuffer <= 0:
		return fmt.Errorf("input buffers must be positive")
	case c.TimerMsec <= 0:
		return fmt.Errorf("timer resolution must be positive")
	}
	_, err := c.Theme.parse()
	return err
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	level := slog.LevelInfo
	if c.Debug.Invalidate || c.Debug.Order || c.Debug.Input {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (tc ThemeConfig) parse() (Theme, error) {
	var th Theme
	for _, x := range []struct {
		name string
		s    string
		c    *draw.Color
	}{
		{"background", tc.Background, &th.Background},
		{"foreground", tc.Foreground, &th.Foreground},
		{"text", tc.Text, &th.Text},
		{"border", tc.Border, &th.Border},
		{"accent", tc.Accent, &th.Accent},
	} {
		if x.s == "" {
			continue
		}
		c, err := ParseColor(x.s)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", x.name, err)
		}
		*x.c = c
	}
	return th, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". Without alpha the color is
// opaque.
func ParseColor(s string) (draw.Color, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 6:
		h += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad color %q", s)
	}
	return draw.Color(v), nil
}
