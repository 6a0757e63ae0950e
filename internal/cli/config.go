package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/akmonengine/flipbook"
	"github.com/akmonengine/flipbook/page"
)

// Config is a flipframes scene file.
//
//	[page]
//	view_width = 800
//	page_width = 400
//	perspective = 2400
//	side = "right"
//
//	[sweep]
//	from = 0
//	to = -180
//	frames = 10
//
//	[base]
//	m = [1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1]
type Config struct {
	Page  PageConfig      `toml:"page"`
	Sweep SweepConfig     `toml:"sweep"`
	Base  *flipbook.State `toml:"base"`
}

type PageConfig struct {
	ViewWidth   float64 `toml:"view_width"`
	PageWidth   float64 `toml:"page_width"`
	Height      float64 `toml:"height"`
	Perspective float64 `toml:"perspective"`
	YMargin     float64 `toml:"y_margin"`
	Side        string  `toml:"side"`
}

type SweepConfig struct {
	From   float64 `toml:"from"`
	To     float64 `toml:"to"`
	Frames int     `toml:"frames"`
}

// DefaultConfig is a right page of an 800px spread turning fully over.
func DefaultConfig() Config {
	return Config{
		Page: PageConfig{
			ViewWidth:   800,
			PageWidth:   400,
			Height:      600,
			Perspective: 2400,
			Side:        page.Right.String(),
		},
		Sweep: SweepConfig{From: 0, To: -180, Frames: 10},
	}
}

// LoadConfig reads a scene file over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := ParseConfig(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML over the defaults and validates the result.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Page.PageWidth <= 0 {
		errs = append(errs, fmt.Errorf("page_width must be positive, got %v", c.Page.PageWidth))
	}
	if c.Page.Perspective <= 0 {
		errs = append(errs, fmt.Errorf("perspective must be positive, got %v", c.Page.Perspective))
	}
	if _, err := page.ParseSide(c.Page.Side); err != nil {
		errs = append(errs, err)
	}
	if c.Sweep.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", c.Sweep.Frames))
	}
	if c.Base != nil && len(c.Base.M) != 16 {
		errs = append(errs, fmt.Errorf("base.m must hold 16 numbers, got %d", len(c.Base.M)))
	}

	return errors.Join(errs...)
}

// PageSpec converts the [page] table. The config must be valid.
func (c Config) PageSpec() page.Page {
	side, _ := page.ParseSide(c.Page.Side)

	return page.Page{
		ViewWidth:   c.Page.ViewWidth,
		PageWidth:   c.Page.PageWidth,
		Height:      c.Page.Height,
		Perspective: c.Page.Perspective,
		YMargin:     c.Page.YMargin,
		Side:        side,
	}
}
