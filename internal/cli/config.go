package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/fcollf/dayplan/pkg/render/dayview"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = "dayplan.toml"

// Config holds the TOML-file settings shared by the render and view
// commands. Flags override file values; file values override defaults.
type Config struct {
	Width     int `toml:"width"`      // SVG width in pixels
	HourStart int `toml:"hour_start"` // first hour on the grid
	HourEnd   int `toml:"hour_end"`   // last hour on the grid (exclusive)
	HourPx    int `toml:"hour_px"`    // vertical pixels per hour

	Palette PaletteConfig `toml:"palette"`
}

// PaletteConfig overrides individual day-view colors. Empty fields keep
// the built-in theme.
type PaletteConfig struct {
	Background string `toml:"background"`
	Grid       string `toml:"grid"`
	BlockFill  string `toml:"block_fill"`
	BlockLine  string `toml:"block_line"`
	Title      string `toml:"title"`
	Subtitle   string `toml:"subtitle"`
	HourLabel  string `toml:"hour_label"`
}

// loadConfig reads the TOML settings file. With no explicit path it
// falls back to ./dayplan.toml, and to an empty config when that is
// absent too.
func (c *CLI) loadConfig() (Config, error) {
	path := c.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return Config{}, nil
		}
		path = defaultConfigFile
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	c.Logger.Debugf("loaded config from %s", path)
	return cfg, nil
}

// viewOptions translates the config into day-view render options.
func (cfg Config) viewOptions() dayview.Options {
	pal := dayview.DefaultPalette
	p := cfg.Palette
	setColor(&pal.Background, p.Background)
	setColor(&pal.Grid, p.Grid)
	setColor(&pal.BlockFill, p.BlockFill)
	setColor(&pal.BlockLine, p.BlockLine)
	setColor(&pal.Title, p.Title)
	setColor(&pal.Subtitle, p.Subtitle)
	setColor(&pal.HourLabel, p.HourLabel)

	return dayview.Options{
		Width:     cfg.Width,
		HourStart: cfg.HourStart,
		HourEnd:   cfg.HourEnd,
		HourPx:    cfg.HourPx,
		Palette:   pal,
	}
}

func setColor(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
