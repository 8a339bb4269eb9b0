package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the structure of config.yml used by the tool.
// Defaults reproduce the canonical report run, so the file is optional.
type Config struct {
	Data struct {
		Hourly string `yaml:"hourly"`
		Daily  string `yaml:"daily"`
		Trips  string `yaml:"trips"`
	} `yaml:"data"`
	Report struct {
		DataDir   string `yaml:"data_dir"`
		ChartsDir string `yaml:"charts_dir"`
	} `yaml:"report"`
	Chart Chart `yaml:"chart"`
}

// Chart holds the explicit chart styling passed to the renderer at
// construction. There is no process-wide theme.
type Chart struct {
	WidthInches   float64 `yaml:"width_inches"`
	HeightInches  float64 `yaml:"height_inches"`
	Grid          bool    `yaml:"grid"`
	TitleFontSize float64 `yaml:"title_font_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.Data.Hourly = "data/hour.csv"
	c.Data.Daily = "data/day.csv"
	c.Data.Trips = "trips.csv"
	c.Report.DataDir = "data"
	c.Report.ChartsDir = "output"
	c.Chart = Chart{WidthInches: 12, HeightInches: 6, Grid: true, TitleFontSize: 14}
	return c
}

// Load parses the YAML configuration file at path on top of the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	slog.Info(fmt.Sprintf("Loaded config: %s", path))
	return c, nil
}

// Resolve loads the config from CONFIG_PATH (default ./config.yml), falling
// back to the built-in defaults when no file exists.
func Resolve() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config.yml"
	}
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return Load(path)
}
