package mandel

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config holds everything needed to produce one plot.
type Config struct {
	// Preset names an entry of Presets. It takes precedence over Region.
	Preset     string       `yaml:"preset"`
	Region     Region       `yaml:"region"`
	Density    Density      `yaml:"density"`
	Iterations int          `yaml:"iterations"`
	Output     OutputConfig `yaml:"output"`
}

// OutputConfig controls the rendered image.
type OutputConfig struct {
	Path         string `yaml:"path"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Background   string `yaml:"background"`
	Foreground   string `yaml:"foreground"`
	MarkerRadius int    `yaml:"marker_radius"`

	// Chart decoration around the plot area. An empty caption, a zero
	// margin and axes: false give a bare raster.
	Caption   string `yaml:"caption"`
	Margin    int    `yaml:"margin"`
	LabelArea int    `yaml:"label_area"`
	Axes      bool   `yaml:"axes"`
}

// DefaultConfig returns the configuration of the stock plot.
func DefaultConfig() *Config {
	return &Config{
		Region:     FullSet,
		Density:    8000,
		Iterations: 20,
		Output: OutputConfig{
			Path:         "mandelbrot.png",
			Width:        20000,
			Height:       20000,
			Background:   "#ffffff",
			Foreground:   "#000000",
			MarkerRadius: 1,
			Caption:      "Mandelbrot Set",
			Margin:       5,
			LabelArea:    20,
			Axes:         true,
		},
	}
}

// LoadConfigFile reads a YAML config file. Fields the file leaves out keep
// their DefaultConfig values; the values it sets are validated as written.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.resolvePreset(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) resolvePreset() error {
	if c.Preset == "" {
		return nil
	}
	r, ok := Presets[c.Preset]
	if !ok {
		return fmt.Errorf("unknown region preset %q", c.Preset)
	}
	c.Region = r
	return nil
}

// Validate checks the preconditions of sampling and rendering.
// A zero density is allowed and yields an empty plot.
func (c *Config) Validate() error {
	var errs []error
	if c.Region.Xmin >= c.Region.Xmax || c.Region.Ymin >= c.Region.Ymax {
		errs = append(errs, fmt.Errorf("region %+v is empty or inverted", c.Region))
	}
	if c.Density < 0 {
		errs = append(errs, fmt.Errorf("density must not be negative, got %d", c.Density))
	}
	if c.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("iterations must be positive, got %d", c.Iterations))
	}
	o := c.Output
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("output size %dx%d is not positive", o.Width, o.Height))
	}
	if o.MarkerRadius < 0 {
		errs = append(errs, fmt.Errorf("marker_radius must not be negative, got %d", o.MarkerRadius))
	}
	if o.Margin < 0 || o.LabelArea < 0 {
		errs = append(errs, fmt.Errorf("margin and label_area must not be negative, got %d and %d", o.Margin, o.LabelArea))
	}
	if _, err := ParseHexColor(o.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := ParseHexColor(o.Foreground); err != nil {
		errs = append(errs, fmt.Errorf("foreground: %w", err))
	}
	return errors.Join(errs...)
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
