package fastplot

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cast"
	"github.com/vdobler/fastplot/render"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is returned for config values out of range.
	ErrInvalidConfig = errors.New("fastplot: invalid config")

	// ErrUnknownKey is returned by Config.Set for unknown keys.
	ErrUnknownKey = errors.New("fastplot: unknown config key")
)

// GapConfig configures line breaking at gaps in the data. Mode is one of
// "off", "absolute" or "relative".
type GapConfig struct {
	Mode      string  `yaml:"mode"`
	Threshold float64 `yaml:"threshold"`
}

// Config holds the tunables of a Plot.
type Config struct {
	// ThresholdPx is the decimation distance used by renderers which do
	// not set their own.
	ThresholdPx float64 `yaml:"threshold_px"`

	// Gap is the gap policy used by renderers which do not set their own.
	Gap GapConfig `yaml:"gap"`

	// MinWidth and MinHeight is the smallest area drawn at all.
	MinWidth  float64 `yaml:"min_width"`
	MinHeight float64 `yaml:"min_height"`

	// ForegroundAlpha is the opacity of the rendered data.
	ForegroundAlpha float64 `yaml:"foreground_alpha"`

	// Order is "forward" or "reverse": the order layers are rendered in.
	Order string `yaml:"order"`

	// Orientation is "vertical" (domain axis horizontal) or "horizontal".
	Orientation string `yaml:"orientation"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ThresholdPx:     render.DefaultThreshold,
		Gap:             GapConfig{Mode: render.GapOff.String()},
		MinWidth:        10,
		MinHeight:       10,
		ForegroundAlpha: 1,
		Order:           "forward",
		Orientation:     render.Vertical.String(),
	}
}

// ParseConfig reads a YAML configuration. Missing fields keep their
// default value.
func ParseConfig(b []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, c.Validate()
}

// LoadConfig reads the YAML configuration file path.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("load config: %w", err)
	}
	c, err := ParseConfig(b)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks c for out of range values.
func (c Config) Validate() error {
	if _, err := c.gapPolicy(); err != nil {
		return err
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return fmt.Errorf("negative minimum size %gx%g: %w", c.MinWidth, c.MinHeight, ErrInvalidConfig)
	}
	if c.ForegroundAlpha < 0 || c.ForegroundAlpha > 1 {
		return fmt.Errorf("foreground_alpha %g not in [0,1]: %w", c.ForegroundAlpha, ErrInvalidConfig)
	}
	if _, err := c.reverse(); err != nil {
		return err
	}
	if _, err := c.orientation(); err != nil {
		return err
	}
	return nil
}

// Set sets the field named by its YAML key, e.g. "gap.mode", to value.
// Value is converted loosely: "2.5", 2.5 and "2" all work for a float.
func (c *Config) Set(key string, value interface{}) error {
	n := *c
	var err error
	switch key {
	case "threshold_px":
		n.ThresholdPx, err = cast.ToFloat64E(value)
	case "gap.mode":
		n.Gap.Mode, err = cast.ToStringE(value)
	case "gap.threshold":
		n.Gap.Threshold, err = cast.ToFloat64E(value)
	case "min_width":
		n.MinWidth, err = cast.ToFloat64E(value)
	case "min_height":
		n.MinHeight, err = cast.ToFloat64E(value)
	case "foreground_alpha":
		n.ForegroundAlpha, err = cast.ToFloat64E(value)
	case "order":
		n.Order, err = cast.ToStringE(value)
	case "orientation":
		n.Orientation, err = cast.ToStringE(value)
	default:
		return fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
	if err != nil {
		return fmt.Errorf("set %s=%v: %v: %w", key, value, err, ErrInvalidConfig)
	}
	if err := n.Validate(); err != nil {
		return err
	}
	*c = n
	return nil
}

func (c Config) gapPolicy() (render.GapPolicy, error) {
	mode, err := render.ParseGapMode(c.Gap.Mode)
	if err != nil {
		return render.GapPolicy{}, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if mode == render.GapInherit {
		return render.GapPolicy{}, fmt.Errorf("gap mode %q has nothing to inherit from: %w", c.Gap.Mode, ErrInvalidConfig)
	}
	if mode != render.GapOff && c.Gap.Threshold <= 0 {
		return render.GapPolicy{}, fmt.Errorf("gap threshold %g must be positive: %w", c.Gap.Threshold, ErrInvalidConfig)
	}
	return render.GapPolicy{Mode: mode, Threshold: c.Gap.Threshold}, nil
}

func (c Config) reverse() (bool, error) {
	switch c.Order {
	case "", "forward":
		return false, nil
	case "reverse":
		return true, nil
	}
	return false, fmt.Errorf("order %q: %w", c.Order, ErrInvalidConfig)
}

func (c Config) orientation() (render.Orientation, error) {
	switch c.Orientation {
	case "", "vertical":
		return render.Vertical, nil
	case "horizontal":
		return render.Horizontal, nil
	}
	return render.Vertical, fmt.Errorf("orientation %q: %w", c.Orientation, ErrInvalidConfig)
}
