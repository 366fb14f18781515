package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/braunma/rackmap/internal/constants"
)

// EnvPrefix is the prefix for environment overrides, e.g. RACKMAP_CANVAS_WIDTH
const EnvPrefix = "RACKMAP"

// Config holds the tunable layout parameters
type Config struct {
	Columns       int     `mapstructure:"columns"`
	CanvasWidth   float64 `mapstructure:"canvas_width"`
	TopMargin     float64 `mapstructure:"top_margin"`
	GapX          float64 `mapstructure:"gap_x"`
	GapY          float64 `mapstructure:"gap_y"`
	GroupSpacing  float64 `mapstructure:"group_spacing"`
	MemberSpacing float64 `mapstructure:"member_spacing"`
}

// Default returns the built-in layout parameters
func Default() Config {
	return Config{
		Columns:       constants.DefaultColumns,
		CanvasWidth:   constants.DefaultCanvasWidth,
		TopMargin:     constants.DefaultTopMargin,
		GapX:          constants.DefaultGapX,
		GapY:          constants.DefaultGapY,
		GroupSpacing:  constants.DefaultGroupSpacing,
		MemberSpacing: constants.DefaultMemberSpacing,
	}
}

// New returns a viper instance primed with defaults and environment bindings
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("columns", d.Columns)
	v.SetDefault("canvas_width", d.CanvasWidth)
	v.SetDefault("top_margin", d.TopMargin)
	v.SetDefault("gap_x", d.GapX)
	v.SetDefault("gap_y", d.GapY)
	v.SetDefault("group_spacing", d.GroupSpacing)
	v.SetDefault("member_spacing", d.MemberSpacing)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the layout configuration.
// An explicit path must exist; without one, rackmap.yaml in the working directory is optional.
func Load(path string) (Config, error) {
	v := New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rackmap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper decodes and validates a configuration
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the layout cannot work with
func (c Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", c.Columns)
	}
	if c.CanvasWidth <= 0 {
		return fmt.Errorf("canvas_width must be positive, got %g", c.CanvasWidth)
	}
	if c.GapX < 0 || c.GapY < 0 {
		return fmt.Errorf("gaps must not be negative, got gap_x=%g gap_y=%g", c.GapX, c.GapY)
	}
	if c.GroupSpacing < 0 || c.MemberSpacing < 0 {
		return fmt.Errorf("spacings must not be negative")
	}
	return nil
}
