// Package config loads the griddemo configuration from a YAML file,
// GRIDVIEW_* environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/xqrs/gridview/measure"
)

// EnvPrefix prefixes every environment override, e.g. GRIDVIEW_GRID_ITEMS.
const EnvPrefix = "GRIDVIEW"

// Config is the root configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Grid   GridConfig   `mapstructure:"grid" yaml:"grid"`
}

// LoggerConfig configures the file logger. The terminal belongs to the UI, so
// logs only go to LogFile; an empty LogFile disables logging.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// GridConfig configures the demo grid.
type GridConfig struct {
	Items     int    `mapstructure:"items" yaml:"items"`
	Direction string `mapstructure:"direction" yaml:"direction"`
	// Item size in cells. A zero cross size fills the lane.
	ItemWidth  int `mapstructure:"item_width" yaml:"item_width"`
	ItemHeight int `mapstructure:"item_height" yaml:"item_height"`
	// Columns fixes the lane count. When zero, MinItemWidth derives it from
	// the available space, and a plain list is used if both are zero.
	Columns      int    `mapstructure:"columns" yaml:"columns"`
	MinItemWidth int    `mapstructure:"min_item_width" yaml:"min_item_width"`
	Overscan     int    `mapstructure:"overscan" yaml:"overscan"`
	ScrollBar    bool   `mapstructure:"scroll_bar" yaml:"scroll_bar"`
	Separators   bool   `mapstructure:"separators" yaml:"separators"`
	Border       bool   `mapstructure:"border" yaml:"border"`
	Title        string `mapstructure:"title" yaml:"title"`
	// BorderStyle is one of BorderStyles, ScrollBarGlyphs one of GlyphSets.
	BorderStyle     string `mapstructure:"border_style" yaml:"border_style"`
	ScrollBarGlyphs string `mapstructure:"scroll_bar_glyphs" yaml:"scroll_bar_glyphs"`
}

// BorderStyles lists the accepted grid.border_style values.
var BorderStyles = []string{"plain", "round", "thick", "double", "hidden"}

// GlyphSets lists the accepted grid.scroll_bar_glyphs values.
var GlyphSets = []string{"minimal", "unicode", "legacy", "box"}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.service_name", "griddemo")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("grid.items", 10000)
	v.SetDefault("grid.direction", "vertical")
	v.SetDefault("grid.item_width", 0)
	v.SetDefault("grid.item_height", 3)
	v.SetDefault("grid.columns", 0)
	v.SetDefault("grid.min_item_width", 16)
	v.SetDefault("grid.overscan", 8)
	v.SetDefault("grid.scroll_bar", true)
	v.SetDefault("grid.separators", false)
	v.SetDefault("grid.border", true)
	v.SetDefault("grid.title", "gridview")
	v.SetDefault("grid.border_style", "plain")
	v.SetDefault("grid.scroll_bar_glyphs", "minimal")
}

// NewViper returns a viper instance with defaults and environment bindings.
// When path is empty, ./griddemo.yaml is used if it exists.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("griddemo")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads and validates the configuration.
func Load(path string) (*Config, error) {
	v, err := Read(path)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// Read returns a viper instance holding the config file at path. A missing
// default config file is not an error; a missing explicit one is.
func Read(path string) (*viper.Viper, error) {
	v := NewViper(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	return nil
}

// Validate checks the logger configuration.
func (l *LoggerConfig) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	switch l.Format {
	case "json", "console":
	default:
		return fmt.Errorf("format must be json or console, got %q", l.Format)
	}
	if l.MaxSize < 0 || l.MaxBackups < 0 || l.MaxAge < 0 {
		return errors.New("max_size, max_backups and max_age must not be negative")
	}
	return nil
}

// Validate checks the grid configuration.
func (g *GridConfig) Validate() error {
	if g.Items < 0 {
		return errors.New("items must not be negative")
	}
	if _, ok := measure.ParseDirection(g.Direction); !ok {
		return fmt.Errorf("direction must be vertical or horizontal, got %q", g.Direction)
	}
	if g.ItemWidth < 0 || g.ItemHeight < 0 {
		return errors.New("item_width and item_height must not be negative")
	}
	if main := g.mainSize(); main <= 0 {
		return errors.New("the item size along the scroll direction must be positive")
	}
	if g.Columns < 0 || g.MinItemWidth < 0 {
		return errors.New("columns and min_item_width must not be negative")
	}
	if g.Overscan < 0 {
		return errors.New("overscan must not be negative")
	}
	if !slices.Contains(BorderStyles, g.BorderStyle) {
		return fmt.Errorf("border_style must be one of %s, got %q", strings.Join(BorderStyles, ", "), g.BorderStyle)
	}
	if !slices.Contains(GlyphSets, g.ScrollBarGlyphs) {
		return fmt.Errorf("scroll_bar_glyphs must be one of %s, got %q", strings.Join(GlyphSets, ", "), g.ScrollBarGlyphs)
	}
	return nil
}

// ParsedDirection returns the validated scroll direction.
func (g *GridConfig) ParsedDirection() measure.Direction {
	d, _ := measure.ParseDirection(g.Direction)
	return d
}

func (g *GridConfig) mainSize() int {
	if d, _ := measure.ParseDirection(g.Direction); d == measure.Horizontal {
		return g.ItemWidth
	}
	return g.ItemHeight
}
