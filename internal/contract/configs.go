package contract

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/gitwrapped/schema"
)

// Bounds for configuration values.
const (
	MinYear = 1970
	MaxYear = 9999
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// RenderConfig holds the fixed layout of rendered cards.
type RenderConfig struct {
	CardWidth     int // Canvas width in pixels
	CardHeight    int // Height of a single card in pixels
	Padding       int // Padding unit between and inside cards
	Background    color.RGBA
	CardColor     color.RGBA
	BorderColor   color.RGBA
	TextColor     color.RGBA
	FontPath      string // Empty means the embedded Go fonts
	FontSize      float64
	TitleFontSize float64
}

// CanvasHeight returns the image height needed for n stacked cards.
func (rc RenderConfig) CanvasHeight(n int) int {
	return (rc.CardHeight+rc.Padding)*n + rc.Padding
}

// Config holds the runtime configuration for a run.
// This struct is the "final, validated" config.
type Config struct {
	RootPath   string
	Year       int
	StartTime  time.Time
	EndTime    time.Time
	Marker     string
	Excludes   []string
	ImageFile  string
	Output     schema.OutputMode
	OutputFile string
	GitTimeout time.Duration
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	Render     RenderConfig
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RootPathStr string

	Year          int     `mapstructure:"year"`
	Image         string  `mapstructure:"image"`
	CardWidth     int     `mapstructure:"card-width"`
	CardHeight    int     `mapstructure:"card-height"`
	Padding       int     `mapstructure:"padding"`
	Background    string  `mapstructure:"background"`
	CardColor     string  `mapstructure:"card-color"`
	BorderColor   string  `mapstructure:"border-color"`
	TextColor     string  `mapstructure:"text-color"`
	Font          string  `mapstructure:"font"`
	FontSize      float64 `mapstructure:"font-size"`
	TitleFontSize float64 `mapstructure:"title-font-size"`
	Marker        string  `mapstructure:"marker"`
	Exclude       string  `mapstructure:"exclude"`
	Output        string  `mapstructure:"output"`
	OutputFile    string  `mapstructure:"output-file"`
	Color         string  `mapstructure:"color"`
	GitTimeout    string  `mapstructure:"git-timeout"`
	Width         int     `mapstructure:"width"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// CloneWithYear creates a copy of the Config targeting another calendar year.
func (c *Config) CloneWithYear(year int) *Config {
	clone := c.Clone()
	clone.Year = year
	clone.StartTime, clone.EndTime = YearRange(year)
	return clone
}

// YearRange returns the first and last second of a calendar year in local time.
func YearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.Local)
	return start, end
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processYear(cfg, input); err != nil {
		return err
	}
	if err := processRenderConfig(cfg, input); err != nil {
		return err
	}
	return resolveRootPath(cfg, input)
}

// ValidateYear checks that a year is within the supported range.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year must be between %d and %d (received %d)", MinYear, MaxYear, year)
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path, non-render fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required when using %s output", schema.ParquetOut)
	}

	cfg.Marker = strings.TrimSpace(input.Marker)
	if cfg.Marker == "" {
		return fmt.Errorf("marker cannot be empty")
	}
	if strings.ContainsAny(cfg.Marker, `/\`) {
		return fmt.Errorf("marker must be a single directory name (received %q)", input.Marker)
	}

	cfg.Excludes = nil
	if input.Exclude != "" {
		for p := range strings.SplitSeq(input.Exclude, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.Excludes = append(cfg.Excludes, trimmed)
			}
		}
	}

	cfg.GitTimeout = 0
	if input.GitTimeout != "" {
		timeout, err := time.ParseDuration(input.GitTimeout)
		if err != nil {
			return fmt.Errorf("invalid --git-timeout value '%s': %w", input.GitTimeout, err)
		}
		if timeout < 0 {
			return fmt.Errorf("git-timeout cannot be negative (received %s)", input.GitTimeout)
		}
		cfg.GitTimeout = timeout
	}

	return nil
}

// processYear validates the target year and derives the commit date range.
func processYear(cfg *Config, input *ConfigRawInput) error {
	if err := ValidateYear(input.Year); err != nil {
		return err
	}
	cfg.Year = input.Year
	cfg.StartTime, cfg.EndTime = YearRange(input.Year)
	return nil
}

// processRenderConfig validates the image path, layout and colors.
func processRenderConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.ImageFile = strings.TrimSpace(input.Image)
	if cfg.ImageFile == "" {
		return fmt.Errorf("image path cannot be empty")
	}
	if _, ok := schema.ImageFormatFromPath(cfg.ImageFile); !ok {
		return fmt.Errorf("%w: cannot infer format from %q. use .png, .jpg, .jpeg, .gif, .bmp, .tif or .tiff", ErrUnsupportedFormat, cfg.ImageFile)
	}

	rc := RenderConfig{
		CardWidth:     input.CardWidth,
		CardHeight:    input.CardHeight,
		Padding:       input.Padding,
		FontPath:      strings.TrimSpace(input.Font),
		FontSize:      input.FontSize,
		TitleFontSize: input.TitleFontSize,
	}
	if rc.Padding < 0 {
		return fmt.Errorf("padding cannot be negative (received %d)", rc.Padding)
	}
	if rc.CardWidth <= 2*rc.Padding {
		return fmt.Errorf("card-width must exceed twice the padding (received %d with padding %d)", rc.CardWidth, rc.Padding)
	}
	if rc.CardHeight <= 0 {
		return fmt.Errorf("card-height must be greater than 0 (received %d)", rc.CardHeight)
	}
	if rc.FontSize <= 0 || rc.TitleFontSize <= 0 {
		return fmt.Errorf("font sizes must be greater than 0 (received %.1f and %.1f)", rc.FontSize, rc.TitleFontSize)
	}

	colors := []struct {
		name string
		raw  string
		dst  *color.RGBA
	}{
		{"background", input.Background, &rc.Background},
		{"card-color", input.CardColor, &rc.CardColor},
		{"border-color", input.BorderColor, &rc.BorderColor},
		{"text-color", input.TextColor, &rc.TextColor},
	}
	for _, c := range colors {
		parsed, err := ParseHexColor(c.raw)
		if err != nil {
			return fmt.Errorf("invalid --%s value: %w", c.name, err)
		}
		*c.dst = parsed
	}

	cfg.Render = rc
	return nil
}

// resolveRootPath turns the positional root argument into a clean absolute path.
// Existence is checked later by the scanner.
func resolveRootPath(cfg *Config, input *ConfigRawInput) error {
	root := input.RootPathStr
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("cannot resolve root directory %q: %w", root, err)
	}
	cfg.RootPath = filepath.Clean(abs)
	return nil
}
