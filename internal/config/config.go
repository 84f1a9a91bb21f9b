package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"semdiff/internal/errors"
)

// DefaultOutputDir is the folder, relative to the working directory, that receives every export
const DefaultOutputDir = "semantic-differential-scales"

// Chart limits keep the rendered image within memory
const (
	MaxChartDPI    = 1200
	MaxChartInches = 40.0
	MaxChartPixels = 50e6
)

// Config represents the complete application configuration
type Config struct {
	Output    OutputConfig
	Chart     ChartConfig
	Generator GeneratorConfig
	LogLevel  string
}

// OutputConfig holds export destinations
type OutputConfig struct {
	Dir         string
	ExportXLSX  bool
	SessionFile bool
}

// ChartConfig holds chart rendering settings
type ChartConfig struct {
	DPI      int
	WidthIn  float64
	HeightIn float64
}

// GeneratorConfig holds value generation settings
type GeneratorConfig struct {
	JitterMin float64
	JitterMax float64
	// Seed of 0 means seed from the clock
	Seed uint64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Output:    *loadOutputConfig(),
		Chart:     *loadChartConfig(),
		Generator: *loadGeneratorConfig(),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment overrides are set
func Default() *Config {
	return &Config{
		Output:    OutputConfig{Dir: DefaultOutputDir, SessionFile: true},
		Chart:     ChartConfig{DPI: 300, WidthIn: 6.4, HeightIn: 4.8},
		Generator: GeneratorConfig{JitterMin: 0.8, JitterMax: 1.2},
		LogLevel:  "INFO",
	}
}

func loadOutputConfig() *OutputConfig {
	return &OutputConfig{
		Dir:         getEnvOrDefault("SEMDIFF_OUTPUT_DIR", DefaultOutputDir),
		ExportXLSX:  getEnvBoolOrDefault("SEMDIFF_EXPORT_XLSX", false),
		SessionFile: getEnvBoolOrDefault("SEMDIFF_SESSION_FILE", true),
	}
}

func loadChartConfig() *ChartConfig {
	return &ChartConfig{
		DPI:      getEnvIntOrDefault("SEMDIFF_CHART_DPI", 300),
		WidthIn:  getEnvFloatOrDefault("SEMDIFF_CHART_WIDTH_IN", 6.4),
		HeightIn: getEnvFloatOrDefault("SEMDIFF_CHART_HEIGHT_IN", 4.8),
	}
}

func loadGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		JitterMin: getEnvFloatOrDefault("SEMDIFF_JITTER_MIN", 0.8),
		JitterMax: getEnvFloatOrDefault("SEMDIFF_JITTER_MAX", 1.2),
		Seed:      getEnvUintOrDefault("SEMDIFF_SEED", 0),
	}
}

func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Output.Dir) == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	c := config.Chart
	if c.DPI <= 0 || c.DPI > MaxChartDPI {
		return errors.ConfigInvalid(fmt.Sprintf("chart DPI must be between 1 and %d", MaxChartDPI))
	}
	if !inRange(c.WidthIn, 0, MaxChartInches) || !inRange(c.HeightIn, 0, MaxChartInches) {
		return errors.ConfigInvalid(fmt.Sprintf("chart dimensions must be positive and at most %g inches", MaxChartInches))
	}
	if dpi := float64(c.DPI); c.WidthIn*dpi*c.HeightIn*dpi > MaxChartPixels {
		return errors.ConfigInvalid(fmt.Sprintf("chart of %gx%g inches at %d DPI exceeds %g pixels", c.WidthIn, c.HeightIn, c.DPI, MaxChartPixels))
	}
	g := config.Generator
	if !inRange(g.JitterMin, 0, math.MaxFloat64) || !inRange(g.JitterMax, 0, math.MaxFloat64) || g.JitterMin > g.JitterMax {
		return errors.ConfigInvalid("jitter factor range is invalid")
	}
	return nil
}

// inRange reports whether v is finite, above lo and at most hi
func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > lo && v <= hi
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvUintOrDefault(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
