package config

import (
	"os"
	"strconv"
	"strings"

	"textlens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths    PathConfig
	Analysis AnalysisConfig
	Reports  ReportConfig
}

// PathConfig holds file system paths
type PathConfig struct {
	SegmentsFile string
	OutputDir    string
}

// AnalysisConfig holds engine tuning knobs
type AnalysisConfig struct {
	// Workers bounds the number of responses analyzed concurrently.
	Workers int
	// ResponseThemes is the per-parameter theme list length.
	ResponseThemes int
	// ComparativeThemes is the pooled cross-model theme list length.
	ComparativeThemes int
}

// ReportConfig selects which renderers run after analysis
type ReportConfig struct {
	// Formats is the ordered list of output formats: json, markdown, html, xlsx.
	Formats []string
}

var knownFormats = map[string]bool{
	"json":     true,
	"markdown": true,
	"html":     true,
	"xlsx":     true,
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths: PathConfig{
			SegmentsFile: getEnvOrDefault("TEXTLENS_SEGMENTS_FILE", "segments.json"),
			OutputDir:    getEnvOrDefault("TEXTLENS_OUTPUT_DIR", "analysis_output"),
		},
		Analysis: AnalysisConfig{
			Workers:           getEnvIntOrDefault("TEXTLENS_WORKERS", 4),
			ResponseThemes:    getEnvIntOrDefault("TEXTLENS_RESPONSE_THEMES", 10),
			ComparativeThemes: getEnvIntOrDefault("TEXTLENS_COMPARATIVE_THEMES", 30),
		},
		Reports: ReportConfig{
			Formats: splitFormats(getEnvOrDefault("TEXTLENS_REPORT_FORMATS", "json,markdown,html,xlsx")),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func splitFormats(raw string) []string {
	parts := strings.Split(raw, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.ToLower(strings.TrimSpace(p)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

func validateConfig(config *Config) error {
	if config.Paths.SegmentsFile == "" {
		return errors.ConfigInvalid("segments file path is required")
	}
	if config.Paths.OutputDir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if config.Analysis.Workers < 1 {
		return errors.ConfigInvalid("TEXTLENS_WORKERS must be at least 1")
	}
	if config.Analysis.ResponseThemes < 1 || config.Analysis.ComparativeThemes < 1 {
		return errors.ConfigInvalid("theme list lengths must be at least 1")
	}
	if len(config.Reports.Formats) == 0 {
		return errors.ConfigInvalid("at least one report format is required")
	}
	for _, f := range config.Reports.Formats {
		if !knownFormats[f] {
			return errors.ConfigInvalid("unknown report format: " + f)
		}
	}
	return nil
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
