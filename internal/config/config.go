package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/menta2k/sprite-cutter/pkg/types"
)

// DefaultInputs are the folders scanned when no path is given
var DefaultInputs = []string{"Base", "Ships", "Space"}

// Config holds the application configuration
type Config struct {
	Cutter CutterConfig `json:"cutter" yaml:"cutter"`
	Output OutputConfig `json:"output" yaml:"output"`
	Batch  BatchConfig  `json:"batch" yaml:"batch"`
}

// CutterConfig holds the frame detection settings
type CutterConfig struct {
	MinSpriteSize       int     `json:"min_sprite_size" yaml:"min_sprite_size"`
	MaxSpriteSize       int     `json:"max_sprite_size" yaml:"max_sprite_size"`
	BackgroundTolerance int     `json:"background_tolerance" yaml:"background_tolerance"`
	RemoveBackground    bool    `json:"remove_background" yaml:"remove_background"`
	CornerSampleSize    int     `json:"corner_sample_size" yaml:"corner_sample_size"`
	EmptyRatio          float64 `json:"empty_ratio" yaml:"empty_ratio"`
	MinContentRatio     float64 `json:"min_content_ratio" yaml:"min_content_ratio"`
	EdgeThreshold       float64 `json:"edge_threshold" yaml:"edge_threshold"`
	StripFallback       bool    `json:"strip_fallback" yaml:"strip_fallback"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	Dir          string `json:"dir" yaml:"dir"`
	NameTemplate string `json:"name_template" yaml:"name_template"`
	// CopyUnsplit writes the whole image when no frames are found.
	CopyUnsplit bool `json:"copy_unsplit" yaml:"copy_unsplit"`
}

// BatchConfig holds configuration for directory processing
type BatchConfig struct {
	Inputs    []string `json:"inputs" yaml:"inputs"`
	Workers   int      `json:"workers" yaml:"workers"`
	Recursive bool     `json:"recursive" yaml:"recursive"`
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Default returns a configuration with default values
func Default() *Config {
	c := types.DefaultCutterConfig()
	return &Config{
		Cutter: CutterConfig{
			MinSpriteSize:       c.MinSpriteSize,
			MaxSpriteSize:       c.MaxSpriteSize,
			BackgroundTolerance: int(c.BackgroundTolerance),
			RemoveBackground:    c.RemoveBackground,
			CornerSampleSize:    c.CornerSampleSize,
			EmptyRatio:          c.EmptyRatio,
			MinContentRatio:     c.MinContentRatio,
			EdgeThreshold:       c.EdgeThreshold,
			StripFallback:       c.StripFallback,
		},
		Output: OutputConfig{
			Dir:          c.OutputDir,
			NameTemplate: c.NameTemplate,
			CopyUnsplit:  false,
		},
		Batch: BatchConfig{
			Inputs:  append([]string(nil), DefaultInputs...),
			Workers: runtime.NumCPU(),
		},
	}
}

// LoadFromFile loads configuration from a JSON or YAML file. Fields missing
// from the file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON or YAML file, chosen by extension
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Cutter.MinSpriteSize < 1 {
		return ValidationError{Field: "cutter.min_sprite_size", Message: "must be positive"}
	}

	if c.Cutter.MaxSpriteSize < c.Cutter.MinSpriteSize {
		return ValidationError{Field: "cutter.max_sprite_size", Message: "must not be smaller than min_sprite_size"}
	}

	if c.Cutter.BackgroundTolerance < 0 || c.Cutter.BackgroundTolerance > 255 {
		return ValidationError{Field: "cutter.background_tolerance", Message: "must be between 0 and 255"}
	}

	if c.Cutter.CornerSampleSize < 1 {
		return ValidationError{Field: "cutter.corner_sample_size", Message: "must be positive"}
	}

	if c.Cutter.EmptyRatio <= 0 || c.Cutter.EmptyRatio > 1 {
		return ValidationError{Field: "cutter.empty_ratio", Message: "must be in (0, 1]"}
	}

	if c.Cutter.MinContentRatio < 0 || c.Cutter.MinContentRatio > 1 {
		return ValidationError{Field: "cutter.min_content_ratio", Message: "must be between 0 and 1"}
	}

	if c.Cutter.EdgeThreshold < 0 {
		return ValidationError{Field: "cutter.edge_threshold", Message: "must not be negative"}
	}

	if c.Output.Dir == "" {
		return ValidationError{Field: "output.dir", Message: "cannot be empty"}
	}

	if !strings.Contains(c.Output.NameTemplate, "{index}") {
		return ValidationError{Field: "output.name_template", Message: "must contain {index}"}
	}

	if c.Batch.Workers < 1 {
		return ValidationError{Field: "batch.workers", Message: "must be positive"}
	}

	return nil
}

// CutterConfig returns the immutable core configuration derived from c
func (c *Config) CutterConfig() types.CutterConfig {
	return types.CutterConfig{
		MinSpriteSize:       c.Cutter.MinSpriteSize,
		MaxSpriteSize:       c.Cutter.MaxSpriteSize,
		BackgroundTolerance: uint8(c.Cutter.BackgroundTolerance),
		RemoveBackground:    c.Cutter.RemoveBackground,
		OutputDir:           c.Output.Dir,
		NameTemplate:        c.Output.NameTemplate,
		CornerSampleSize:    c.Cutter.CornerSampleSize,
		EmptyRatio:          c.Cutter.EmptyRatio,
		MinContentRatio:     c.Cutter.MinContentRatio,
		EdgeThreshold:       c.Cutter.EdgeThreshold,
		StripFallback:       c.Cutter.StripFallback,
	}
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "sprite-cutter", "config.json")
}
