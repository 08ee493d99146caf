package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional single-file configuration schema. Flags win
// over file values; the file mostly pins voice preferences per machine.
type FileConfig struct {
	Output string `yaml:"output"`

	Service string `yaml:"service"`

	Voice struct {
		Name       string  `yaml:"name"`
		Rate       float64 `yaml:"rate"`
		Format     string  `yaml:"format"`
		SampleRate int     `yaml:"sampleRate"`
		Language   string  `yaml:"language"`
	} `yaml:"voice"`

	MaxLength int `yaml:"maxLength"`

	Cache struct {
		Dir string `yaml:"dir"`
	} `yaml:"cache"`

	Fetch struct {
		Timeout   time.Duration `yaml:"timeout"`
		UserAgent string        `yaml:"userAgent"`
	} `yaml:"fetch"`

	Verbose bool `yaml:"verbose"`
}

// LoadFileConfig reads and parses a YAML config file.
func LoadFileConfig(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// Apply folds file values into cfg wherever cfg still has the zero value,
// so explicitly-set flags keep precedence.
func (fc *FileConfig) Apply(cfg *Config) {
	if cfg.OutputPath == "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.Service == "" {
		cfg.Service = fc.Service
	}
	if fc.Voice.Name != "" && cfg.Voice.VoiceName == "" {
		cfg.Voice.VoiceName = fc.Voice.Name
	}
	if fc.Voice.Rate != 0 && cfg.Voice.SpeakingRate == 0 {
		cfg.Voice.SpeakingRate = fc.Voice.Rate
	}
	if fc.Voice.Format != "" && cfg.Voice.OutputFormat == "" {
		cfg.Voice.OutputFormat = fc.Voice.Format
	}
	if fc.Voice.SampleRate != 0 && cfg.Voice.SampleRate == 0 {
		cfg.Voice.SampleRate = fc.Voice.SampleRate
	}
	if cfg.Language == "" {
		cfg.Language = fc.Voice.Language
	}
	if cfg.MaxLength == 0 {
		cfg.MaxLength = fc.MaxLength
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = fc.Fetch.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
