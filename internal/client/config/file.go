package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thronos/careerforge/internal/flagx"
	"github.com/thronos/careerforge/internal/timex"
)

// fileConfig is a DTO used exclusively for file unmarshalling. Zero values
// leave the corresponding Config field untouched.
type fileConfig struct {
	APIBaseURL   string         `json:"api_base_url"  yaml:"api_base_url"`
	StatePath    string         `json:"state_path"    yaml:"state_path"`
	PollInterval timex.Duration `json:"poll_interval" yaml:"poll_interval"`
	LogLevel     string         `json:"log_level"     yaml:"log_level"`
	ExportDir    string         `json:"export_dir"    yaml:"export_dir"`
	S3           S3             `json:"s3"            yaml:"s3"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}
	return loadFile(cfg, path)
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.APIBaseURL, fc.APIBaseURL)
	overlay(&cfg.StatePath, fc.StatePath)
	overlay(&cfg.LogLevel, fc.LogLevel)
	overlay(&cfg.ExportDir, fc.ExportDir)
	if fc.PollInterval.Duration > 0 {
		cfg.PollInterval = fc.PollInterval.Duration
	}
	overlay(&cfg.S3.Bucket, fc.S3.Bucket)
	overlay(&cfg.S3.Prefix, fc.S3.Prefix)
	overlay(&cfg.S3.Region, fc.S3.Region)
	overlay(&cfg.S3.Endpoint, fc.S3.Endpoint)
	overlay(&cfg.S3.AccessKey, fc.S3.AccessKey)
	overlay(&cfg.S3.SecretKey, fc.S3.SecretKey)
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
