package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/thronos/careerforge/internal/common"
)

// Config holds runtime settings for the CareerForge CLI.
type Config struct {
	APIBaseURL   string        `env:"API_URL"`
	StatePath    string        `env:"STATE_PATH"`
	PollInterval time.Duration `env:"POLL_INTERVAL"`
	LogLevel     string        `env:"LOG_LEVEL"`
	ExportDir    string        `env:"EXPORT_DIR"`
	S3           S3            `envPrefix:"S3_"`
}

// S3 is the optional bucket kits are exported to. Export goes to ExportDir
// when Bucket is empty.
type S3 struct {
	Bucket    string `env:"BUCKET"     json:"bucket"     yaml:"bucket"`
	Prefix    string `env:"PREFIX"     json:"prefix"     yaml:"prefix"`
	Region    string `env:"REGION"     json:"region"     yaml:"region"`
	Endpoint  string `env:"ENDPOINT"   json:"endpoint"   yaml:"endpoint"`
	AccessKey string `env:"ACCESS_KEY" json:"access_key" yaml:"access_key"`
	SecretKey string `env:"SECRET_KEY" json:"secret_key" yaml:"secret_key"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = common.DefaultAPIBaseURL
	c.StatePath = defaultStatePath()
	c.PollInterval = 4 * time.Second
	c.LogLevel = "warn"
	c.ExportDir = "careerforge-kits"
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".careerforge.db"
	}
	return filepath.Join(dir, "careerforge", "state.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays the config
// file, the environment and command-line flags. Later sources take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
