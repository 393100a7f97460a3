// Package config loads the YAML run configuration of the pathsearch CLI.
//
// A configuration file provides defaults; flags given on the command line
// override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/QSI-BAQS/pathsearch/codec"
	"github.com/QSI-BAQS/pathsearch/persistence"
)

const (
	defaultThreads   = 1
	defaultTaskBound = 10000
	defaultStore     = "file://output"
)

// DefaultYAML is a commented configuration equal to Default().
const DefaultYAML = `# pathsearch configuration
version: 1

# Search all Pareto-optimal paths instead of the greedy path.
search: false

# Below 3 threads the search runs sequentially; otherwise one thread
# aggregates results and the rest work through tasks.
threads: 1

# Maximum number of split tasks; negative means unlimited.
task_bound: 10000

# file://dir, s3://bucket/prefix or minio://host/bucket/prefix
store: file://output
codec: go-json
compression: none

log:
  level: info
  format: text

metrics:
  # Serve Prometheus metrics on this address, e.g. ":9090".
  addr: ""
`

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// S3Config configures s3:// stores.
type S3Config struct {
	Region   string `yaml:"region,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// MinIOConfig configures minio:// stores.
type MinIOConfig struct {
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	Secure    bool   `yaml:"secure,omitempty"`
	Region    string `yaml:"region,omitempty"`
}

// Config models the YAML configuration file.
type Config struct {
	Version        int           `yaml:"version"`
	Search         bool          `yaml:"search"`
	Threads        int           `yaml:"threads"`
	TaskBound      int           `yaml:"task_bound"`
	ProgressPerSec float64       `yaml:"progress_per_sec,omitempty"`
	Store          string        `yaml:"store"`
	Codec          string        `yaml:"codec"`
	Compression    string        `yaml:"compression"`
	Log            LogConfig     `yaml:"log"`
	Metrics        MetricsConfig `yaml:"metrics"`
	S3             S3Config      `yaml:"s3,omitempty"`
	MinIO          MinIOConfig   `yaml:"minio,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version:     1,
		Threads:     defaultThreads,
		TaskBound:   defaultTaskBound,
		Store:       defaultStore,
		Codec:       codec.Default.Name(),
		Compression: persistence.CompressionNone.String(),
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and validates the configuration file at path. Keys missing
// from the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	cfg.applyDefaults()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if strings.TrimSpace(c.Store) == "" {
		c.Store = defaultStore
	}
	if strings.TrimSpace(c.Codec) == "" {
		c.Codec = codec.Default.Name()
	}
}

func (c *Config) normalize() {
	c.Store = strings.TrimSpace(c.Store)
	c.Codec = strings.ToLower(strings.TrimSpace(c.Codec))
	c.Compression = strings.ToLower(strings.TrimSpace(c.Compression))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	var errs []error
	if c.Version != 1 {
		errs = append(errs, fmt.Errorf("unsupported version %d", c.Version))
	}
	if c.Threads < 1 {
		errs = append(errs, fmt.Errorf("threads must be positive, got %d", c.Threads))
	}
	if c.ProgressPerSec < 0 {
		errs = append(errs, fmt.Errorf("progress_per_sec must not be negative, got %g", c.ProgressPerSec))
	}
	if _, ok := codec.ByName(c.Codec); !ok {
		errs = append(errs, fmt.Errorf("unknown codec %q (want one of %s)", c.Codec, strings.Join(codec.Names(), ", ")))
	}
	if _, err := persistence.ParseCompression(c.Compression); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
