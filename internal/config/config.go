package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/stringjsx/internal/errors"
	"github.com/vango-dev/stringjsx/pkg/publish"
	"github.com/vango-dev/stringjsx/pkg/render"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "stringjsx.json"

	// DefaultAddr is the default server listen address.
	DefaultAddr = "localhost:8080"

	// DefaultMaxBodyBytes bounds request documents.
	DefaultMaxBodyBytes = 1 << 20

	// DefaultPublishDir is where the disk backend writes pages.
	DefaultPublishDir = "public"
)

// Environment overrides.
const (
	EnvAddr     = "STRINGJSX_ADDR"
	EnvLogLevel = "STRINGJSX_LOG_LEVEL"
)

// fileNames are tried in order by LoadFromDir.
var fileNames = []string{ConfigFileName, "stringjsx.yaml", "stringjsx.yml"}

// Config represents a stringjsx.json (or .yaml) file.
type Config struct {
	Render  RenderConfig   `json:"render,omitempty" yaml:"render,omitempty"`
	Server  ServerConfig   `json:"server,omitempty" yaml:"server,omitempty"`
	Publish publish.Config `json:"publish,omitempty" yaml:"publish,omitempty"`
	Log     LogConfig      `json:"log,omitempty" yaml:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains renderer settings.
type RenderConfig struct {
	// MaxDepth bounds how deeply children may nest.
	MaxDepth int `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address (e.g., ":8080").
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`

	// MaxBodyBytes bounds request documents and WebSocket frames.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty" yaml:"maxBodyBytes,omitempty"`

	// ReadTimeout and WriteTimeout are durations such as "10s".
	ReadTimeout  string `json:"readTimeout,omitempty" yaml:"readTimeout,omitempty"`
	WriteTimeout string `json:"writeTimeout,omitempty" yaml:"writeTimeout,omitempty"`

	// MetricsNamespace prefixes Prometheus metric names.
	MetricsNamespace string `json:"metricsNamespace,omitempty" yaml:"metricsNamespace,omitempty"`

	// TracerName names the OpenTelemetry tracer.
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}

// New returns a Config with defaults.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path, or searches the working directory when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromDir(".")
	}
	return LoadFile(path)
}

// LoadFromDir loads the first config file found in dir. A directory
// without one yields the defaults.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	cfg := New()
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile loads a config file. The extension picks the format: .yaml and
// .yml are YAML, anything else is JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E220").
				WithDetail("No config file at " + path).
				WithSuggestion("Run 'stringjsx init' to write one with the defaults")
		}
		return nil, errors.New("E220").Wrap(err)
	}

	cfg := &Config{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E220").
			Wrap(err).
			WithDetail("Failed to parse " + path)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	cfg.applyEnv()

	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Save writes the config back to the path it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the config to path in the format its extension names.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E220").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E220").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from, if any.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Render.MaxDepth == 0 {
		c.Render.MaxDepth = render.DefaultMaxDepth
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "10s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "10s"
	}
	if c.Server.MetricsNamespace == "" {
		c.Server.MetricsNamespace = "stringjsx"
	}
	if c.Server.TracerName == "" {
		c.Server.TracerName = "github.com/vango-dev/stringjsx"
	}

	if c.Publish.Backend == "" {
		c.Publish.Backend = publish.BackendDisk
	}
	if c.Publish.Backend == publish.BackendDisk && c.Publish.Dir == "" {
		c.Publish.Dir = DefaultPublishDir
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Render.MaxDepth < 0 {
		return errors.New("E221").
			WithDetail("render.maxDepth must not be negative")
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New("E221").
			WithDetail("server.maxBodyBytes must not be negative")
	}
	for name, value := range map[string]string{
		"server.readTimeout":  c.Server.ReadTimeout,
		"server.writeTimeout": c.Server.WriteTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return errors.New("E221").
				WithDetail(name + " is not a duration: " + value).
				WithSuggestion(`Use values such as "10s" or "1m"`)
		}
	}
	switch c.Publish.Backend {
	case publish.BackendDisk:
	case publish.BackendS3:
		if c.Publish.Bucket == "" {
			return errors.New("E221").
				WithDetail("publish.bucket is required for the s3 backend")
		}
	default:
		return errors.New("E221").
			WithDetail("publish.backend must be disk or s3, got " + c.Publish.Backend)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("E221").
			WithDetail("log.level must be debug, info, warn or error, got " + c.Log.Level)
	}
	return nil
}

// ReadTimeout returns the parsed server read timeout.
func (c *Config) ReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout, 10*time.Second)
}

// WriteTimeout returns the parsed server write timeout.
func (c *Config) WriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout, 10*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// PublishDir resolves the disk publish directory against the config file.
func (c *Config) PublishDir() string {
	dir := c.Publish.Dir
	if dir == "" {
		dir = DefaultPublishDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Dir(), dir)
}
