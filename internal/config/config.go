// Package config loads hoard's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/natefinch/atomic"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bnema/hoard/pkg/backoff"
	"github.com/bnema/hoard/pkg/duration"
)

// FileName is the configuration file name without extension.
const FileName = "hoard"

type Config struct {
	Data     DataConfig     `mapstructure:"data" yaml:"data"`
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry"`
	Model    ModelConfig    `mapstructure:"model" yaml:"model"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`

	// File is the configuration file that was read, empty when running on
	// defaults.
	File string `mapstructure:"-" yaml:"-"`
}

type DataConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type RegistryConfig struct {
	Remote    string       `mapstructure:"remote" yaml:"remote"`
	Catalog   string       `mapstructure:"catalog" yaml:"catalog"`
	Namespace string       `mapstructure:"namespace" yaml:"namespace"`
	Client    ClientConfig `mapstructure:"client" yaml:"client"`
}

type ModelConfig struct {
	// Category is the tag pulled when a reference names none and the
	// catalog lists no variant.
	Category string       `mapstructure:"category" yaml:"category"`
	Client   ClientConfig `mapstructure:"client" yaml:"client"`
}

// ClientConfig configures an outbound HTTP client and its retry schedule.
type ClientConfig struct {
	Proxy           string  `mapstructure:"proxy" yaml:"proxy"`
	Timeout         string  `mapstructure:"timeout" yaml:"timeout"`
	ChunkTimeout    string  `mapstructure:"chunk_timeout" yaml:"chunk_timeout"`
	RateLimit       float64 `mapstructure:"rate_limit" yaml:"rate_limit"`
	Retry           int     `mapstructure:"retry" yaml:"retry"`
	BackoffStrategy string  `mapstructure:"backoff_strategy" yaml:"backoff_strategy"`
	BackoffTime     string  `mapstructure:"backoff_time" yaml:"backoff_time"`
	MaxDelay        string  `mapstructure:"max_delay" yaml:"max_delay"`
	Jitter          bool    `mapstructure:"jitter" yaml:"jitter"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// Load reads the configuration. An explicit path must exist; otherwise
// hoard.toml is searched in the working directory, the user config
// directory and ~/.hoard, and defaults apply when none is found.
// HOARD_* environment variables override file values, e.g. HOARD_DATA_PATH.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Debug("no config file found, using defaults")
	}

	cfg, err := FromViper(v)
	if err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

// FromViper applies defaults and environment overrides to v and decodes it.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("HOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Data.Path = expandHome(cfg.Data.Path)
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.path", defaultDataDir())

	v.SetDefault("registry.remote", "https://registry.ollama.ai/")
	v.SetDefault("registry.catalog", "https://ollama.com/")
	v.SetDefault("registry.namespace", "library")
	v.SetDefault("registry.client.proxy", "")
	v.SetDefault("registry.client.timeout", "30s")
	v.SetDefault("registry.client.chunk_timeout", "0s")
	v.SetDefault("registry.client.rate_limit", 4)
	v.SetDefault("registry.client.retry", 3)
	v.SetDefault("registry.client.backoff_strategy", string(backoff.KindFibonacci))
	v.SetDefault("registry.client.backoff_time", "1s")
	v.SetDefault("registry.client.max_delay", "0s")
	v.SetDefault("registry.client.jitter", false)

	v.SetDefault("model.category", "latest")
	v.SetDefault("model.client.proxy", "")
	v.SetDefault("model.client.timeout", "0s")
	v.SetDefault("model.client.chunk_timeout", "60s")
	v.SetDefault("model.client.rate_limit", 0)
	v.SetDefault("model.client.retry", 5)
	v.SetDefault("model.client.backoff_strategy", string(backoff.KindFibonacci))
	v.SetDefault("model.client.backoff_time", "10s")
	v.SetDefault("model.client.max_delay", "0s")
	v.SetDefault("model.client.jitter", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
}

// Validate checks URLs, durations and schedule names.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("data.path is required")
	}
	for key, raw := range map[string]string{"registry.remote": c.Registry.Remote, "registry.catalog": c.Registry.Catalog} {
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
		}
	}
	if strings.ContainsAny(c.Model.Category, ": ") {
		return fmt.Errorf("model.category must be a bare tag, got %q", c.Model.Category)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if err := c.Registry.Client.Validate(); err != nil {
		return fmt.Errorf("registry.client: %w", err)
	}
	if err := c.Model.Client.Validate(); err != nil {
		return fmt.Errorf("model.client: %w", err)
	}
	return nil
}

// Validate checks the client's durations, proxy and backoff settings.
func (c ClientConfig) Validate() error {
	if c.Retry < 0 {
		return fmt.Errorf("retry must not be negative")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative")
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.ChunkTimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.proxyURL(); err != nil {
		return err
	}
	opts, err := c.Backoff()
	if err != nil {
		return err
	}
	_, err = opts.Build()
	return err
}

// TimeoutDuration is the whole-request timeout, zero for none.
func (c ClientConfig) TimeoutDuration() (time.Duration, error) {
	return field("timeout", c.Timeout)
}

// ChunkTimeoutDuration bounds the wait for each chunk of a body, zero for none.
func (c ClientConfig) ChunkTimeoutDuration() (time.Duration, error) {
	return field("chunk_timeout", c.ChunkTimeout)
}

// Backoff returns the retry schedule settings.
func (c ClientConfig) Backoff() (backoff.Options, error) {
	kind, err := backoff.ParseKind(c.BackoffStrategy)
	if err != nil {
		return backoff.Options{}, err
	}
	base, err := field("backoff_time", c.BackoffTime)
	if err != nil {
		return backoff.Options{}, err
	}
	maxDelay, err := field("max_delay", c.MaxDelay)
	if err != nil {
		return backoff.Options{}, err
	}
	return backoff.Options{
		Kind:     kind,
		Base:     base,
		MaxDelay: maxDelay,
		Retries:  c.Retry,
		Jitter:   c.Jitter,
	}, nil
}

// RetrySchedule returns the delays slept between attempts, without jitter.
func (c ClientConfig) RetrySchedule() ([]time.Duration, error) {
	opts, err := c.Backoff()
	if err != nil {
		return nil, err
	}
	opts.Jitter = false
	s, err := opts.Build()
	if err != nil {
		return nil, err
	}
	return backoff.Collect(s, opts.Retries), nil
}

// HTTPClient builds a client honoring the proxy and timeout settings. With
// no proxy configured the environment's proxy settings apply.
func (c ClientConfig) HTTPClient() (*http.Client, error) {
	timeout, err := c.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	proxy, err := c.proxyURL()
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxy != nil {
		transport.Proxy = http.ProxyURL(proxy)
	}
	return &http.Client{Transport: transport, Timeout: timeout}, nil
}

func (c ClientConfig) proxyURL() (*url.URL, error) {
	if c.Proxy == "" {
		return nil, nil
	}
	u, err := url.Parse(c.Proxy)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid proxy %q", c.Proxy)
	}
	return u, nil
}

func field(name, raw string) (time.Duration, error) {
	d, err := duration.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// DefaultPath is where `hoard config init` writes the configuration.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, FileName, FileName+".toml"), nil
}

// WriteDefault writes the default configuration to path atomically. An
// existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(DefaultTOML)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "."+FileName))
	}
	return dirs
}

// defaultDataDir returns $XDG_DATA_HOME/hoard, ~/.local/share/hoard, or
// ./data when no home directory is available.
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, FileName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", FileName)
	}
	log.Debug("failed to get user home directory, falling back to ./data")
	return "./data"
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// DefaultTOML is the configuration written by `hoard config init`.
const DefaultTOML = `# hoard configuration

[data]
# Catalog database and downloaded models live here.
path = "~/.local/share/hoard"

[registry]
remote = "https://registry.ollama.ai/"
catalog = "https://ollama.com/"
namespace = "library"

[registry.client]
proxy = ""
timeout = "30s"
# Catalog page requests per second, 0 = unlimited.
rate_limit = 4
retry = 3
backoff_strategy = "fibonacci" # fibonacci | exponential | fixed
backoff_time = "1s"
max_delay = "0s"
jitter = false

[model]
category = "latest"

[model.client]
proxy = ""
timeout = "0s"
chunk_timeout = "60s"
retry = 5
backoff_strategy = "fibonacci"
backoff_time = "10s"
max_delay = "0s"
jitter = true

[log]
level = "info"
file = ""
max_size = 10
max_backups = 3
max_age = 28
compress = false
`
