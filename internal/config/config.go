// Package config loads daemon and CLI tunables from an optional config file
// plus PROCCTL_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PROCCTL"

	DefaultLivenessInterval    = 10 * time.Second
	DefaultLastSeenInterval    = 30 * time.Second
	DefaultTerminateTimeout    = 5 * time.Second
	DefaultRestartPollInterval = 100 * time.Millisecond
	DefaultCPUSampleInterval   = 100 * time.Millisecond
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
)

// Config aggregates tunable timeouts/intervals for the daemon.
type Config struct {
	LivenessInterval       time.Duration `mapstructure:"liveness_interval"`
	LastSeenUpdateInterval time.Duration `mapstructure:"last_seen_interval"`
	TerminateTimeout       time.Duration `mapstructure:"terminate_timeout"`
	RestartPollInterval    time.Duration `mapstructure:"restart_poll_interval"`
	CPUSampleInterval      time.Duration `mapstructure:"cpu_sample_interval"`
	// MetricsAddr enables the Prometheus endpoint when non-empty.
	MetricsAddr string    `mapstructure:"metrics_addr"`
	Log         LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		LivenessInterval:       DefaultLivenessInterval,
		LastSeenUpdateInterval: DefaultLastSeenInterval,
		TerminateTimeout:       DefaultTerminateTimeout,
		RestartPollInterval:    DefaultRestartPollInterval,
		CPUSampleInterval:      DefaultCPUSampleInterval,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds a Config from an optional file (JSON, YAML or TOML, chosen by
// extension) plus environment overrides. Env wins over the file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Default(), fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("liveness_interval", d.LivenessInterval)
	v.SetDefault("last_seen_interval", d.LastSeenUpdateInterval)
	v.SetDefault("terminate_timeout", d.TerminateTimeout)
	v.SetDefault("restart_poll_interval", d.RestartPollInterval)
	v.SetDefault("cpu_sample_interval", d.CPUSampleInterval)
	v.SetDefault("metrics_addr", "")
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate rejects non-positive durations and unknown log settings.
func (c Config) Validate() error {
	durations := []struct {
		key string
		val time.Duration
	}{
		{"liveness_interval", c.LivenessInterval},
		{"last_seen_interval", c.LastSeenUpdateInterval},
		{"terminate_timeout", c.TerminateTimeout},
		{"restart_poll_interval", c.RestartPollInterval},
		{"cpu_sample_interval", c.CPUSampleInterval},
	}
	for _, d := range durations {
		if d.val <= 0 {
			return fmt.Errorf("%s must be > 0, got %s", d.key, d.val)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	return nil
}
