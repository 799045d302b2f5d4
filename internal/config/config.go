package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port           string
	Provider       string
	ScoreboardPath string
	DefaultTop     int
	CORSOrigins    []string
	ESPN           ESPNConfig
	Metrics        MetricsConfig
	Log            LogConfig
	Poll           PollConfig
}

// PollConfig controls the background slate refresh that keeps readiness current.
type PollConfig struct {
	Enabled  bool
	Interval Duration
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load layers defaults, an optional YAML file named by CONFIG_FILE, and the environment.
// Keys are the lower-cased environment names, so PORT and `port:` in the file are the same setting.
func Load() (Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}

	return fromSource(source{k: k}), nil
}

func fromSource(src source) Config {
	return Config{
		Port:           src.stringOrDefault(keyPort, defaultPort),
		Provider:       strings.ToLower(src.stringOrDefault(keyProvider, defaultProvider)),
		ScoreboardPath: src.stringOrDefault(keyScoreboardPath, ""),
		DefaultTop:     src.intOrDefault(keyDefaultTop, defaultTop),
		CORSOrigins:    src.listOrDefault(keyCORSOrigins, defaultCORSOrigins),
		ESPN:           loadESPN(src),
		Metrics:        loadMetrics(src),
		Log: LogConfig{
			Level:  src.stringOrDefault(keyLogLevel, defaultLogLevel),
			Format: src.stringOrDefault(keyLogFormat, defaultLogFormat),
		},
		Poll: PollConfig{
			Enabled:  src.boolOrDefault(keyPollEnabled, true),
			Interval: src.durationOrDefault(keyPollInterval, defaultPollInterval),
		},
	}
}
