package engine

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/flux2d/flux2d/internal/core/observability/log"
)

// Config carries runtime tuning. Zero fields fall back to defaults when
// loaded from a document.
type Config struct {
	TickRate int     `json:"tickRate" yaml:"tickRate"`
	Gravity  float64 `json:"gravity" yaml:"gravity"`
	LogLevel string  `json:"logLevel" yaml:"logLevel"`
}

func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		Gravity:  9.8,
		LogLevel: "info",
	}
}

// LoadConfigJSON reads config from a JSON document.
func LoadConfigJSON(r io.Reader) (Config, error) {
	var c Config
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return DefaultConfig(), err
	}
	return c.withDefaults(), nil
}

// LoadConfigYAML reads config from a YAML document.
func LoadConfigYAML(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return DefaultConfig(), err
	}
	return c.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Gravity <= 0 {
		c.Gravity = def.Gravity
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}

// LogLevelValue maps the config string onto a log level.
func (c Config) LogLevelValue() log.Level {
	switch c.LogLevel {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
