package litequery

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML representation of the builder settings:
//
//	database: app.db
//	workdir: ./storage
//	debug: true
//	autocreate: false
//	log_level: dev
type Config struct {
	Database   string `yaml:"database"`
	WorkDir    string `yaml:"workdir"`
	Debug      bool   `yaml:"debug"`
	Autocreate *bool  `yaml:"autocreate"`
	LogLevel   string `yaml:"log_level"`
}

func LoadConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, nil
}

// Options converts the config into options for New. A zap logger is built
// when log_level is set.
func (c Config) Options() ([]Option, error) {
	opts := []Option{Debug(c.Debug)}
	if c.WorkDir != "" {
		opts = append(opts, WorkDir(c.WorkDir))
	}
	if c.Autocreate != nil {
		opts = append(opts, Autocreate(*c.Autocreate))
	}
	if c.LogLevel != "" {
		level, err := ParseLogLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
		l, err := NewZapLogger(level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLogger(l))
	}
	return opts, nil
}
