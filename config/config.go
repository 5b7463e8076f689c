package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when Load gets no path.
const EnvPath = "ISLANDS_CONFIG"

// Config is the root of the islandtool configuration file.
type Config struct {
	Export ExportConfig `yaml:"export"`
	Noise  NoiseConfig  `yaml:"noise"`
	Log    LogConfig    `yaml:"log"`
}

type ExportConfig struct {
	Generator string `yaml:"generator"`
	Normals   bool   `yaml:"normals"`
	// Compression is "none" or "zstd". Output paths ending in .zst are
	// compressed regardless.
	Compression string `yaml:"compression"`
	ZstdLevel   int    `yaml:"zstd_level"`
}

type NoiseConfig struct {
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Octaves   int32   `yaml:"octaves"`
	Scale     float64 `yaml:"scale"`
	Threshold float64 `yaml:"threshold"`
}

type LogConfig struct {
	Level string `yaml:"level"` // info or debug
}

// Default is used when no file is configured; Load starts from it too, so a
// file only needs the keys it changes.
func Default() *Config {
	return &Config{
		Export: ExportConfig{Generator: "islandtool", Normals: true, Compression: "none", ZstdLevel: 3},
		Noise:  NoiseConfig{Alpha: 2, Beta: 2, Octaves: 3, Scale: 0.17, Threshold: 0.55},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a YAML configuration file. With an empty path it falls back to
// $ISLANDS_CONFIG, and to Default when that is unset as well.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return Default(), nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the tool cannot act on.
func (c *Config) Validate() error {
	switch c.Export.Compression {
	case "", "none", "zstd":
	default:
		return fmt.Errorf("unknown compression %q", c.Export.Compression)
	}
	switch c.Log.Level {
	case "", "info", "debug":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Noise.Threshold < 0 || c.Noise.Threshold > 1 {
		return fmt.Errorf("noise threshold %.3f outside [0,1]", c.Noise.Threshold)
	}
	return nil
}
