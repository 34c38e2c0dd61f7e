package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jsphweid/chordnova/constants"
	"gopkg.in/yaml.v3"
)

// Config holds chordnova settings for the serve and export commands.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
	Export  ExportConfig  `yaml:"export"`
	Search  SearchConfig  `yaml:"search"`
}

type HTTPConfig struct {
	Port            int      `yaml:"port"`
	ReadTimeoutSec  int      `yaml:"read_timeout_sec"`
	WriteTimeoutSec int      `yaml:"write_timeout_sec"`
	CORSOrigins     []string `yaml:"cors_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type ExportConfig struct {
	Dir           string  `yaml:"dir"`
	TempoBPM      float64 `yaml:"tempo_bpm"`
	Velocity      int     `yaml:"velocity"`
	BeatsPerChord int     `yaml:"beats_per_chord"`
}

type SearchConfig struct {
	Dedup bool `yaml:"dedup"`
}

// Load reads a YAML file. An empty path yields the defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		data = expandEnvVars(data)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars substitutes ${VAR}; unset variables become empty.
func expandEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		name := envVarPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(name)))
	})
}

func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec == 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec == 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if len(c.HTTP.CORSOrigins) == 0 {
		c.HTTP.CORSOrigins = []string{"*"}
	}
	if c.Export.Dir == "" {
		c.Export.Dir = constants.GetOutputDir()
	}
	if c.Export.TempoBPM == 0 {
		c.Export.TempoBPM = 60
	}
	if c.Export.Velocity == 0 {
		c.Export.Velocity = 80
	}
	if c.Export.BeatsPerChord == 0 {
		c.Export.BeatsPerChord = 2
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port must be in 1..65535, got %d", c.HTTP.Port))
	}
	if c.HTTP.ReadTimeoutSec < 0 || c.HTTP.WriteTimeoutSec < 0 {
		errs = append(errs, errors.New("http timeouts must not be negative"))
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	if c.Export.TempoBPM < 0 {
		errs = append(errs, fmt.Errorf("export.tempo_bpm must be positive, got %v", c.Export.TempoBPM))
	}
	if c.Export.Velocity < 1 || c.Export.Velocity > 127 {
		errs = append(errs, fmt.Errorf("export.velocity must be in 1..127, got %d", c.Export.Velocity))
	}
	if c.Export.BeatsPerChord < 0 {
		errs = append(errs, fmt.Errorf("export.beats_per_chord must be positive, got %d", c.Export.BeatsPerChord))
	}
	return errors.Join(errs...)
}
