package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix      = "SILICON_"
	ConfigPathEnv  = "SILICON_CONFIG"
	DefaultCfgPath = "config.yaml"
)

type ServerConfig struct {
	Port         int           `koanf:"port" validate:"required,min=1,max=65535"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"min=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"min=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"min=0"`
}

type StoreConfig struct {
	Driver string `koanf:"driver" validate:"oneof=memory sqlite"`
	DSN    string `koanf:"dsn" validate:"required_if=Driver sqlite"`
}

type HandbookConfig struct {
	// Path points at an external catalog. Empty means the embedded one.
	Path  string `koanf:"path"`
	Watch bool   `koanf:"watch"`
}

type AssistantConfig struct {
	ResponseDelay time.Duration `koanf:"response_delay" validate:"min=0"`
}

type DiscoveryConfig struct {
	MaxResults int `koanf:"max_results" validate:"min=1,max=50"`
}

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	LogLevel  string          `koanf:"log_level" validate:"oneof=debug info warn error"`
	Store     StoreConfig     `koanf:"store"`
	Handbook  HandbookConfig  `koanf:"handbook"`
	Assistant AssistantConfig `koanf:"assistant"`
	Discovery DiscoveryConfig `koanf:"discovery"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		LogLevel: "info",
		Store: StoreConfig{
			Driver: "memory",
			DSN:    "silicon_guide.db",
		},
		Discovery: DiscoveryConfig{
			MaxResults: 7,
		},
	}
}

var sections = []string{"server", "store", "handbook", "assistant", "discovery"}

// envKey maps SILICON_SERVER_READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range sections {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}

// LoadConfig reads .env, the YAML file named by SILICON_CONFIG and the
// SILICON_ environment, in that order of increasing precedence.
func LoadConfig() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	path := DefaultCfgPath
	if p, ok := os.LookupEnv(ConfigPathEnv); ok && p != "" {
		path = p
	}
	return Load(path)
}

// Load builds a Config from defaults, an optional YAML file and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return cfg, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("config validation failed: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:")
	for _, e := range errs {
		sb.WriteString(fmt.Sprintf(" %s: failed '%s' (value: %v);", e.Namespace(), e.Tag(), e.Value()))
	}
	return errors.New(strings.TrimSuffix(sb.String(), ";"))
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
