package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "CLINICA_"

// DefaultAvatarSchemaURL is the avatar option catalog.
const DefaultAvatarSchemaURL = "https://api.dicebear.com/9.x/avataaars/schema.json"

// ErrInvalidSampler is returned for an unknown CLINICA_SAMPLER value.
var ErrInvalidSampler = errors.New("invalid sampler")

type Config struct {
	// DBPath overrides the database location. Empty resolves to the data dir.
	DBPath string `env:"DB"`

	// BankPath is a JSON or YAML question bank. Empty uses the bundled bank.
	BankPath string `env:"BANK"`

	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	AvatarSchemaURL string        `env:"AVATAR_SCHEMA_URL" envDefault:"https://api.dicebear.com/9.x/avataaars/schema.json"`
	AvatarTimeout   time.Duration `env:"AVATAR_TIMEOUT" envDefault:"5s"`

	// Sampler is "random" or "first".
	Sampler       string `env:"SAMPLER" envDefault:"random"`
	CasesPerLevel int    `env:"CASES_PER_LEVEL"`
	Seed          uint64 `env:"SEED"`
}

// Load parses the CLINICA_* environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: EnvPrefix})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	switch c.Sampler {
	case "random", "first":
	default:
		return fmt.Errorf("%w: %q (want random or first)", ErrInvalidSampler, c.Sampler)
	}
	if c.CasesPerLevel < 0 {
		return fmt.Errorf("cases per level must not be negative, got %d", c.CasesPerLevel)
	}
	return nil
}
