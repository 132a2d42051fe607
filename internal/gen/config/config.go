package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/haukened/bindgate/internal/gen/domain"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Input is the descriptor stream path; "-" reads stdin.
	Input string `koanf:"input" validate:"required"`

	// Output is the decision stream path; "-" writes stdout.
	Output string `koanf:"output" validate:"required"`

	// CacheSize is the overlay decision cache capacity; 0 disables caching.
	CacheSize int `koanf:"cache_size" validate:"gte=0"`

	// BloomFPRate is the target false-positive rate for the overlay Bloom filter.
	BloomFPRate float64 `koanf:"bloom_fp_rate" validate:"gt=0,lt=1"`

	// DenylistPath is an optional overlay denylist file; empty disables the overlay.
	DenylistPath string `koanf:"denylist_path"`

	// DenylistDB is the Bolt database backing the overlay; required with DenylistPath.
	DenylistDB string `koanf:"denylist_db" validate:"required_with=DenylistPath"`

	// DenylistReason is the reason recorded for overlay entries that carry none.
	DenylistReason string `koanf:"denylist_reason" validate:"required,reason_token"`
}

// DEFAULT_APP_CONFIG defines the default application configuration settings
// for the admission pipeline: stdin/stdout streams, no overlay, prod logging.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:            "prod",
	LogLevel:       "info",
	Input:          "-",
	Output:         "-",
	CacheSize:      1024,
	BloomFPRate:    0.01,
	DenylistReason: "denylisted",
}

// validReasonToken validates that the field value parses as a domain.Reason
// spelling (e.g. "denylisted", "undefined-symbol").
func validReasonToken(fl validator.FieldLevel) bool {
	_, err := domain.ParseReason(fl.Field().String())
	return err == nil
}

// envLoader loads environment variables with the prefix "BINDGATE_",
// lowercasing keys and trimming the prefix. It can be mocked in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "BINDGATE_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "BINDGATE_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads default configuration values into the provided Koanf
// instance using the structs provider and DEFAULT_APP_CONFIG. It returns an
// error if loading fails.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers the custom "reason_token" validation with the
// provided validator. Returns an error if registration fails.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("reason_token", validReasonToken)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	// Load default values using structs provider.
	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	// Load environment variables with prefix "BINDGATE_".
	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig

	// Unmarshal the loaded configuration into AppConfig struct.
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Validate the configuration.
	validate := validator.New(validator.WithRequiredStructEnabled())

	err = registerValidation(validate)
	if err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

// Reason returns the parsed default overlay reason. Load has already
// validated the token, so failures cannot occur on a loaded config.
func (c *AppConfig) Reason() domain.Reason {
	r, err := domain.ParseReason(c.DenylistReason)
	if err != nil {
		return domain.ReasonDenylisted
	}
	return r
}
