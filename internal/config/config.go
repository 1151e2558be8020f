package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL     = "http://www.etymonline.com"
	DefaultWordsFile   = "/usr/share/dict/words"
	DefaultMaxAttempts = 5
	DefaultWidth       = 80
)

type Config struct {
	Etymonline EtymonlineConfig `mapstructure:"etymonline"`
	Lookup     LookupConfig     `mapstructure:"lookup"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Display    DisplayConfig    `mapstructure:"display"`
}

type EtymonlineConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,httpurl"`
	// Timeout of zero leaves the HTTP client without a deadline.
	Timeout time.Duration `mapstructure:"timeout"`
}

type LookupConfig struct {
	MaxAttempts uint          `mapstructure:"max_attempts" validate:"min=1"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
}

type DictionaryConfig struct {
	WordsFile string `mapstructure:"words_file" validate:"required"`
}

type DisplayConfig struct {
	// Width is used when the terminal size cannot be detected.
	Width int `mapstructure:"width" validate:"min=0"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/etym")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("etymonline.base_url", DefaultBaseURL)
	v.SetDefault("etymonline.timeout", time.Duration(0))
	v.SetDefault("lookup.max_attempts", DefaultMaxAttempts)
	v.SetDefault("lookup.retry_delay", time.Duration(0))
	v.SetDefault("dictionary.words_file", DefaultWordsFile)
	v.SetDefault("display.width", DefaultWidth)

	if err := v.BindEnv("etymonline.base_url", "ETYM_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind ETYM_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("dictionary.words_file", "ETYM_WORDS_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind ETYM_WORDS_FILE environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags. It is exported so that values
// overridden by command line flags can be checked again after Load.
func (loader *ConfigLoader) Validate(cfg *Config) error {
	err := loader.validator.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	var errorMsgs []string
	for _, e := range validationErrors {
		errorMsgs = append(errorMsgs, e.Translate(loader.translator))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
}
