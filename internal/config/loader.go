package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	defaultPageSize = 20
	defaultMaxSize  = 100
)

// Load reads the YAML file at path, overlays APP_* environment variables
// (APP_PAGINATION_MAX_PAGE_SIZE overrides pagination.max_page_size) and validates the result.
// An empty path skips the file and uses defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file not found: %w", err)
			}
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(config.Pagination); err != nil {
		return nil, fmt.Errorf("invalid pagination config: %w", err)
	}
	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal,
// even when the file does not mention it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("pagination.default_page_size", defaultPageSize)
	v.SetDefault("pagination.max_page_size", defaultMaxSize)

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.output_target", "")
	v.SetDefault("logger.env", "")
	v.SetDefault("logger.service_name", "")
	v.SetDefault("logger.service_version", "")
}
