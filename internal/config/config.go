package config

import (
	"github.com/maxviazov/pagination/internal/logger"
	"github.com/maxviazov/pagination/pkg/pagination"
)

type Config struct {
	Logger     logger.LoggerConfig `mapstructure:"logger"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
}

// PaginationConfig bounds page parameters coming from users.
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size" validate:"min=1,ltefield=MaxPageSize"`
	MaxPageSize     int `mapstructure:"max_page_size" validate:"min=1,max=100"`
}

// Defaults converts the configured bounds into request normalization defaults.
func (c PaginationConfig) Defaults() pagination.Defaults {
	return pagination.Defaults{PageSize: c.DefaultPageSize, MaxPageSize: c.MaxPageSize}
}
