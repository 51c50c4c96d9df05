package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "SHOPLITE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Dashboard DashboardConfig
	CORS      CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPLITE_APP_ENV" default:"dev"`
	Port         string `envconfig:"SHOPLITE_APP_PORT" default:"8787"`
	LogLevel     string `envconfig:"SHOPLITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPLITE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StoreConfig struct {
	DataDir    string `envconfig:"SHOPLITE_DATA_DIR" default:"data"`
	UploadsDir string `envconfig:"SHOPLITE_UPLOADS_DIR" default:"uploads"`
}

type DashboardConfig struct {
	// WindowDays is the trailing window applied when ?days is absent.
	WindowDays int `envconfig:"SHOPLITE_DASHBOARD_WINDOW_DAYS" default:"30"`
	MaxDays    int `envconfig:"SHOPLITE_DASHBOARD_MAX_DAYS" default:"365"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPLITE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
