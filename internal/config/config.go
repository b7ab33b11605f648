package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MUA122/IOT-Project/internal/theme"
)

// AppConfig holds all configuration for the dashboard server
type AppConfig struct {
	Server    ServerSettings    `yaml:"server"`
	Dashboard DashboardSettings `yaml:"dashboard"`
	Theme     theme.Theme       `yaml:"theme"`
	Logging   LoggingConfig     `yaml:"logging"`
	Metrics   MetricsSettings   `yaml:"metrics"`
}

// ServerSettings contains HTTP server configuration
type ServerSettings struct {
	Port            int           `yaml:"port"`
	Host            string        `yaml:"host"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	StaticDir       string        `yaml:"static_dir"` // served under /static/, empty disables
}

// DashboardSettings contains page level settings
type DashboardSettings struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	ScrollOffset int    `yaml:"scroll_offset"` // pixels kept clear of the fixed header
	ChartLibURL  string `yaml:"chart_lib_url"`

	// FreezeData serves the dataset captured at startup instead of one
	// stamped per request. SIGHUP recaptures it.
	FreezeData bool `yaml:"freeze_data"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// MetricsSettings controls the Prometheus endpoint
type MetricsSettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// reservedPaths are the routes the dashboard serves itself
var reservedPaths = []string{
	"/",
	"/index.html",
	"/api/dashboard-data",
	"/api/sensors/current",
	"/api/history",
	"/health",
	"/assets/",
}

// LoadAppConfig loads configuration from a YAML file
func LoadAppConfig(path string) (*AppConfig, error) {
	yamlData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := AppConfig{
		Metrics: MetricsSettings{Enabled: true},
	}
	if err := yaml.Unmarshal(yamlData, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.ApplyDefaults()
	if err := config.OverrideFromEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

// Default returns a configuration with every default applied
func Default() *AppConfig {
	config := &AppConfig{
		Metrics: MetricsSettings{Enabled: true},
	}
	config.ApplyDefaults()
	return config
}

// ApplyDefaults sets default values for any unset fields
func (ac *AppConfig) ApplyDefaults() {
	if ac.Server.Port == 0 {
		ac.Server.Port = 8080
	}
	if ac.Server.Host == "" {
		ac.Server.Host = "localhost"
	}
	if ac.Server.ReadTimeout == 0 {
		ac.Server.ReadTimeout = 15 * time.Second
	}
	if ac.Server.WriteTimeout == 0 {
		ac.Server.WriteTimeout = 10 * time.Second
	}
	if ac.Server.ShutdownTimeout == 0 {
		ac.Server.ShutdownTimeout = 10 * time.Second
	}
	if ac.Dashboard.Title == "" {
		ac.Dashboard.Title = "Realtime Monitoring"
	}
	if ac.Dashboard.Description == "" {
		ac.Dashboard.Description = "Live status of the fire and smoke detection system with sensor insights and safety indicators."
	}
	if ac.Dashboard.ScrollOffset == 0 {
		ac.Dashboard.ScrollOffset = 70
	}
	if ac.Dashboard.ChartLibURL == "" {
		ac.Dashboard.ChartLibURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"
	}
	ac.Theme.ApplyDefaults()
	if ac.Logging.Level == "" {
		ac.Logging.Level = "info"
	}
	if ac.Logging.Format == "" {
		ac.Logging.Format = "json"
	}
	if ac.Metrics.Path == "" {
		ac.Metrics.Path = "/metrics"
	}
}

// OverrideFromEnv overrides config values from environment variables
func (ac *AppConfig) OverrideFromEnv() error {
	// Only override if environment variable is set (non-empty)
	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		ac.Server.Port = port
	}
	if v := os.Getenv("SERVER_HOST"); v != "" {
		ac.Server.Host = v
	}
	if v := os.Getenv("DASHBOARD_SCROLL_OFFSET"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DASHBOARD_SCROLL_OFFSET %q: %w", v, err)
		}
		ac.Dashboard.ScrollOffset = offset
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		ac.Logging.Level = v
	}
	return nil
}

// Validate checks if the configuration is valid
func (ac *AppConfig) Validate() error {
	if ac.Server.Port < 1 || ac.Server.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if ac.Dashboard.ScrollOffset < 0 {
		return fmt.Errorf("scroll offset must not be negative")
	}
	if err := ac.Theme.Validate(); err != nil {
		return err
	}
	switch strings.ToLower(ac.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q must be one of debug, info, warn, error", ac.Logging.Level)
	}
	if ac.Logging.Format != "json" && ac.Logging.Format != "console" {
		return fmt.Errorf("log format %q must be json or console", ac.Logging.Format)
	}
	if ac.Metrics.Enabled {
		if !strings.HasPrefix(ac.Metrics.Path, "/") {
			return fmt.Errorf("metrics path must start with /")
		}
		if ac.isReserved(ac.Metrics.Path) {
			return fmt.Errorf("metrics path %q conflicts with a dashboard route", ac.Metrics.Path)
		}
	}
	return nil
}

// isReserved reports whether path is already routed by the server
func (ac *AppConfig) isReserved(path string) bool {
	if ac.Server.StaticDir != "" && path == "/static/" {
		return true
	}
	for _, p := range reservedPaths {
		if path == p {
			return true
		}
	}
	return false
}

// Addr returns the listen address
func (ac *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", ac.Server.Host, ac.Server.Port)
}

// String returns a readable representation of the config
func (ac *AppConfig) String() string {
	return fmt.Sprintf("AppConfig{Server: %+v, Dashboard: %+v, Logging: %+v, Metrics: %+v}",
		ac.Server,
		ac.Dashboard,
		ac.Logging,
		ac.Metrics,
	)
}
