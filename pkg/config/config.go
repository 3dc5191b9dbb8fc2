package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Config struct {
	Server          Server `mapstructure:"server"`
	DBPath          string `mapstructure:"db_path"`
	DashboardFanOut int    `mapstructure:"dashboard_fan_out"`
	EventBufferSize int    `mapstructure:"event_buffer_size"`
}

// Load reads configuration from the optional file at path, with
// TEAMPULSE_-prefixed environment variables taking precedence
// (e.g. TEAMPULSE_SERVER_ADDR, TEAMPULSE_DB_PATH).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("db_path", "teampulse.db")
	v.SetDefault("dashboard_fan_out", 8)
	v.SetDefault("event_buffer_size", 16)

	v.SetEnvPrefix("TEAMPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
