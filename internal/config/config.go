package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RabbitMQ  RabbitMQConfig  `mapstructure:"rabbitmq"`
	RecEngine RecEngineConfig `mapstructure:"rec_engine"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DatabaseConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxIdle     int    `mapstructure:"max_idle"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	EnableTLS   bool   `mapstructure:"enable_tls"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	PoolSize  int    `mapstructure:"pool_size"`
	EnableTLS bool   `mapstructure:"enable_tls"`
}

type RabbitMQConfig struct {
	Enabled      bool               `mapstructure:"enabled"`
	URL          string             `mapstructure:"url"`
	EnableTLS    bool               `mapstructure:"enable_tls"`
	ExchangeName string             `mapstructure:"exchange_name"`
	RoutingKey   RoutingKeyConfig   `mapstructure:"routing_key"`
}

type RoutingKeyConfig struct {
	ProfileUpdated   string `mapstructure:"profile_updated"`
	FeedbackRecorded string `mapstructure:"feedback_recorded"`
}

type RecEngineConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	TimeoutSec int    `mapstructure:"timeout_sec"`
}

type AuthConfig struct {
	DeviceTokenPrefix        string `mapstructure:"device_token_prefix"`
	SecretPepper             string `mapstructure:"secret_pepper"`
	EnableArgon2Verification bool   `mapstructure:"enable_argon2_verification"`
}

type TelemetryConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OtlpEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

// Load reads config.yaml from the working directory (or /etc/d8) and applies
// D8_-prefixed environment overrides, e.g. D8_DATABASE_DSN.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/d8")

	v.SetEnvPrefix("D8")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "d8-api")
	v.SetDefault("app.env", "development")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("rabbitmq.exchange_name", "d8.events")
	v.SetDefault("rabbitmq.routing_key.profile_updated", "profile.updated")
	v.SetDefault("rabbitmq.routing_key.feedback_recorded", "feedback.recorded")
	v.SetDefault("rec_engine.timeout_sec", 30)
	v.SetDefault("auth.device_token_prefix", "d8_device_")
	v.SetDefault("telemetry.sample_ratio", 1.0)

	if err := v.ReadInConfig(); err != nil {
		// config file is optional; env vars and defaults may be enough
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
