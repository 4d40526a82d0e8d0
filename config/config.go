package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisNotifyQueue int    `mapstructure:"REDIS_NOTIFY_QUEUE_DB"`

	// Booking engine tunables.
	CapacityCeiling  int    `mapstructure:"CAPACITY_CEILING"`
	OpeningMinute    int    `mapstructure:"OPENING_MINUTE"`
	ClosingMinute    int    `mapstructure:"CLOSING_MINUTE"`
	SlotIntervalMins int    `mapstructure:"SLOT_INTERVAL_MINS"`
	StudioTimezone   string `mapstructure:"STUDIO_TIMEZONE"`

	// Outbound notification settings.
	SMTPHost   string `mapstructure:"SMTP_HOST"`
	SMTPPort   string `mapstructure:"SMTP_PORT"`
	MailFrom   string `mapstructure:"MAIL_FROM"`
	SMSWebhook string `mapstructure:"SMS_WEBHOOK_URL"`
	SMSToken   string `mapstructure:"SMS_WEBHOOK_TOKEN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values. Opening/closing minutes count from midnight studio time.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_NOTIFY_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "wellnest")
	viper.SetDefault("CAPACITY_CEILING", 10)
	viper.SetDefault("OPENING_MINUTE", 8*60+30)
	viper.SetDefault("CLOSING_MINUTE", 14*60)
	viper.SetDefault("SLOT_INTERVAL_MINS", 30)
	viper.SetDefault("STUDIO_TIMEZONE", "America/New_York")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", "1025")
	viper.SetDefault("MAIL_FROM", "no-reply@wellnest.local")
	viper.SetDefault("SMS_WEBHOOK_URL", "")
	viper.SetDefault("SMS_WEBHOOK_TOKEN", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
