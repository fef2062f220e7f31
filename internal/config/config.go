// Package config holds the process-wide configuration for the complaint
// service. Everything is read once at startup; nothing here is mutated
// afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	HTTP       HTTPConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Mail       MailConfig
	Summarizer SummarizerConfig
	Telegram   TelegramConfig
	Logger     LoggerConfig
}

type HTTPConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// DSN builds the Postgres connection string for GORM.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MailConfig carries the SMTP session settings. Sender, Password and
// SupportEmail are mandatory: the service refuses to start without them
// rather than failing on the first submission.
type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	Sender       string
	Password     string
	SupportEmail string
}

type SummarizerConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// TelegramConfig enables the optional support-chat alert. Both fields must be
// set for the alerter to be wired in.
type TelegramConfig struct {
	BotToken      string
	SupportChatID int64
}

// Enabled reports whether the Telegram alert channel is configured.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.SupportChatID != 0
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies defaults where a setting is not security sensitive.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:         getString("SERVER_ADDR", ":8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getString("DB_HOST", "localhost"),
			Port:     getString("DB_PORT", "5432"),
			Name:     getString("DB_NAME", "complaintsdb"),
			User:     getString("DB_USER", "user"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getString("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},
		Mail: MailConfig{
			SMTPHost:     getString("SMTP_SERVER", "smtp.gmail.com"),
			SMTPPort:     getString("SMTP_PORT", "587"),
			Sender:       os.Getenv("EMAIL_ADDRESS"),
			Password:     os.Getenv("EMAIL_PASSWORD"),
			SupportEmail: os.Getenv("COMPANY_SUPPORT_EMAIL"),
		},
		Summarizer: SummarizerConfig{
			Endpoint: getString("SUMMARIZER_URL", "http://localhost:5001/summarize"),
			Timeout:  getDuration("SUMMARIZER_TIMEOUT", 10*time.Second),
		},
		Telegram: TelegramConfig{
			BotToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
			SupportChatID: getInt64("TELEGRAM_SUPPORT_CHAT_ID", 0),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Mail.Sender == "":
		return fmt.Errorf("config: EMAIL_ADDRESS is not set")
	case c.Mail.Password == "":
		return fmt.Errorf("config: EMAIL_PASSWORD is not set")
	case c.Mail.SupportEmail == "":
		return fmt.Errorf("config: COMPANY_SUPPORT_EMAIL is not set")
	}
	return nil
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
