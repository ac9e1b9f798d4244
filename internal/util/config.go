package util

import (
	"fmt"

	"github.com/spf13/viper"
)

// Offer fan-out strategies. The two variants observed in production are
// mutually exclusive; the deployment picks one via OFFER_FANOUT_STRATEGY.
const (
	FanoutTopic = "topic" // publish to the offers topic, one broadcast inbox record
	FanoutInbox = "inbox" // write one inbox record per user account
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins            []string `mapstructure:"ALLOWED_ORIGINS"`
	HTTPServerAddress         string   `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisServerAddress        string   `mapstructure:"REDIS_SERVER_ADDRESS"`
	FirebaseCredentialsFile   string   `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	AdminEmail                string   `mapstructure:"ADMIN_EMAIL"`
	OffersTopic               string   `mapstructure:"OFFERS_TOPIC"`
	OfferFanoutStrategy       string   `mapstructure:"OFFER_FANOUT_STRATEGY"`
	NotificationRetentionDays int      `mapstructure:"NOTIFICATION_RETENTION_DAYS"`
	GmailSMTPUsername         string   `mapstructure:"GMAIL_SMTP_USERNAME"`
	GmailSMTPPassword         string   `mapstructure:"GMAIL_SMTP_PASSWORD"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("OFFERS_TOPIC", "offers")
	viper.SetDefault("OFFER_FANOUT_STRATEGY", FanoutTopic)
	viper.SetDefault("NOTIFICATION_RETENTION_DAYS", 30)

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.FirebaseCredentialsFile == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_FILE is required")
	}
	if config.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is required")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}
	if config.OfferFanoutStrategy != FanoutTopic && config.OfferFanoutStrategy != FanoutInbox {
		return fmt.Errorf("OFFER_FANOUT_STRATEGY must be %q or %q", FanoutTopic, FanoutInbox)
	}

	return nil
}

// MailerEnabled reports whether SMTP credentials were provided. The admin
// escalation email copy is skipped entirely when they are absent.
func (c Config) MailerEnabled() bool {
	return c.GmailSMTPUsername != "" && c.GmailSMTPPassword != ""
}
