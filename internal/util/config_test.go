package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validTestConfig() Config {
	return Config{
		FirebaseCredentialsFile: "service-account.json",
		AdminEmail:              "admin@mazra.market",
		RedisServerAddress:      "localhost:6379",
		OfferFanoutStrategy:     FanoutTopic,
	}
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, validateConfig(validTestConfig()))
}

func TestValidateConfigMissingRequired(t *testing.T) {
	config := validTestConfig()
	config.FirebaseCredentialsFile = ""
	require.Error(t, validateConfig(config))

	config = validTestConfig()
	config.AdminEmail = ""
	require.Error(t, validateConfig(config))

	config = validTestConfig()
	config.RedisServerAddress = ""
	require.Error(t, validateConfig(config))
}

func TestValidateConfigFanoutStrategy(t *testing.T) {
	config := validTestConfig()
	config.OfferFanoutStrategy = FanoutInbox
	require.NoError(t, validateConfig(config))

	config.OfferFanoutStrategy = "broadcast"
	require.Error(t, validateConfig(config))
}
