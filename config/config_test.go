package config_test

import (
	"testing"

	"realestate-form-intake/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *config.Config {
	return &config.Config{
		RequestTimeoutSeconds: 15,
		RecordStoreDriver:     config.StoreDriverPostgres,
		RecordCollection:      "contact_forms",
		DBUrl:                 "postgres://localhost/forms",
		MailDriver:            config.MailDriverSMTP,
		SMTPHost:              "smtp.example.com",
		SMTPFromEmail:         "noreply@example.com",
		SMTPFromName:          "Listing Inquiries",
		ContactEmailTo:        "agent@example.com",
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RECORD_STORE_DRIVER", "Redis")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, config.StoreDriverRedis, cfg.RecordStoreDriver)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 15, cfg.RequestTimeoutSeconds, "invalid ints fall back to the default")
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, "contact_forms", cfg.RecordCollection)
}

func TestConfigValidate(t *testing.T) {
	t.Run("Should accept a complete postgres + smtp config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("Should require driver specific settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.RecordStoreDriver = config.StoreDriverS3
		cfg.MailDriver = config.MailDriverResend

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "S3_BUCKET")
		assert.Contains(t, err.Error(), "RESEND_API_KEY")
	})

	t.Run("Should reject unknown drivers and bad addresses together", func(t *testing.T) {
		cfg := validConfig()
		cfg.RecordStoreDriver = "firestore"
		cfg.ContactEmailTo = "agent"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown RECORD_STORE_DRIVER "firestore"`)
		assert.Contains(t, err.Error(), "CONTACT_EMAIL_TO")
	})
}

func TestMailFrom(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, `"Listing Inquiries" <noreply@example.com>`, cfg.MailFrom())
}
