package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "emporium-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "emporium.db", cfg.Database.Path)
	assert.Equal(t, "session.json", cfg.Session.Path)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestApplyDefaultsPreservesExisting(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Port: "9090"},
		Log: LogConfig{Level: "debug"},
	}
	applyDefaults(cfg)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	t.Run("development accepts default secret", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		assert.NoError(t, cfg.validate())
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := &Config{App: AppConfig{Env: "production"}}
		applyDefaults(cfg)
		assert.Error(t, cfg.validate())
	})

	t.Run("production rejects short secret", func(t *testing.T) {
		cfg := &Config{
			App: AppConfig{Env: "production"},
			JWT: JWTConfig{Secret: "short"},
		}
		applyDefaults(cfg)
		assert.Error(t, cfg.validate())
	})

	t.Run("production rejects wildcard cors", func(t *testing.T) {
		cfg := &Config{
			App:  AppConfig{Env: "production"},
			JWT:  JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
			HTTP: HTTPConfig{CORSAllowOrigins: []string{"*"}},
		}
		applyDefaults(cfg)
		assert.Error(t, cfg.validate())
	})

	t.Run("production accepts strong secret", func(t *testing.T) {
		cfg := &Config{
			App: AppConfig{Env: "production"},
			JWT: JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
		}
		applyDefaults(cfg)
		assert.NoError(t, cfg.validate())
	})

	t.Run("negative expiration rejected", func(t *testing.T) {
		cfg := &Config{JWT: JWTConfig{Expiration: -time.Hour}}
		applyDefaults(cfg)
		assert.Error(t, cfg.validate())
	})
}
