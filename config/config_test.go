package config_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"go-clinic-management/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	c := qt.New(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := config.LoadConfig()
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.App.Port, qt.Equals, "5000")
	c.Assert(cfg.DB.Driver, qt.Equals, config.DriverPostgres)
	c.Assert(cfg.DB.Path, qt.Equals, "sante_ci.db")
	c.Assert(cfg.Session.Secret, qt.Equals, "s3cret")
	c.Assert(cfg.Session.TTL, qt.Equals, time.Duration(0))
	c.Assert(cfg.Session.CookieName, qt.Equals, "session")
	c.Assert(cfg.Session.LoginRateLimit, qt.Equals, float64(0))
	c.Assert(cfg.Session.LoginRateBurst, qt.Equals, 5)
	c.Assert(cfg.Admin, qt.Equals, config.AdminConfig{Username: "admin", Password: "sante123"})
}

func TestLoadConfigFromEnv(t *testing.T) {
	c := qt.New(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("DB_PATH", "/tmp/clinic.db")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("LOGIN_RATE_LIMIT", "0.5")
	t.Setenv("LOGIN_RATE_BURST", "3")

	cfg, err := config.LoadConfig()
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.App.Port, qt.Equals, "8080")
	c.Assert(cfg.DB.Driver, qt.Equals, config.DriverSQLite)
	c.Assert(cfg.DB.Path, qt.Equals, "/tmp/clinic.db")
	c.Assert(cfg.Redis.DB, qt.Equals, 2)
	c.Assert(cfg.Session.TTL, qt.Equals, 30*time.Minute)
	c.Assert(cfg.Session.CookieSecure, qt.IsTrue)
	c.Assert(cfg.Session.LoginRateLimit, qt.Equals, 0.5)
	c.Assert(cfg.Session.LoginRateBurst, qt.Equals, 3)
}

func TestLoadConfigMalformedTTL(t *testing.T) {
	c := qt.New(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "soon")

	cfg, err := config.LoadConfig()
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Session.TTL, qt.Equals, time.Duration(0))
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	c := qt.New(t)
	t.Setenv("SESSION_SECRET", "")

	_, err := config.LoadConfig()
	c.Assert(err, qt.ErrorMatches, "SESSION_SECRET is required")
}
