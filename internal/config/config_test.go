package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Env:          "development",
		DBType:       "file",
		FileProfiles: "data/profiles.json",
		FileVitals:   "data/vitals.json",
		FileAppts:    "data/appointments.json",
		ModelMode:    "local",
		ModelFile:    "data/model.json",
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	c := validConfig()
	c.DBType = "postgres"
	assert.Error(t, c.Validate(), "postgres without DSN")
	c.DBDSN = "postgres://localhost/health"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.ModelMode = "remote"
	assert.Error(t, c.Validate(), "remote model without URL")
	c.ModelURL = "http://localhost:9000"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.Env = "qa"
	assert.Error(t, c.Validate(), "unknown environment")

	c = validConfig()
	c.Env = "production"
	assert.Error(t, c.Validate(), "production without JWT secret")
	c.JWTSecret = "secret"
	assert.NoError(t, c.Validate())
}
