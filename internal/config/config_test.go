package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresMongoURIAndSecret(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	_, err = Load()
	assert.Error(t, err, "JWT_SECRET still missing")

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("API_PORT", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "medsupply", cfg.Mongo.Database)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("API_PORT", "9090")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, int64(1<<20), cfg.Upload.MaxBytes)
}
