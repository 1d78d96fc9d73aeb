package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	Upload UploadConfig
	CORS   CORSConfig
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port string
}

// MongoConfig holds the MongoDB configuration.
type MongoConfig struct {
	URI      string
	Database string
}

// AuthConfig holds the authentication configuration.
type AuthConfig struct {
	JWTSecret string
}

// UploadConfig holds the file upload configuration.
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// CORSConfig holds the allowed origin for browser clients.
type CORSConfig struct {
	Origin string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("API_PORT", "8080"),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGO_URI"),
			Database: getEnv("MONGO_DATABASE", "medsupply"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Upload: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", "uploads"),
			MaxBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 5<<20),
		},
		CORS: CORSConfig{
			Origin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
		},
	}

	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return value
	}
	return defaultValue
}
