package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultPort     = "8000"
	defaultMongoURI = "mongodb://localhost:27017"
	defaultDatabase = "proshop"
	defaultLogLevel = "info"
)

// Config holds the server configuration, read from the environment
type Config struct {
	Port             string
	MongoURI         string
	Database         string
	JWTSecret        string
	LogLevel         string
	PostmarkAPIToken string
	EmailSender      string
}

// New loads a .env file if present and reads the configuration from
// environment variables, falling back to defaults.
func New() *Config {
	// a missing .env file is fine, plain environment variables still apply
	_ = godotenv.Load()

	cfg := &Config{
		Port:             defaultPort,
		MongoURI:         defaultMongoURI,
		Database:         defaultDatabase,
		LogLevel:         defaultLogLevel,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		PostmarkAPIToken: os.Getenv("POSTMARK_API_TOKEN"),
		EmailSender:      os.Getenv("EMAIL_SENDER"),
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.MongoURI = uri
	}
	if db := os.Getenv("MONGO_DATABASE"); db != "" {
		cfg.Database = db
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}

	return cfg
}
