package config

import (
	"fmt"
	"os"
)

type Config struct {
	// Server
	Port        string
	Environment string
	BaseURL     string

	// Database; when empty the in-memory repository is used.
	DatabaseURL string

	// Auth
	JWTSecret string

	// File storage
	StorageBackend string // "local" or "supabase"
	UploadDir      string

	// Supabase storage (only when StorageBackend is "supabase")
	SupabaseURL           string
	SupabaseKey           string
	SupabaseStorageBucket string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),

		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseKey:           getEnv("SUPABASE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "uploaded-images"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.StorageBackend != "local" && c.StorageBackend != "supabase" {
		return fmt.Errorf("STORAGE_BACKEND must be 'local' or 'supabase', got %q", c.StorageBackend)
	}
	if c.StorageBackend == "supabase" {
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required when STORAGE_BACKEND is 'supabase'")
		}
		if c.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_KEY is required when STORAGE_BACKEND is 'supabase'")
		}
	}
	if c.Environment == "production" && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
