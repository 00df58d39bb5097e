package config

import "os"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Port               string
	MongoURI           string
	MongoDB            string
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	ClientURL          string
	SystemUserEmail    string
}

// Load builds Config from environment with sensible defaults.
// MONGODB_URI and JWT_SECRET have no usable defaults and are validated
// at connection/signing time rather than here.
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		MongoURI:           os.Getenv("MONGODB_URI"),
		MongoDB:            getEnv("MONGODB_DB", "moviecatalog"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		ClientURL:          getEnv("CLIENT_URL", "http://localhost:3000"),
		SystemUserEmail:    getEnv("SYSTEM_USER_EMAIL", "system@movieapp.com"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
