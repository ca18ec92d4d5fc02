package config

import (
	"os"
)

type Config struct {
	ServerPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	UploadDir  string
	SMTPHost   string
	SMTPPort   string
	SMTPFrom   string
	SMTPPass   string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "cofound"),
		DBPassword: getEnv("DB_PASSWORD", "cofound_dev_password"),
		DBName:     getEnv("DB_NAME", "cofound"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
		SMTPHost:   getEnv("SMTP_HOST", ""),
		SMTPPort:   getEnv("SMTP_PORT", "587"),
		SMTPFrom:   getEnv("SMTP_FROM", ""),
		SMTPPass:   getEnv("SMTP_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
