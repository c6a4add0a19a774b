package config

import "os"

// Configuration values loaded from the environment (.env in development)
var (
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisHost string
	RedisPort string

	JWTSecret       string
	DefaultPassword string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string

	ClientUrl string
	APIPort   string
)

// LoadConfig reads all configuration values from the environment.
// Must be called after godotenv.Load() in main
func LoadConfig() {
	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "")
	PostgresDB = getEnv("POSTGRES_DB", "adt")

	RedisHost = getEnv("REDIS_HOST", "localhost")
	RedisPort = getEnv("REDIS_PORT", "6379")

	JWTSecret = getEnv("JWT_SECRET", "")
	DefaultPassword = getEnv("DEFAULT_PASSWORD", "")

	MailHost = getEnv("MAIL_HOST", "")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = getEnv("MAIL_USERNAME", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")

	ClientUrl = getEnv("CLIENT_URL", "http://localhost:3000")
	APIPort = getEnv("API_PORT", "8080")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
