package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JwtSecret         string
	Issuer            string
	ServerPort        string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "formbuilder")
	ServerPort = getEnv("SERVER_PORT", "8080")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "formbuilder")

	AdminEmail = getEnv("ADMIN_EMAIL", "admin@formbuilder.local")
	AdminPassword = getEnv("ADMIN_PASSWORD", "admin123")
	// Optional bcrypt hash; takes precedence over ADMIN_PASSWORD when set.
	AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
