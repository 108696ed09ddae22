package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	SessionKey string
	CSRFKey    string
	AppEnv     string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = ":8000"
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       port,
		SessionKey: os.Getenv("SESSION_KEY"),
		CSRFKey:    os.Getenv("CSRF_KEY"),
		AppEnv:     os.Getenv("APP_ENV"),
	}
}

var LoadENV = LoadEnv()
