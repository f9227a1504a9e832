package configs

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type ENV struct {
	Port       string
	SessionKey string
	AppEnv     string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	env := ENV{
		Port:       os.Getenv("APP_PORT"),
		SessionKey: os.Getenv("SESSION_KEY"),
		AppEnv:     os.Getenv("APP_ENV"),
	}
	if env.Port == "" {
		env.Port = ":8080"
	}
	return env
}
