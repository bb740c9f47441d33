package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env into the process environment. Missing file is fine;
// production supplies real environment variables.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
}
