package config

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Environment keys read at startup. Flags override them.
const (
	EnvConfigPath = "MUSCLE_SURVIVORS_CONFIG"
	EnvSensor     = "MUSCLE_SURVIVORS_SENSOR"
	EnvCamera     = "MUSCLE_SURVIVORS_CAMERA"
	EnvModel      = "MUSCLE_SURVIVORS_MODEL"
	EnvPlayer     = "MUSCLE_SURVIVORS_PLAYER"
)

// LoadEnv reads a .env file if one exists.
func LoadEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		log.Printf("Warning: Could not load environment file: %v", err)
		return
	}
	log.Println("Loaded environment variables from .env")
}

// EnvOr returns the value of key, or def when unset or empty.
func EnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
