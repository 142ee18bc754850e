package config

import (
	"github.com/joho/godotenv"
)

// LoadEnv pulls in a local .env when one exists. Deployed environments
// set real variables, so a missing file is only worth a warning.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		Logger.Warn("No .env file found, using process environment:", err)
	}
}
