package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from the ENV variable
func GetEnvironment() Environment {
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	case "development":
		return Development
	default:
		return Production
	}
}

// loadDotenv loads environment variables from a dotenv file. Tests read
// .env.test so a local .env never leaks into test runs. A missing file is
// not an error; the process environment simply wins.
func loadDotenv() {
	if GetEnvironment() == Test {
		_ = godotenv.Load(".env.test")
		return
	}
	_ = godotenv.Load()
}

// IsTest returns true if the current environment is test
func IsTest() bool {
	return GetEnvironment() == Test
}
