package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

// dotEnvPath returns the .env file location, overridable with DOTENV.
func dotEnvPath() string {
	if path := os.Getenv("DOTENV"); path != "" {
		return path
	}
	return defaultDotEnvPath
}

// loadDotEnv copies variables from the .env file at path into the process
// environment. Variables that are already set keep their value, and a missing
// file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}
