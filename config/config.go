package config

import (
	"os"
	"path/filepath"
)

// Config carries everything the CLI needs to talk to the backend.
type Config struct {
	ServerUrl string
	TokenFile string
	Debug     bool
}

// DefaultTokenFile is where the session token lives unless overridden.
func DefaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".areactl/token.json"
	}
	return filepath.Join(home, ".areactl", "token.json")
}
