package commands

import (
	"os"
	"path/filepath"

	"github.com/hibi-cli/hibi/internal/core/config"
	"github.com/hibi-cli/hibi/internal/hibi"
)

// Flags holds global CLI flags and the objects wired up in the Before
// hook, shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Service is the task service all commands operate on
	Service *hibi.Service
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "hibi", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "hibi")
}

// StatePath returns the path of the state blob inside the data directory.
func StatePath(dataDir string) string {
	return filepath.Join(dataDir, "state.json")
}
