package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the configuration used when no file is present:
// 64-bit integers, double-precision floats, extensions preserved, text
// logging at info level.
func DefaultConfig() *Config {
	return &Config{
		Translate: TranslateConfig{
			IntWidth:   "int64",
			FloatWidth: "double",
			Extensions: "preserve",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultHomeDir returns the default tinkerbridge home directory,
// ~/.tinkerbridge, falling back to a temporary directory if the user home
// cannot be determined.
func DefaultHomeDir() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".tinkerbridge")
	}
	return filepath.Join(userHome, ".tinkerbridge")
}

// DefaultConfigPath returns the default config file path for a given home
// directory.
func DefaultConfigPath(homeDir string) string {
	return filepath.Join(homeDir, "config.yaml")
}
