package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tinkerbridge/tinkerbridge/cmd/tinkerbridge/internal"
	"github.com/tinkerbridge/tinkerbridge/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Init creates the tinkerbridge home directory and writes a config file
populated with the default options, ready to edit. It refuses to overwrite
an existing file unless --force is given.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath(config.DefaultHomeDir())
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return internal.NewCLIError(internal.ExitConfigError,
			fmt.Sprintf("config file already exists at %s (use --force to overwrite)", path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to render default config", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to write config file", err)
	}

	cmd.Println("Wrote default configuration to", path)
	return nil
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
