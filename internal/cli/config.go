package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luban-cli/luban/internal/config"
	"github.com/luban-cli/luban/internal/pkgmanager"
)

var knownConfigKeys = []string{config.KeyPackageManager, config.KeyRegistry}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write luban configuration stored at ~/.luban/config.yaml.

Keys:
  package_manager   npm, yarn or pnpm (default npm)
  registry          npm registry used for installs and version lookups`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfig(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(knownConfigKeys, args[0]) {
			return fmt.Errorf("unknown config key %q: use one of %s", args[0], strings.Join(knownConfigKeys, ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

func validateConfig(key, value string) error {
	switch key {
	case config.KeyPackageManager:
		if !slices.Contains(pkgmanager.Supported, value) {
			return fmt.Errorf("unsupported package manager %q: use one of %s", value, strings.Join(pkgmanager.Supported, ", "))
		}
	case config.KeyRegistry:
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return fmt.Errorf("registry must be an http(s) URL, got %q", value)
		}
	default:
		return fmt.Errorf("unknown config key %q: use one of %s", key, strings.Join(knownConfigKeys, ", "))
	}
	return nil
}
