package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/luban-cli/luban/internal/branding"
	"github.com/luban-cli/luban/internal/config"
	"github.com/luban-cli/luban/internal/pkgmanager"
	"github.com/luban-cli/luban/internal/plugin"
	"github.com/luban-cli/luban/internal/preset"
	"github.com/luban-cli/luban/internal/versions"
)

var checkPreset string

func init() {
	doctorCmd.Flags().StringVar(&checkPreset, "check-preset", "", "Validate a preset file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools luban needs",
	Long:  `Report which of node, git and the supported package managers are available, and optionally validate a preset file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkPreset != "" {
			return runPresetCheck(out, checkPreset)
		}
		runToolCheck(out)
		runPluginCheck(out)
		runReleaseCheck(cmd.Context(), out, buildVersion, config.Registry())
		return nil
	},
}

func runToolCheck(w io.Writer) {
	fmt.Fprintln(w, "Tool check:")
	checkBinary(w, "node")
	checkBinary(w, "git")
	for _, pm := range pkgmanager.Supported {
		checkBinary(w, pm)
	}
	fmt.Fprintf(w, "  configured package manager: %s\n", config.PackageManager())
	fmt.Fprintf(w, "  configured registry: %s\n", config.Registry())
}

func runPluginCheck(w io.Writer) {
	fmt.Fprintln(w, "Built-in generators:")
	for _, id := range plugin.Registered() {
		fmt.Fprintf(w, "  %s\n", id)
	}
}

// runReleaseCheck compares the latest release of each built-in plugin with
// the running CLI.
func runReleaseCheck(ctx context.Context, w io.Writer, current, registry string) {
	fmt.Fprintln(w, "Plugin releases:")
	for _, id := range plugin.Registered() {
		latest, err := versions.New(current, versions.WithRegistry(registry), versions.WithPackage(id)).Latest(ctx)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s: %v\n", id, err)
			continue
		}
		if cmp, err := versions.CompareVersions(current, latest); err == nil && cmp < 0 {
			fmt.Fprintf(w, "  [NOTE] %s %s is newer than %s %s\n", id, latest, branding.CLIName(), current)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s %s\n", id, latest)
	}
}

func checkBinary(w io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}

func runPresetCheck(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading preset: %w", err)
	}

	result, err := preset.Validate(data)
	if err != nil {
		return fmt.Errorf("validating preset: %w", err)
	}
	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] %s is valid\n", path)
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("preset validation failed")
}
