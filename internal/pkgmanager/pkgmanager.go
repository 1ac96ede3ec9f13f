// Package pkgmanager wraps dependency installation for npm, yarn and pnpm.
package pkgmanager

import (
	"context"
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/luban-cli/luban/internal/logger"
	"github.com/luban-cli/luban/internal/runner"
)

// Supported package managers.
const (
	NPM  = "npm"
	Yarn = "yarn"
	PNPM = "pnpm"
)

// Supported lists the package managers that can install a project.
var Supported = []string{NPM, Yarn, PNPM}

// PackageManager installs dependencies in a project directory.
type PackageManager struct {
	context  string
	bin      string
	registry string
	cmd      runner.Commander
}

// Option configures a PackageManager.
type Option func(*PackageManager)

// WithRegistry installs from registry instead of the manager's default.
func WithRegistry(registry string) Option {
	return func(pm *PackageManager) {
		pm.registry = registry
	}
}

// WithCommander runs the package manager through cmd (useful for testing).
func WithCommander(cmd runner.Commander) Option {
	return func(pm *PackageManager) {
		pm.cmd = cmd
	}
}

// New returns a PackageManager that runs bin in dir. An empty bin means npm.
func New(dir, bin string, opts ...Option) (*PackageManager, error) {
	if bin == "" {
		bin = NPM
	}
	if !slices.Contains(Supported, bin) {
		return nil, fmt.Errorf("unsupported package manager %q: use one of %s", bin, strings.Join(Supported, ", "))
	}

	pm := &PackageManager{
		context: dir,
		bin:     bin,
		cmd:     runner.New(dir),
	}
	for _, opt := range opts {
		opt(pm)
	}
	return pm, nil
}

// Bin returns the package manager binary name.
func (pm *PackageManager) Bin() string {
	return pm.bin
}

// Available reports whether the package manager binary is on PATH.
func Available(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}

// InstallArgs returns the arguments passed to the binary for an install.
func (pm *PackageManager) InstallArgs() []string {
	var args []string
	switch pm.bin {
	case Yarn:
		args = []string{"install"}
	default:
		args = []string{"install", "--loglevel", "error"}
	}
	if pm.registry != "" {
		args = append(args, "--registry", pm.registry)
	}
	return args
}

// Install installs the dependencies declared in the project's package.json.
func (pm *PackageManager) Install(ctx context.Context) error {
	args := pm.InstallArgs()
	logger.Debugf("running %s %s in %s", pm.bin, strings.Join(args, " "), pm.context)
	if _, err := pm.cmd.Run(ctx, pm.bin, args...); err != nil {
		return fmt.Errorf("%s install: %w", pm.bin, err)
	}
	return nil
}

// ScriptCommand returns the command line a user types to run a package.json script.
func ScriptCommand(bin, script string) string {
	switch bin {
	case Yarn:
		return "yarn " + script
	case PNPM:
		return "pnpm run " + script
	default:
		if script == "start" || script == "test" {
			return "npm " + script
		}
		return "npm run " + script
	}
}

// InstallCommand returns the command line a user types to install dependencies.
func InstallCommand(bin string) string {
	if bin == "" {
		bin = NPM
	}
	return bin + " install"
}
