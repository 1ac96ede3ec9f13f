// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary with //go:embed. Hard defaults
// apply when a key is missing from the file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	NpmScope      string `yaml:"npm_scope"`
	ServicePlugin string `yaml:"service_plugin"`
	DocsURL       string `yaml:"docs_url"`
	RegistryURL   string `yaml:"registry_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "luban",
			DisplayName:   "Luban",
			Description:   "Scaffold React applications from plugin presets",
			HomeDir:       ".luban",
			EnvPrefix:     "LUBAN",
			GoModule:      "github.com/luban-cli/luban",
			NpmScope:      "@luban-cli",
			ServicePlugin: "@luban-cli/cli-plugin-service",
			DocsURL:       "https://luban.now.sh",
			RegistryURL:   "https://registry.npmjs.org",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "luban").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Luban").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".luban").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "LUBAN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// NpmScope returns the npm scope that official plugins are published under.
func NpmScope() string { load(); return defaults.NpmScope }

// ServicePlugin returns the id of the plugin every project is built on.
func ServicePlugin() string { load(); return defaults.ServicePlugin }

// DocsURL returns the documentation site printed after a project is created.
func DocsURL() string { load(); return defaults.DocsURL }

// RegistryURL returns the default npm registry used for version lookups.
func RegistryURL() string { load(); return defaults.RegistryURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("REGISTRY") → "LUBAN_REGISTRY".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
