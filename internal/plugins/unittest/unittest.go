// Package unittest is the built-in jest plugin.
package unittest

import (
	"embed"
	"fmt"

	"github.com/luban-cli/luban/internal/plugin"
	"github.com/luban-cli/luban/internal/preset"
)

// ID of the unit test plugin.
const ID = preset.UnitTestPlugin

// Test environments understood by jest.
const (
	EnvJSDOM = "jsdom"
	EnvNode  = "node"
)

//go:embed all:template
var templateFS embed.FS

type templateData struct {
	TS              bool
	TestEnvironment string
}

func init() {
	plugin.Register(ID, Generate)
}

// Generate adds jest, its configuration and a sample test.
func Generate(api plugin.API, opts preset.PluginOptions, _ preset.RootOptions) error {
	data := templateData{
		TS:              api.Preset().Language != preset.LanguageJS,
		TestEnvironment: EnvJSDOM,
	}
	if env, ok := opts["testEnvironment"].(string); ok && env != "" {
		data.TestEnvironment = env
	}

	dir := "template/js"
	if data.TS {
		dir = "template/ts"
	}
	if err := api.Render(templateFS, dir, data); err != nil {
		return fmt.Errorf("rendering %s: %w", dir, err)
	}

	devDeps := map[string]string{
		"jest":                   "^26.0.1",
		"babel-jest":             "^26.0.1",
		"@testing-library/react": "^10.2.1",
	}
	if data.TS {
		devDeps["@types/jest"] = "^25.2.3"
	}
	api.ExtendPackage(map[string]any{
		"scripts":         map[string]string{"test": "jest"},
		"devDependencies": devDeps,
	})

	api.ExitLog(fmt.Sprintf("unit tests run with jest in the %s environment", data.TestEnvironment), plugin.LevelInfo)
	return nil
}
