// Package promptmodules holds the built-in prompt modules. Each module
// injects its questions into a prompt.ModuleAPI and folds the answers into
// the preset.
package promptmodules

import (
	"github.com/luban-cli/luban/internal/plugins/unittest"
	"github.com/luban-cli/luban/internal/preset"
	"github.com/luban-cli/luban/internal/prompt"
)

// UnitTestPlugin is the plugin added when unit testing is selected.
const UnitTestPlugin = unittest.ID

// Feature values used in the features checkbox.
const (
	FeatureStylelint = "stylelint"
	FeatureUnitTest  = "unitTest"
)

// All returns the built-in prompt modules in the order their questions appear.
func All() []prompt.Module {
	return []prompt.Module{Language, Stylelint, UnitTest}
}

// Language asks for TypeScript or JavaScript.
func Language(api *prompt.ModuleAPI) {
	api.InjectPrompt(&prompt.Question{
		Type:    prompt.List,
		Name:    "language",
		Message: "Pick a language:",
		Choices: []prompt.Choice{
			{Name: "TypeScript", Value: preset.LanguageTS},
			{Name: "JavaScript", Value: preset.LanguageJS},
		},
		Default: preset.LanguageTS,
	})

	api.OnPromptComplete(func(answers prompt.Answers, p *preset.Preset) {
		p.Language = answers.String("language")
		if p.Language == "" {
			p.Language = preset.LanguageTS
		}
	})
}

// Stylelint offers style linting as a feature.
func Stylelint(api *prompt.ModuleAPI) {
	api.InjectFeature(prompt.Choice{
		Name:        "Stylelint",
		Value:       FeatureStylelint,
		Description: "Lint stylesheets with stylelint",
		Checked:     true,
	})

	api.OnPromptComplete(func(answers prompt.Answers, p *preset.Preset) {
		p.Stylelint = answers.Contains(prompt.FeaturesQuestion, FeatureStylelint)
	})
}

// UnitTest offers jest-based unit testing and asks for the test environment.
func UnitTest(api *prompt.ModuleAPI) {
	api.InjectFeature(prompt.Choice{
		Name:        "Unit Testing",
		Value:       FeatureUnitTest,
		Description: "Add jest and a sample test",
	})

	api.InjectPrompt(&prompt.Question{
		Type:    prompt.List,
		Name:    "testEnvironment",
		Message: "Pick a unit test environment:",
		Choices: []prompt.Choice{
			{Name: "jsdom", Value: unittest.EnvJSDOM, Description: "browser-like DOM"},
			{Name: "node", Value: unittest.EnvNode},
		},
		Default: unittest.EnvJSDOM,
		When:    prompt.FeatureSelected(FeatureUnitTest),
	})

	api.OnPromptComplete(func(answers prompt.Answers, p *preset.Preset) {
		if !answers.Contains(prompt.FeaturesQuestion, FeatureUnitTest) {
			return
		}
		p.UnitTest = true
		p.Plugins[UnitTestPlugin] = preset.PluginOptions{
			"testEnvironment": answers.String("testEnvironment"),
		}
	})
}
