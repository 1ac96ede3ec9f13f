package creator

import (
	"context"

	"github.com/luban-cli/luban/internal/preset"
	"github.com/luban-cli/luban/internal/runner"
)

const (
	eslintBin   = "./node_modules/eslint/bin/eslint.js"
	prettierBin = "./node_modules/prettier/bin-prettier.js"
)

// fixLintErrors runs eslint --fix and prettier over the generated sources.
func (c *Creator) fixLintErrors(ctx context.Context, p *preset.Preset) error {
	lintArgs := []string{"--config=.eslintrc", "--fix", "src/"}
	formatArgs := []string{"--write"}
	if p.Language == preset.LanguageJS {
		lintArgs = append(lintArgs, "--ext=.jsx,.js")
		formatArgs = append(formatArgs, "src/**/*.{js,jsx}")
	} else {
		lintArgs = append(lintArgs, "--ext=.tsx,.ts")
		formatArgs = append(formatArgs, "src/**/*.{ts,tsx}")
	}

	if _, err := runner.NodeScript(ctx, c.quiet, c.fs, c.Context, eslintBin, lintArgs...); err != nil {
		return err
	}
	_, err := runner.NodeScript(ctx, c.quiet, c.fs, c.Context, prettierBin, formatArgs...)
	return err
}

// formatConfigFiles runs prettier over the generated configuration files.
func (c *Creator) formatConfigFiles(ctx context.Context, p *preset.Preset) error {
	jsFiles := []string{"./babel.config.js"}
	jsonFiles := []string{"./.eslintrc", "./.postcssrc"}
	if p.Stylelint {
		jsonFiles = append(jsonFiles, "./.stylelintrc")
	}
	if p.Language != preset.LanguageJS {
		jsonFiles = append(jsonFiles, "./tsconfig.json")
	}
	if p.UnitTest {
		jsFiles = append(jsFiles, "./jest.config.js")
	}

	if _, err := runner.NodeScript(ctx, c.quiet, c.fs, c.Context, prettierBin, append([]string{"--write"}, jsFiles...)...); err != nil {
		return err
	}
	_, err := runner.NodeScript(ctx, c.quiet, c.fs, c.Context, prettierBin, append([]string{"--parser=json", "--write"}, jsonFiles...)...)
	return err
}
