// Package readme renders the README.md of a generated project.
package readme

import (
	"fmt"
	"strings"

	"github.com/luban-cli/luban/internal/branding"
	"github.com/luban-cli/luban/internal/pkgjson"
	"github.com/luban-cli/luban/internal/pkgmanager"
	"github.com/luban-cli/luban/internal/preset"
)

var descriptions = map[string]string{
	"start":      "Compiles and hot-reloads for development",
	"build":      "Compiles and minifies for production",
	"eslint:fix": "Lints and fixes files",
	"test":       "Run your unit tests",
}

// Generate returns the README for pkg. Only scripts with a known
// description are documented.
func Generate(pkg pkgjson.Package, packageManager string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", pkg.Name())
	if desc := pkg.Description(); desc != "" {
		fmt.Fprintf(&b, "%s\n\n", desc)
	}

	b.WriteString("## Project setup\n")
	writeCommand(&b, pkgmanager.InstallCommand(packageManager))

	for _, script := range preset.SortKeys(pkg.Scripts(), "start", "build", "test", "eslint:fix") {
		desc, ok := descriptions[script]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n### %s\n", desc)
		writeCommand(&b, pkgmanager.ScriptCommand(packageManager, script))
	}

	b.WriteString("\n### Customize configuration\n")
	fmt.Fprintf(&b, "See [Configuration Reference](%s).\n", branding.DocsURL())
	return b.String()
}

func writeCommand(b *strings.Builder, cmd string) {
	b.WriteString("```\n")
	b.WriteString(cmd)
	b.WriteString("\n```\n")
}
