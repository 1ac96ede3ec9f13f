package service

import (
	"embed"
	"fmt"

	"github.com/luban-cli/luban/internal/branding"
	"github.com/luban-cli/luban/internal/plugin"
	"github.com/luban-cli/luban/internal/preset"
)

//go:embed all:template
var templateFS embed.FS

// Binary is the executable the generated scripts call.
const Binary = "luban-cli-service"

// TemplateData is available to every service template.
type TemplateData struct {
	Name      string
	TS        bool
	Stylelint bool
	UnitTest  bool
}

func init() {
	plugin.Register(branding.ServicePlugin(), Generate)
}

// Generate renders the application skeleton for root.Preset.
func Generate(api plugin.API, _ preset.PluginOptions, root preset.RootOptions) error {
	p := root.Preset
	if p == nil {
		p = api.Preset()
	}
	data := TemplateData{
		Name:      root.ProjectName,
		TS:        p.Language != preset.LanguageJS,
		Stylelint: p.Stylelint,
		UnitTest:  p.UnitTest,
	}

	lang := preset.LanguageTS
	if !data.TS {
		lang = preset.LanguageJS
	}
	for _, dir := range []string{"template/common", "template/" + lang} {
		if err := api.Render(templateFS, dir, data); err != nil {
			return fmt.Errorf("rendering %s: %w", dir, err)
		}
	}

	api.ExtendPackage(packageFields(data))
	return nil
}

func packageFields(data TemplateData) map[string]any {
	ext := ".jsx,.js"
	if data.TS {
		ext = ".tsx,.ts"
	}

	deps := map[string]string{
		"react":     "^16.13.1",
		"react-dom": "^16.13.1",
	}
	devDeps := map[string]string{
		"@babel/core":               "^7.10.2",
		"@babel/preset-env":         "^7.10.2",
		"@babel/preset-react":       "^7.10.1",
		"autoprefixer":              "^9.8.0",
		"eslint":                    "^7.2.0",
		"eslint-config-prettier":    "^6.11.0",
		"eslint-plugin-prettier":    "^3.1.4",
		"eslint-plugin-react":       "^7.20.0",
		"eslint-plugin-react-hooks": "^4.0.4",
		"prettier":                  "^2.0.5",
	}

	if data.TS {
		devDeps["typescript"] = "^3.9.5"
		devDeps["@babel/preset-typescript"] = "^7.10.1"
		devDeps["@types/react"] = "^16.9.36"
		devDeps["@types/react-dom"] = "^16.9.8"
		devDeps["@typescript-eslint/parser"] = "^3.2.0"
		devDeps["@typescript-eslint/eslint-plugin"] = "^3.2.0"
	}
	if data.Stylelint {
		devDeps["stylelint"] = "^13.6.0"
		devDeps["stylelint-config-standard"] = "^20.0.0"
	}

	return map[string]any{
		"scripts": map[string]string{
			"start":      Binary + " serve",
			"build":      Binary + " build",
			"eslint:fix": "eslint --config=.eslintrc --fix src/ --ext=" + ext,
		},
		"dependencies":    deps,
		"devDependencies": devDeps,
		"browserslist":    []string{"> 1%", "last 2 versions", "not ie <= 10"},
	}
}
