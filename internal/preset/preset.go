package preset

import (
	"github.com/luban-cli/luban/internal/branding"
)

// Supported languages.
const (
	LanguageTS = "ts"
	LanguageJS = "js"
)

// UnitTestPlugin is the plugin that generates the jest setup.
const UnitTestPlugin = "@luban-cli/cli-plugin-unit-test"

// PluginOptions holds the options passed to a plugin's generator.
type PluginOptions map[string]any

// Preset is the resolved set of plugins and feature switches for a project.
type Preset struct {
	Plugins   map[string]PluginOptions `yaml:"plugins" json:"plugins"`
	Language  string                   `yaml:"language,omitempty" json:"language,omitempty"`
	Stylelint bool                     `yaml:"stylelint" json:"stylelint"`
	UnitTest  bool                     `yaml:"unitTest" json:"unitTest"`
}

// New returns the starting point for a manually resolved preset: only the
// service plugin, with no options.
func New() *Preset {
	return &Preset{
		Plugins: map[string]PluginOptions{
			branding.ServicePlugin(): {},
		},
	}
}

// Default returns the preset used when the user does not pick features.
func Default() *Preset {
	p := New()
	p.Language = LanguageTS
	p.Stylelint = true
	p.UnitTest = false
	return p
}

// RootOptions are handed to the service plugin in place of its own options.
type RootOptions struct {
	ProjectName string  `json:"projectName"`
	Preset      *Preset `json:"preset"`
}

// AsPluginOptions converts root options into the generic plugin option map.
func (r RootOptions) AsPluginOptions() PluginOptions {
	return PluginOptions{
		"projectName": r.ProjectName,
		"preset":      r.Preset,
	}
}

// Adapt deep-copies p and replaces the service plugin options with the root
// options for projectName. p itself is left untouched.
func Adapt(p *Preset, projectName string) (*Preset, RootOptions) {
	root := RootOptions{ProjectName: projectName, Preset: p}
	adapted := p.Clone()
	adapted.Plugins[branding.ServicePlugin()] = root.AsPluginOptions()
	return adapted, root
}

// HasPlugin reports whether id is part of the preset.
func (p *Preset) HasPlugin(id string) bool {
	_, ok := p.Plugins[id]
	return ok
}

// Normalize fills a missing plugin map, guarantees the service plugin,
// keeps UnitTest and the unit test plugin in agreement, and defaults the
// language.
func (p *Preset) Normalize() {
	if p.Plugins == nil {
		p.Plugins = map[string]PluginOptions{}
	}
	if _, ok := p.Plugins[branding.ServicePlugin()]; !ok {
		p.Plugins[branding.ServicePlugin()] = PluginOptions{}
	}
	if p.HasPlugin(UnitTestPlugin) {
		p.UnitTest = true
	} else if p.UnitTest {
		p.Plugins[UnitTestPlugin] = PluginOptions{}
	}
	if p.Language == "" {
		p.Language = LanguageTS
	}
}

// Clone returns a deep copy of the preset.
func (p *Preset) Clone() *Preset {
	if p == nil {
		return nil
	}
	c := &Preset{
		Language:  p.Language,
		Stylelint: p.Stylelint,
		UnitTest:  p.UnitTest,
	}
	if p.Plugins != nil {
		c.Plugins = make(map[string]PluginOptions, len(p.Plugins))
		for id, opts := range p.Plugins {
			c.Plugins[id] = opts.Clone()
		}
	}
	return c
}

// Clone returns a deep copy of the options.
func (o PluginOptions) Clone() PluginOptions {
	if o == nil {
		return nil
	}
	c := make(PluginOptions, len(o))
	for k, v := range o {
		c[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = cloneValue(e)
		}
		return m
	case PluginOptions:
		return val.Clone()
	case []any:
		a := make([]any, len(val))
		for i, e := range val {
			a[i] = cloneValue(e)
		}
		return a
	case []string:
		return append([]string(nil), val...)
	case *Preset:
		return val.Clone()
	default:
		return val
	}
}
