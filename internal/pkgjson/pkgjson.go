// Package pkgjson builds, merges and serializes the project's package.json.
package pkgjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/luban-cli/luban/internal/preset"
)

// ConfigKey is the package.json field the adapted preset is stored under.
const ConfigKey = "__luban_config__"

// DefaultDescription is the description of a freshly created project.
const DefaultDescription = "A react application"

// keyOrder is the order of well-known top-level fields; other fields follow
// in lexical order.
var keyOrder = []string{
	"name",
	"version",
	"private",
	"description",
	"author",
	"scripts",
	"main",
	"module",
	"files",
	"dependencies",
	"devDependencies",
	"peerDependencies",
	ConfigKey,
	"eslintConfig",
	"prettier",
	"postcss",
	"browserslist",
	"jest",
}

var officialPlugin = regexp.MustCompile(`^@luban-cli/(cli-plugin-.+)$`)

// Package is a package.json document.
type Package map[string]any

// New returns the initial manifest for a project named name.
func New(name string, adapted *preset.Preset) Package {
	return Package{
		"name":            name,
		"description":     DefaultDescription,
		"version":         "0.1.0",
		"private":         true,
		"devDependencies": map[string]any{},
		ConfigKey:         adapted,
	}
}

// DependencyOptions controls how plugin devDependencies are pinned.
type DependencyOptions struct {
	// LocalPlugins points official plugins at sibling checkouts with file: specs.
	LocalPlugins bool
	// WorkDir is the directory local plugin paths are resolved from.
	WorkDir string
	// LatestMinor is the "major.minor.0" version plugins are pinned to with "~".
	LatestMinor string
}

// AddPluginDependencies adds every plugin id as a devDependency. Plugins
// without a local checkout are pinned to the latest minor even in local mode.
func (p Package) AddPluginDependencies(ids []string, opts DependencyOptions) {
	deps := p.section("devDependencies")
	for _, id := range ids {
		if opts.LocalPlugins {
			if path := LocalPluginPath(id, opts.WorkDir); path != "" {
				deps[id] = "file:" + path
				continue
			}
		}
		deps[id] = "~" + opts.LatestMinor
	}
}

// LocalPluginPath returns where an official plugin lives in a monorepo
// checkout, relative to workDir. Non-official ids yield "".
func LocalPluginPath(id, workDir string) string {
	m := officialPlugin.FindStringSubmatch(id)
	if m == nil {
		return ""
	}
	return filepath.Join(workDir, "..", "..", m[1])
}

// Scripts returns the scripts section as strings.
func (p Package) Scripts() map[string]string {
	out := map[string]string{}
	if m, ok := toMap(p["scripts"]); ok {
		for k, v := range m {
			if s, ok := v.(string); ok {
				out[k] = s
			}
		}
	}
	return out
}

// Name returns the package name.
func (p Package) Name() string {
	s, _ := p["name"].(string)
	return s
}

// Description returns the package description.
func (p Package) Description() string {
	s, _ := p["description"].(string)
	return s
}

// Dependency returns the version range of dep from dependencies or devDependencies.
func (p Package) Dependency(dep string) (string, bool) {
	for _, section := range []string{"dependencies", "devDependencies"} {
		if m, ok := toMap(p[section]); ok {
			if v, ok := m[dep].(string); ok {
				return v, true
			}
		}
	}
	return "", false
}

// section returns the object at key, creating it if needed.
func (p Package) section(key string) map[string]any {
	if m, ok := toMap(p[key]); ok {
		p[key] = m
		return m
	}
	m := map[string]any{}
	p[key] = m
	return m
}

// Marshal serializes p as two-space indented JSON with well-known fields first.
func Marshal(p Package) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")

	keys := orderedKeys(p)
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")

		name, err := encode(k, "")
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteString(": ")

		value, err := encode(p[k], "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", k, err)
		}
		buf.Write(value)
	}
	if len(keys) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// Parse decodes package.json bytes.
func Parse(data []byte) (Package, error) {
	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return p, nil
}

func orderedKeys(p Package) []string {
	known := make(map[string]bool, len(keyOrder))
	var keys []string
	for _, k := range keyOrder {
		known[k] = true
		if _, ok := p[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range p {
		if !known[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// encode marshals v without HTML escaping, indenting nested lines by prefix.
func encode(v any, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
