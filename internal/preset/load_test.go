package preset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_YAML(t *testing.T) {
	data := []byte(`
plugins:
  "@luban-cli/cli-plugin-unit-test":
    framework: jest
language: js
unitTest: true
`)
	p, err := Parse(data, "inline")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.Language != LanguageJS || !p.UnitTest || p.Stylelint {
		t.Errorf("unexpected preset fields: %+v", p)
	}
	if !p.HasPlugin(servicePlugin) {
		t.Error("service plugin should be added by normalization")
	}
	if got := p.Plugins["@luban-cli/cli-plugin-unit-test"]["framework"]; got != "jest" {
		t.Errorf("plugin option framework = %v", got)
	}
}

func TestParse_ReconcilesUnitTest(t *testing.T) {
	t.Run("flag adds plugin", func(t *testing.T) {
		p, err := Parse([]byte("plugins:\n  \"@luban-cli/cli-plugin-service\": {}\nunitTest: true\n"), "inline")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if !p.HasPlugin(UnitTestPlugin) {
			t.Errorf("unitTest: true should add %s, plugins = %v", UnitTestPlugin, p.Plugins)
		}
	})

	t.Run("plugin sets flag", func(t *testing.T) {
		p, err := Parse([]byte("plugins:\n  \"@luban-cli/cli-plugin-unit-test\": {}\nunitTest: false\n"), "inline")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if !p.UnitTest {
			t.Error("UnitTest should be true when the unit test plugin is listed")
		}
	})

	t.Run("neither", func(t *testing.T) {
		p, err := Parse([]byte("plugins: {}\n"), "inline")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if p.UnitTest || p.HasPlugin(UnitTestPlugin) {
			t.Errorf("unexpected unit test setup: %+v", p)
		}
	})
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"plugins": {"@luban-cli/cli-plugin-service": null}, "stylelint": true}`)
	p, err := Parse(data, "inline.json")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !p.Stylelint {
		t.Error("Stylelint should be true")
	}
	if p.Language != LanguageTS {
		t.Errorf("Language should default to ts, got %q", p.Language)
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
	}{
		{"missing plugins", `language: ts`, ""},
		{"bad language", "plugins: {}\nlanguage: coffee", "/language"},
		{"wrong type", "plugins: {}\nstylelint: \"yes\"", "/stylelint"},
		{"unknown key", "plugins: {}\nframework: vue", ""},
		{"plugin options not an object", "plugins:\n  foo: 3", "/plugins/foo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "inline")
			if err == nil {
				t.Fatal("expected error")
			}
			var invalid *InvalidError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidError, got %T: %v", err, err)
			}
			if len(invalid.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			if tt.path != "" {
				found := false
				for _, issue := range invalid.Issues {
					if issue.Path == tt.path {
						found = true
					}
				}
				if !found {
					t.Errorf("no issue at %s: %v", tt.path, invalid.Issues)
				}
			}
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("plugins: [unclosed"), "inline")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var invalid *InvalidError
	if errors.As(err, &invalid) {
		t.Error("malformed input should not be reported as a schema violation")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(path, []byte("plugins: {}\nlanguage: js\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Language != LanguageJS {
		t.Errorf("Language = %q", p.Language)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading preset") {
		t.Errorf("expected read error, got %v", err)
	}
}
