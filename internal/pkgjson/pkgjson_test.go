package pkgjson

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/luban-cli/luban/internal/preset"
)

func TestNew(t *testing.T) {
	adapted, _ := preset.Adapt(preset.Default(), "my-app")
	p := New("my-app", adapted)

	if p.Name() != "my-app" {
		t.Errorf("Name() = %q", p.Name())
	}
	if p.Description() != DefaultDescription {
		t.Errorf("Description() = %q", p.Description())
	}
	if p["version"] != "0.1.0" || p["private"] != true {
		t.Errorf("unexpected version/private: %v %v", p["version"], p["private"])
	}
	if p[ConfigKey] != adapted {
		t.Error("adapted preset should be stored under the config key")
	}
}

func TestAddPluginDependencies(t *testing.T) {
	ids := []string{"@luban-cli/cli-plugin-service", "@luban-cli/cli-plugin-unit-test", "some-community-plugin"}

	t.Run("registry", func(t *testing.T) {
		p := New("app", preset.New())
		p.AddPluginDependencies(ids, DependencyOptions{LatestMinor: "1.4.0"})
		for _, id := range ids {
			if got, _ := p.Dependency(id); got != "~1.4.0" {
				t.Errorf("%s = %q, want ~1.4.0", id, got)
			}
		}
	})

	t.Run("local", func(t *testing.T) {
		p := New("app", preset.New())
		workDir := filepath.Join("/repo", "packages", "playground")
		p.AddPluginDependencies(ids, DependencyOptions{LocalPlugins: true, WorkDir: workDir, LatestMinor: "1.4.0"})

		got, _ := p.Dependency("@luban-cli/cli-plugin-service")
		if want := "file:" + filepath.Join("/repo", "cli-plugin-service"); got != want {
			t.Errorf("service = %q, want %q", got, want)
		}
		if got, _ := p.Dependency("some-community-plugin"); got != "~1.4.0" {
			t.Errorf("community plugin = %q, want ~1.4.0", got)
		}
	})
}

func TestLocalPluginPath(t *testing.T) {
	if got := LocalPluginPath("@luban-cli/cli-plugin-foo", "/a/b/c"); got != filepath.Join("/a", "cli-plugin-foo") {
		t.Errorf("LocalPluginPath() = %q", got)
	}
	if got := LocalPluginPath("@luban-cli/cli-service", "/a/b/c"); got != "" {
		t.Errorf("non plugin package should have no local path, got %q", got)
	}
}

func TestMarshal_KeyOrder(t *testing.T) {
	p := Package{
		"zeta":            1,
		"devDependencies": map[string]any{"b": "1", "a": "2"},
		"scripts":         map[string]any{"start": "luban-service start"},
		"name":            "app",
		"alpha":           "<tag>",
		"version":         "0.1.0",
	}

	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	out := string(data)

	order := []string{`"name"`, `"version"`, `"scripts"`, `"devDependencies"`, `"alpha"`, `"zeta"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		if idx < 0 {
			t.Fatalf("missing %s in:\n%s", key, out)
		}
		if idx < last {
			t.Errorf("%s out of order in:\n%s", key, out)
		}
		last = idx
	}

	if !strings.Contains(out, "\"devDependencies\": {\n    \"a\": \"2\",\n    \"b\": \"1\"\n  }") {
		t.Errorf("nested object not indented as expected:\n%s", out)
	}
	if !strings.Contains(out, `"<tag>"`) {
		t.Errorf("HTML characters should not be escaped:\n%s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("output should end with a newline")
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Name() != "app" {
		t.Errorf("round trip name = %q", parsed.Name())
	}
}

func TestMarshal_Empty(t *testing.T) {
	data, err := Marshal(Package{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}\n" {
		t.Errorf("Marshal(empty) = %q", data)
	}
}

func TestMarshal_PresetConfig(t *testing.T) {
	adapted, _ := preset.Adapt(preset.Default(), "app")
	data, err := Marshal(New("app", adapted))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"__luban_config__"`, `"projectName": "app"`, `"language": "ts"`, `"unitTest": false`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
}
