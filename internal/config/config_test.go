package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LUBAN_CONFIG_DIR", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDir_EnvOverride(t *testing.T) {
	dir := withTempConfigDir(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	withTempConfigDir(t)
	Load()

	if got := PackageManager(); got != "npm" {
		t.Errorf("PackageManager() = %q, want npm", got)
	}
	if got := Registry(); got != "https://registry.npmjs.org" {
		t.Errorf("Registry() = %q, want default registry", got)
	}
}

func TestSetAndReload(t *testing.T) {
	dir := withTempConfigDir(t)
	Load()

	if err := Set(KeyPackageManager, "yarn"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := PackageManager(); got != "yarn" {
		t.Errorf("PackageManager() after reload = %q, want yarn", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	withTempConfigDir(t)
	t.Setenv("LUBAN_REGISTRY", "https://registry.example.com")
	Load()

	if got := Registry(); got != "https://registry.example.com" {
		t.Errorf("Registry() = %q, want env value", got)
	}
}
