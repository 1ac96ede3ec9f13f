//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigDir string // LUBAN_CONFIG_DIR
	BinDir    string // fake npm/yarn/node, first on PATH
	WorkDir   string // where projects are created
	LogFile   string // every fake tool appends its command line here
}

const fakeInstall = `#!/bin/sh
echo "$(basename "$0") $*" >> "$LUBAN_TEST_LOG"
mkdir -p node_modules/eslint/bin node_modules/prettier
touch node_modules/eslint/bin/eslint.js node_modules/prettier/bin-prettier.js
`

const fakeNode = `#!/bin/sh
echo "node $*" >> "$LUBAN_TEST_LOG"
`

// setupTestEnv sandboxes the config directory and puts fake package managers
// and a fake node on PATH. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	env := &testEnv{
		ConfigDir: t.TempDir(),
		BinDir:    t.TempDir(),
		WorkDir:   t.TempDir(),
	}
	env.LogFile = filepath.Join(env.ConfigDir, "commands.log")

	for _, name := range []string{"npm", "yarn", "pnpm"} {
		writeFile(t, filepath.Join(env.BinDir, name), fakeInstall, 0755)
	}
	writeFile(t, filepath.Join(env.BinDir, "node"), fakeNode, 0755)

	t.Setenv("LUBAN_CONFIG_DIR", env.ConfigDir)
	t.Setenv("LUBAN_TEST_LOG", env.LogFile)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	return env
}

// commands returns the logged command lines of the fake tools.
func (e *testEnv) commands(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if err != nil {
		t.Fatalf("reading command log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
