package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

type recordingCommander struct {
	calls [][]string
}

func (r *recordingCommander) Run(_ context.Context, name string, args ...string) (*Output, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return &Output{}, nil
}

func TestRunLine_SplitsOnWhitespace(t *testing.T) {
	rec := &recordingCommander{}
	if _, err := RunLine(context.Background(), rec, "  git   init  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"git", "init"}}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestRunLine_Empty(t *testing.T) {
	if _, err := RunLine(context.Background(), &recordingCommander{}, "   "); err == nil {
		t.Error("expected error for empty command")
	}
}

func TestNodeScript_MissingScript(t *testing.T) {
	rec := &recordingCommander{}
	_, err := NodeScript(context.Background(), rec, afero.NewMemMapFs(), "/app", "./node_modules/eslint/bin/eslint.js")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("node should not run when the script is missing: %v", rec.calls)
	}
}

func TestNodeScript_PrependsScript(t *testing.T) {
	fsys := afero.NewMemMapFs()
	script := "./node_modules/prettier/bin-prettier.js"
	if err := afero.WriteFile(fsys, filepath.Join("/app", script), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	rec := &recordingCommander{}
	if _, err := NodeScript(context.Background(), rec, fsys, "/app", script, "--write", "src/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"node", script, "--write", "src/"}}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestRunner_MissingBinary(t *testing.T) {
	r := Quiet(t.TempDir())
	_, err := r.Run(context.Background(), "definitely-not-a-real-binary-xyz")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestRunner_CapturesAndStreams(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	var streamed bytes.Buffer
	dir := t.TempDir()
	r := &Runner{Dir: dir, Stdout: &streamed, Stderr: &streamed, Env: []string{"LUBAN_TEST_VALUE=hello"}}

	out, err := r.Run(context.Background(), "sh", "-c", "echo $LUBAN_TEST_VALUE; pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.Stdout, "hello\n") {
		t.Errorf("captured stdout = %q", out.Stdout)
	}
	if !strings.Contains(out.Stdout, filepath.Base(dir)) {
		t.Errorf("command did not run in %s: %q", dir, out.Stdout)
	}
	if streamed.String() != out.Stdout {
		t.Errorf("streamed %q, captured %q", streamed.String(), out.Stdout)
	}
}

func TestRunner_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	r := Quiet(t.TempDir())
	out, err := r.Run(context.Background(), "sh", "-c", "echo broken >&2; exit 3")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != 3 || out.ExitCode != 3 {
		t.Errorf("exit code = %d / %d, want 3", exitErr.Code, out.ExitCode)
	}
	if !strings.Contains(exitErr.Error(), "broken") {
		t.Errorf("error should include stderr: %v", exitErr)
	}
}
