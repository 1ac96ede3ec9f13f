package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/afero"

	"github.com/luban-cli/luban/internal/creator"
	"github.com/luban-cli/luban/internal/logger"
	"github.com/luban-cli/luban/internal/prompt"
)

type stubAsker struct {
	answers prompt.Answers
	calls   int
}

func (s *stubAsker) Ask([]*prompt.Question) (prompt.Answers, error) {
	s.calls++
	return s.answers, nil
}

func populated(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/work/app/old.txt", []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	return fsys
}

func TestPrepareTarget(t *testing.T) {
	defer logger.SetOutput(&bytes.Buffer{})()

	tests := []struct {
		name     string
		opts     targetOptions
		answers  prompt.Answers
		wantErr  error
		wantKept bool
		asked    bool
	}{
		{"force removes", targetOptions{force: true}, nil, nil, false, false},
		{"merge keeps", targetOptions{merge: true}, nil, nil, true, false},
		{"ask overwrite", targetOptions{interactive: true}, prompt.Answers{"action": actionOverwrite}, nil, false, true},
		{"ask merge", targetOptions{interactive: true}, prompt.Answers{"action": actionMerge}, nil, true, true},
		{"ask cancel", targetOptions{interactive: true}, prompt.Answers{"action": actionCancel}, creator.ErrCancelled, true, true},
		{"not interactive", targetOptions{}, nil, prompt.ErrNotInteractive, true, false},
		{"current dir confirmed", targetOptions{inCurrent: true, interactive: true}, prompt.Answers{"ok": true}, nil, true, true},
		{"current dir declined", targetOptions{inCurrent: true, interactive: true}, prompt.Answers{"ok": false}, creator.ErrCancelled, true, true},
		{"current dir with force", targetOptions{inCurrent: true, force: true}, nil, nil, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := populated(t)
			asker := &stubAsker{answers: tt.answers}

			err := prepareTarget(fsys, "/work/app", tt.opts, asker)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("prepareTarget() error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("prepareTarget() error = %v, want %v", err, tt.wantErr)
			}

			kept, _ := afero.Exists(fsys, "/work/app/old.txt")
			if kept != tt.wantKept {
				t.Errorf("existing file kept = %v, want %v", kept, tt.wantKept)
			}
			if (asker.calls > 0) != tt.asked {
				t.Errorf("asked = %v, want %v", asker.calls > 0, tt.asked)
			}
		})
	}
}

func TestPrepareTarget_MissingOrEmpty(t *testing.T) {
	fsys := afero.NewMemMapFs()
	asker := &stubAsker{}
	if err := prepareTarget(fsys, "/work/new", targetOptions{}, asker); err != nil {
		t.Errorf("missing dir: %v", err)
	}
	if err := fsys.MkdirAll("/work/empty", 0755); err != nil {
		t.Fatal(err)
	}
	if err := prepareTarget(fsys, "/work/empty", targetOptions{}, asker); err != nil {
		t.Errorf("empty dir: %v", err)
	}
	if asker.calls != 0 {
		t.Error("no question expected")
	}
}
