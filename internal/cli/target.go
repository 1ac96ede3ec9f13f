package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/luban-cli/luban/internal/creator"
	"github.com/luban-cli/luban/internal/logger"
	"github.com/luban-cli/luban/internal/prompt"
)

// Target directory actions.
const (
	actionOverwrite = "overwrite"
	actionMerge     = "merge"
	actionCancel    = "cancel"
)

type targetOptions struct {
	force       bool
	merge       bool
	inCurrent   bool
	interactive bool
}

// prepareTarget makes dir ready for a new project. A missing or empty dir is
// used as is; otherwise the user chooses between overwriting, merging or
// cancelling unless --force or --merge already decided.
func prepareTarget(fsys afero.Fs, dir string, opts targetOptions, asker prompt.Asker) error {
	exists, err := afero.DirExists(fsys, dir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if !exists {
		return nil
	}
	empty, err := afero.IsEmpty(fsys, dir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if empty || opts.merge {
		return nil
	}

	if opts.inCurrent {
		if !opts.interactive {
			return nil
		}
		answers, err := asker.Ask([]*prompt.Question{{
			Type:    prompt.Confirm,
			Name:    "ok",
			Message: "Generate project in current directory?",
			Default: true,
		}})
		if err != nil {
			return err
		}
		if !answers.Bool("ok") {
			return creator.ErrCancelled
		}
		return nil
	}

	action := actionOverwrite
	if !opts.force {
		if !opts.interactive {
			return fmt.Errorf("target directory %s already exists: use --force or --merge: %w", dir, prompt.ErrNotInteractive)
		}
		answers, err := asker.Ask([]*prompt.Question{{
			Type:    prompt.List,
			Name:    "action",
			Message: fmt.Sprintf("Target directory %s already exists. Pick an action:", dir),
			Choices: []prompt.Choice{
				{Name: "Overwrite", Value: actionOverwrite},
				{Name: "Merge", Value: actionMerge},
				{Name: "Cancel", Value: actionCancel},
			},
			Default: actionCancel,
		}})
		if err != nil {
			return err
		}
		action = answers.String("action")
	}

	switch action {
	case actionOverwrite:
		logger.Log(fmt.Sprintf("\nRemoving %s...", dir))
		if err := fsys.RemoveAll(dir); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
		return nil
	case actionMerge:
		return nil
	default:
		return creator.ErrCancelled
	}
}
