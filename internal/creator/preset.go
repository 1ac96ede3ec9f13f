package creator

import (
	"fmt"

	"github.com/luban-cli/luban/internal/logger"
	"github.com/luban-cli/luban/internal/preset"
	"github.com/luban-cli/luban/internal/prompt"
)

const useDefaultQuestion = "useDefaultPreset"

// resolvePreset returns the preset for the new project. A preset file wins
// over --default, which wins over the interactive questions.
func (c *Creator) resolvePreset() (*preset.Preset, error) {
	switch {
	case c.opts.PresetFile != "":
		p, err := preset.Load(c.opts.PresetFile)
		if err != nil {
			return nil, err
		}
		preset.Print(logger.Output(), fmt.Sprintf("Preset from %s:", c.opts.PresetFile), p)
		return p, nil
	case c.opts.Default:
		return preset.Default(), nil
	case c.opts.Manual:
		return c.promptPreset()
	}

	ok, err := c.confirmDefault()
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Warn("You cancel current operation.")
		return nil, ErrCancelled
	}
	return preset.Default(), nil
}

func (c *Creator) confirmDefault() (bool, error) {
	answers, err := c.asker.Ask([]*prompt.Question{{
		Type:    prompt.Confirm,
		Name:    useDefaultQuestion,
		Message: "Use the default preset?",
		Default: true,
	}})
	if err != nil {
		return false, fmt.Errorf("asking for the default preset: %w", err)
	}
	preset.PrintDefault(logger.Output(), preset.Default())
	return answers.Bool(useDefaultQuestion), nil
}

func (c *Creator) promptPreset() (*preset.Preset, error) {
	answers, err := c.asker.Ask(c.modules.FinalPrompts())
	if err != nil {
		return nil, fmt.Errorf("collecting project features: %w", err)
	}
	p := preset.New()
	c.modules.Complete(answers, p)
	p.Normalize()
	return p, nil
}
