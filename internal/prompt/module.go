package prompt

import (
	"fmt"

	"github.com/luban-cli/luban/internal/preset"
)

// FeaturesQuestion is the name of the checkbox question that lists injected features.
const FeaturesQuestion = "features"

// CompleteFunc folds the answers into the preset being resolved.
type CompleteFunc func(answers Answers, p *preset.Preset)

// Module contributes questions and completion callbacks to a ModuleAPI.
type Module func(api *ModuleAPI)

// ModuleAPI collects what prompt modules inject: feature choices, extra
// questions, and callbacks run once all answers are in.
type ModuleAPI struct {
	featurePrompt   *Question
	injectedPrompts []*Question
	callbacks       []CompleteFunc
}

// NewModuleAPI returns an empty ModuleAPI and applies modules to it in order.
func NewModuleAPI(modules ...Module) *ModuleAPI {
	api := &ModuleAPI{
		featurePrompt: &Question{
			Type:    Checkbox,
			Name:    FeaturesQuestion,
			Message: "Check the features needed for your project:",
		},
	}
	for _, m := range modules {
		m(api)
	}
	return api
}

// InjectFeature adds a choice to the features checkbox.
func (api *ModuleAPI) InjectFeature(feature Choice) {
	api.featurePrompt.Choices = append(api.featurePrompt.Choices, feature)
}

// InjectPrompt appends a question after the features checkbox.
func (api *ModuleAPI) InjectPrompt(q *Question) {
	api.injectedPrompts = append(api.injectedPrompts, q)
}

// InjectOptionForPrompt adds a choice to a previously injected question.
func (api *ModuleAPI) InjectOptionForPrompt(name string, option Choice) error {
	for _, q := range api.injectedPrompts {
		if q.Name == name {
			q.Choices = append(q.Choices, option)
			return nil
		}
	}
	return fmt.Errorf("no injected prompt named %q", name)
}

// OnPromptComplete registers cb to run after all questions are answered.
func (api *ModuleAPI) OnPromptComplete(cb CompleteFunc) {
	api.callbacks = append(api.callbacks, cb)
}

// FinalPrompts returns the questions to ask: the features checkbox (when any
// feature was injected), the injected questions, then outro.
func (api *ModuleAPI) FinalPrompts(outro ...*Question) []*Question {
	var prompts []*Question
	if len(api.featurePrompt.Choices) > 0 {
		prompts = append(prompts, api.featurePrompt)
	}
	prompts = append(prompts, api.injectedPrompts...)
	return append(prompts, outro...)
}

// Complete runs the registered callbacks in registration order.
func (api *ModuleAPI) Complete(answers Answers, p *preset.Preset) {
	for _, cb := range api.callbacks {
		cb(answers, p)
	}
}

// FeatureSelected returns a When predicate that holds if the features
// checkbox includes value.
func FeatureSelected(value string) func(Answers) bool {
	return func(a Answers) bool {
		return a.Contains(FeaturesQuestion, value)
	}
}
