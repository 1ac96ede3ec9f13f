package prompt

import "slices"

// Type selects how a question is asked and what kind of answer it yields.
type Type string

const (
	Confirm  Type = "confirm"  // yields bool
	List     Type = "list"     // yields string (the chosen value)
	Checkbox Type = "checkbox" // yields []string (the checked values)
	Input    Type = "input"    // yields string
)

// Choice is one option of a list or checkbox question.
type Choice struct {
	Name        string // label shown to the user
	Value       string
	Description string
	Checked     bool // preselected in checkbox questions
}

// Question describes a single prompt.
type Question struct {
	Type    Type
	Name    string
	Message string
	Choices []Choice
	// Default is a bool for Confirm, a value for List and Input.
	// Checkbox questions use Choice.Checked instead.
	Default any
	// When, if set, decides from the answers so far whether to ask.
	When func(Answers) bool
}

func (q *Question) shouldAsk(answers Answers) bool {
	if q.When == nil {
		return true
	}
	return q.When(answers)
}

// Answers maps question names to their answers.
type Answers map[string]any

// Bool returns a Confirm answer, false if missing.
func (a Answers) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// String returns a List or Input answer, "" if missing.
func (a Answers) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Strings returns a Checkbox answer, nil if missing.
func (a Answers) Strings(name string) []string {
	s, _ := a[name].([]string)
	return s
}

// Contains reports whether the Checkbox answer name includes value.
func (a Answers) Contains(name, value string) bool {
	return slices.Contains(a.Strings(name), value)
}
