package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when questions must be asked but stdin is
// not a terminal.
var ErrNotInteractive = errors.New("interactive prompts require a terminal")

// Asker asks a series of questions and returns the collected answers.
type Asker interface {
	Ask(questions []*Question) (Answers, error)
}

var (
	questionMark = color.New(color.FgGreen).Sprint("?")
	hint         = color.New(color.FgHiBlack).SprintFunc()
)

// Prompter asks questions over a line-oriented reader and writer using
// numbered menus for list and checkbox questions.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// IsInteractive reports whether f is a terminal a user can answer on.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Ask asks each question whose When allows it, in order.
func (p *Prompter) Ask(questions []*Question) (Answers, error) {
	answers := Answers{}
	for _, q := range questions {
		if !q.shouldAsk(answers) {
			continue
		}

		var (
			answer any
			err    error
		)
		switch q.Type {
		case Confirm:
			answer, err = p.askConfirm(q)
		case List:
			answer, err = p.askList(q)
		case Checkbox:
			answer, err = p.askCheckbox(q)
		case Input:
			answer, err = p.askInput(q)
		default:
			err = fmt.Errorf("unsupported question type %q", q.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", q.Name, err)
		}
		answers[q.Name] = answer
	}
	return answers, nil
}

func (p *Prompter) askConfirm(q *Question) (bool, error) {
	def, _ := q.Default.(bool)
	suffix := "(y/N)"
	if def {
		suffix = "(Y/n)"
	}
	fmt.Fprintf(p.out, "%s %s %s ", questionMark, q.Message, hint(suffix))

	line, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: expected y or n", line)
	}
}

func (p *Prompter) askList(q *Question) (string, error) {
	if len(q.Choices) == 0 {
		return "", fmt.Errorf("list question has no choices")
	}

	defIdx := -1
	if def, ok := q.Default.(string); ok {
		for i, c := range q.Choices {
			if c.Value == def {
				defIdx = i
			}
		}
	}

	fmt.Fprintf(p.out, "%s %s\n", questionMark, q.Message)
	p.printChoices(q.Choices, func(i int) bool { return i == defIdx })
	if defIdx >= 0 {
		fmt.Fprintf(p.out, "Enter number [1-%d] %s: ", len(q.Choices), hint(fmt.Sprintf("(default %d)", defIdx+1)))
	} else {
		fmt.Fprintf(p.out, "Enter number [1-%d]: ", len(q.Choices))
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" && defIdx >= 0 {
		return q.Choices[defIdx].Value, nil
	}

	idx, err := parseSelection(line, len(q.Choices))
	if err != nil {
		return "", err
	}
	return q.Choices[idx].Value, nil
}

func (p *Prompter) askCheckbox(q *Question) ([]string, error) {
	fmt.Fprintf(p.out, "%s %s\n", questionMark, q.Message)
	p.printChoices(q.Choices, func(i int) bool { return q.Choices[i].Checked })
	fmt.Fprintf(p.out, "Enter numbers separated by commas %s: ", hint("(blank keeps the marked defaults, 0 for none)"))

	line, err := p.readLine()
	if err != nil {
		return nil, err
	}

	selected := []string{}
	switch line {
	case "":
		for _, c := range q.Choices {
			if c.Checked {
				selected = append(selected, c.Value)
			}
		}
		return selected, nil
	case "0":
		return selected, nil
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(line, ",") {
		idx, err := parseSelection(strings.TrimSpace(part), len(q.Choices))
		if err != nil {
			return nil, err
		}
		if !seen[idx] {
			seen[idx] = true
			selected = append(selected, q.Choices[idx].Value)
		}
	}
	return selected, nil
}

func (p *Prompter) askInput(q *Question) (string, error) {
	def, _ := q.Default.(string)
	if def != "" {
		fmt.Fprintf(p.out, "%s %s %s ", questionMark, q.Message, hint("("+def+")"))
	} else {
		fmt.Fprintf(p.out, "%s %s ", questionMark, q.Message)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (p *Prompter) printChoices(choices []Choice, marked func(int) bool) {
	for i, c := range choices {
		mark := " "
		if marked(i) {
			mark = "*"
		}
		label := c.Name
		if label == "" {
			label = c.Value
		}
		if c.Description != "" {
			label += " " + hint("- "+c.Description)
		}
		fmt.Fprintf(p.out, " %s %d) %s\n", mark, i+1, label)
	}
}

// readLine reads one trimmed line. A final line without a newline is accepted.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parseSelection converts a 1-based menu entry into an index.
func parseSelection(s string, n int) (int, error) {
	num, err := strconv.Atoi(s)
	if err != nil || num < 1 || num > n {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", s, n)
	}
	return num - 1, nil
}
