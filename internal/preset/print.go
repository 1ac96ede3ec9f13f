package preset

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	presetTitle = color.New(color.FgCyan, color.Bold).SprintFunc()
	presetKey   = color.New(color.FgYellow).SprintFunc()
)

// Print writes a human-readable summary of p to w.
func Print(w io.Writer, title string, p *Preset) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, presetTitle(title))
	fmt.Fprintf(w, "  %s %s\n", presetKey("language:"), languageName(p.Language))
	fmt.Fprintf(w, "  %s %s\n", presetKey("stylelint:"), yesNo(p.Stylelint))
	fmt.Fprintf(w, "  %s %s\n", presetKey("unit test:"), yesNo(p.UnitTest))
	fmt.Fprintf(w, "  %s %s\n", presetKey("plugins:"), strings.Join(p.PluginIDs(), ", "))
	fmt.Fprintln(w)
}

// PrintDefault writes the default preset summary shown after the
// "use default preset" confirmation.
func PrintDefault(w io.Writer, p *Preset) {
	Print(w, "Default preset:", p)
}

func languageName(lang string) string {
	switch lang {
	case LanguageTS:
		return "TypeScript"
	case LanguageJS:
		return "JavaScript"
	default:
		return lang
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
