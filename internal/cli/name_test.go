package cli

import (
	"strings"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		problem string
	}{
		{"simple", "my-app", true, ""},
		{"dots and underscores inside", "my.app_v2", true, ""},
		{"scoped", "@acme/my-app", true, ""},
		{"empty", "", false, "greater than zero"},
		{"leading period", ".app", false, "start with a period"},
		{"leading underscore", "_app", false, "start with an underscore"},
		{"capitals", "MyApp", false, "capital letters"},
		{"spaces", " my-app", false, "leading or trailing spaces"},
		{"special characters", "my-app!", false, "special characters"},
		{"not url safe", "my app", false, "URL-friendly"},
		{"slash without scope", "foo/bar", false, "URL-friendly"},
		{"blocked", "node_modules", false, "blocked name"},
		{"too long", strings.Repeat("a", 215), false, "214 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := validateProjectName(tt.input)
			if tt.valid {
				if len(problems) != 0 {
					t.Errorf("validateProjectName(%q) = %v, want valid", tt.input, problems)
				}
				return
			}
			if !strings.Contains(strings.Join(problems, "\n"), tt.problem) {
				t.Errorf("validateProjectName(%q) = %v, want a problem mentioning %q", tt.input, problems, tt.problem)
			}
		})
	}
}
