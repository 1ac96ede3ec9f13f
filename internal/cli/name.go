package cli

import (
	"net/url"
	"regexp"
	"strings"
)

const maxNameLength = 214

var (
	scopedName   = regexp.MustCompile(`^(?:@([^/]+?)/)?([^/]+?)$`)
	specialChars = regexp.MustCompile(`[~'!()*]`)
	blockedNames = []string{"node_modules", "favicon.ico"}
)

// validateProjectName applies the npm package name rules and returns every
// rule the name breaks.
func validateProjectName(name string) []string {
	var problems []string
	if name == "" {
		return []string{"name length must be greater than zero"}
	}
	if strings.HasPrefix(name, ".") {
		problems = append(problems, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		problems = append(problems, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		problems = append(problems, "name cannot contain leading or trailing spaces")
	}
	for _, blocked := range blockedNames {
		if strings.EqualFold(name, blocked) {
			problems = append(problems, blocked+" is a blocked name")
		}
	}
	if len(name) > maxNameLength {
		problems = append(problems, "name can no longer contain more than 214 characters")
	}
	if strings.ToLower(name) != name {
		problems = append(problems, "name can no longer contain capital letters")
	}
	if specialChars.MatchString(name) {
		problems = append(problems, `name can no longer contain special characters ("~'!()*")`)
	}
	if !urlSafe(name) {
		problems = append(problems, "name can only contain URL-friendly characters")
	}
	return problems
}

func urlSafe(name string) bool {
	m := scopedName.FindStringSubmatch(name)
	if m == nil {
		return false
	}
	scope, pkg := m[1], m[2]
	if scope != "" && url.QueryEscape(scope) != scope {
		return false
	}
	return url.QueryEscape(pkg) == pkg
}
