// Package runner executes external tools (package managers, git, eslint,
// prettier) in a project directory, streaming their output while also
// capturing it for error reporting.
package runner
