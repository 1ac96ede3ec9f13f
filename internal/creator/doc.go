// Package creator drives "luban create". A Creator resolves the preset,
// writes the initial package.json, installs the CLI plugins, runs their
// generators and finishes the project with a README, lint and format passes
// and an optional initial commit. Every step runs in order; only the lint
// and format passes are allowed to fail.
package creator
