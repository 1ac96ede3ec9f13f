// Package cli defines the Cobra command tree for the luban CLI. Commands
// only parse flags and talk to the user; project creation itself lives in
// the creator package.
package cli
