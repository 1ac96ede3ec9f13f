// Package logger prints leveled, colored console output for the CLI and
// provides a spinner for long-running pipeline steps.
package logger
