// Package service is the built-in service plugin. It renders the React
// application skeleton along with its lint, format and build configuration.
package service
