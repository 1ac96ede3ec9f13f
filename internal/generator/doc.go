// Package generator runs plugin generators against a new project. Files
// rendered by generators are collected in memory and written, together with
// the final package.json, in a single pass once every generator has run.
package generator
