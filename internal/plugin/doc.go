// Package plugin resolves the plugins named in a preset to the generator
// functions that emit their project files. Built-in plugins register their
// generators from init, so importing a plugin package makes it resolvable.
package plugin
