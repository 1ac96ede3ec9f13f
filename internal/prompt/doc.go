// Package prompt asks the interactive questions that drive preset
// resolution. Questions are plain data; prompt modules contribute them through
// ModuleAPI together with callbacks that fold the answers into a preset.
package prompt
