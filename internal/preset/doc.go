// Package preset defines the plugin preset threaded through project creation:
// the built-in default, deep copies, the service-first plugin ordering, and
// loading and JSON Schema validation of preset files.
package preset
