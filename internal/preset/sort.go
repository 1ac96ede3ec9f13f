package preset

import (
	"sort"

	"github.com/luban-cli/luban/internal/branding"
)

// SortKeys returns the keys of m with the keys listed in first placed at the
// front, in that order, followed by the remaining keys in lexical order.
// Keys in first that are absent from m are skipped.
func SortKeys[V any](m map[string]V, first ...string) []string {
	keys := make([]string, 0, len(m))
	placed := make(map[string]bool, len(first))
	for _, k := range first {
		if _, ok := m[k]; ok && !placed[k] {
			keys = append(keys, k)
			placed[k] = true
		}
	}

	rest := make([]string, 0, len(m))
	for k := range m {
		if !placed[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// PluginIDs returns the preset's plugin ids with the service plugin first.
func (p *Preset) PluginIDs() []string {
	return SortKeys(p.Plugins, branding.ServicePlugin())
}
