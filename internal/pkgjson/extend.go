package pkgjson

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/luban-cli/luban/internal/preset"
)

var dependencyKeys = map[string]bool{
	"dependencies":         true,
	"devDependencies":      true,
	"peerDependencies":     true,
	"optionalDependencies": true,
}

// Extend merges fields into p. Objects merge key-wise, dependency maps keep
// the higher of two version ranges, arrays are concatenated without
// duplicates, and other values overwrite. It returns a warning for every
// dependency conflict that could not be decided by version.
func (p Package) Extend(fields map[string]any) []string {
	var warnings []string
	for _, k := range preset.SortKeys(fields) {
		v := fields[k]
		if dependencyKeys[k] {
			if incoming, ok := toMap(v); ok {
				warnings = append(warnings, mergeDependencies(p.section(k), incoming)...)
				continue
			}
		}
		p[k] = mergeValue(p[k], v)
	}
	return warnings
}

func mergeValue(existing, incoming any) any {
	if em, ok := toMap(existing); ok {
		if im, ok := toMap(incoming); ok {
			for _, k := range preset.SortKeys(im) {
				em[k] = mergeValue(em[k], im[k])
			}
			return em
		}
	}
	if ea, ok := toSlice(existing); ok {
		if ia, ok := toSlice(incoming); ok {
			out := append([]any(nil), ea...)
			for _, v := range ia {
				if !containsValue(out, v) {
					out = append(out, v)
				}
			}
			return out
		}
	}
	return incoming
}

func mergeDependencies(dst, incoming map[string]any) []string {
	var warnings []string
	for _, name := range preset.SortKeys(incoming) {
		next, ok := incoming[name].(string)
		if !ok {
			continue
		}
		prev, exists := dst[name].(string)
		if !exists || prev == next {
			dst[name] = next
			continue
		}

		chosen, decided := higherRange(prev, next)
		if !decided {
			warnings = append(warnings, fmt.Sprintf(
				"conflicting versions for dependency %q: %s and %s, using %s", name, prev, next, next))
			chosen = next
		}
		dst[name] = chosen
	}
	return warnings
}

// higherRange picks the range with the higher minimum version. It returns
// false when either side is not a plain semver range (tags, urls, file: specs).
func higherRange(a, b string) (string, bool) {
	av, err := rangeMinimum(a)
	if err != nil {
		return "", false
	}
	bv, err := rangeMinimum(b)
	if err != nil {
		return "", false
	}
	if bv.GreaterThan(av) {
		return b, true
	}
	return a, true
}

// rangeMinimum returns the lowest version a simple npm range such as
// "^1.2.0", "~1.2.0", ">=1.2" or "1.2.3" admits.
func rangeMinimum(r string) (*semver.Version, error) {
	if _, err := semver.NewConstraint(r); err != nil {
		return nil, err
	}
	v := strings.TrimLeft(strings.TrimSpace(r), "^~>=v ")
	if strings.ContainsAny(v, " |<") {
		return nil, fmt.Errorf("compound range %q", r)
	}
	return semver.NewVersion(v)
}

func toMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Package:
		return map[string]any(m), true
	case preset.PluginOptions:
		return map[string]any(m), true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func toSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}

func containsValue(list []any, v any) bool {
	for _, e := range list {
		if reflect.DeepEqual(e, v) {
			return true
		}
	}
	return false
}
