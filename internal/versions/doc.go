// Package versions determines which plugin versions a new project depends on.
// It looks up the latest published service plugin on the npm registry, caches
// the result for a day, and derives the "~major.minor.0" range written into
// package.json.
package versions
