package plugin

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/luban-cli/luban/internal/logger"
	"github.com/luban-cli/luban/internal/preset"
)

// Level selects how an exit log is rendered once generation finishes.
type Level string

const (
	LevelLog   Level = "log"
	LevelInfo  Level = "info"
	LevelDone  Level = "done"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// API is the surface a generator uses to shape the new project.
type API interface {
	// ExtendPackage merges fields into package.json.
	ExtendPackage(fields map[string]any)
	// Render renders every file below root in fsys into the project.
	Render(fsys fs.FS, root string, data any) error
	// RenderString renders a single template to path inside the project.
	RenderString(path, tmpl string, data any) error
	HasPlugin(id string) bool
	ExitLog(msg string, level Level)
	ProjectName() string
	Preset() *preset.Preset
}

// GeneratorFunc emits the files of one plugin.
type GeneratorFunc func(api API, opts preset.PluginOptions, root preset.RootOptions) error

// Plugin is a plugin id bound to its generator and options.
type Plugin struct {
	ID      string
	Apply   GeneratorFunc
	Options preset.PluginOptions
}

var (
	mu         sync.RWMutex
	generators = map[string]GeneratorFunc{}
)

// Register makes fn the generator for id. It panics on duplicates.
func Register(id string, fn GeneratorFunc) {
	mu.Lock()
	defer mu.Unlock()
	if fn == nil {
		panic(fmt.Sprintf("plugin: nil generator for %s", id))
	}
	if _, dup := generators[id]; dup {
		panic(fmt.Sprintf("plugin: generator for %s registered twice", id))
	}
	generators[id] = fn
}

// Lookup returns the generator registered for id.
func Lookup(id string) (GeneratorFunc, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := generators[id]
	return fn, ok
}

// Registered returns the ids with a generator, sorted.
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()
	return preset.SortKeys(generators)
}

// Noop is used for plugins that ship no generator.
func Noop(API, preset.PluginOptions, preset.RootOptions) error { return nil }

// Resolve binds every plugin in raw to its generator. The service plugin
// comes first and the rest follow in lexical order.
func Resolve(raw map[string]preset.PluginOptions) []Plugin {
	p := preset.Preset{Plugins: raw}
	ids := p.PluginIDs()

	plugins := make([]Plugin, 0, len(ids))
	for _, id := range ids {
		opts := raw[id]
		if opts == nil {
			opts = preset.PluginOptions{}
		}
		apply, ok := Lookup(id)
		if !ok {
			logger.Warn(fmt.Sprintf("generator of plugin [%s] not found while resolving plugin, use default generator function instead", id))
			apply = Noop
		}
		plugins = append(plugins, Plugin{ID: id, Apply: apply, Options: opts})
	}
	return plugins
}
