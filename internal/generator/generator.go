package generator

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/luban-cli/luban/internal/logger"
	"github.com/luban-cli/luban/internal/pkgjson"
	"github.com/luban-cli/luban/internal/plugin"
	"github.com/luban-cli/luban/internal/preset"
)

type exitLog struct {
	id    string
	msg   string
	level plugin.Level
}

// Generator applies plugins to the project in Context.
type Generator struct {
	Context string

	fs          afero.Fs
	projectName string
	preset      *preset.Preset
	plugins     []plugin.Plugin
	pkg         pkgjson.Package
	files       map[string][]byte
	exitLogs    []exitLog
}

// Option configures a Generator.
type Option func(*Generator)

// WithFs writes output through fsys instead of the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fsys
	}
}

// New creates a generator for the project rooted at dir. p is the preset
// the user resolved, before adaptation.
func New(dir, projectName string, p *preset.Preset, plugins []plugin.Plugin, pkg pkgjson.Package, opts ...Option) *Generator {
	g := &Generator{
		Context:     dir,
		fs:          afero.NewOsFs(),
		projectName: projectName,
		preset:      p,
		plugins:     plugins,
		pkg:         pkg,
		files:       map[string][]byte{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Pkg returns the package.json as extended by the generators.
func (g *Generator) Pkg() pkgjson.Package {
	return g.pkg
}

// Files returns the relative paths of the rendered files, sorted.
func (g *Generator) Files() []string {
	return preset.SortKeys(g.files)
}

// Generate runs every plugin generator and writes the result to disk.
func (g *Generator) Generate() error {
	root := preset.RootOptions{ProjectName: g.projectName, Preset: g.preset}
	for _, p := range g.plugins {
		logger.Debugf("applying generator of %s", p.ID)
		api := &API{id: p.ID, gen: g}
		if err := p.Apply(api, p.Options, root); err != nil {
			return fmt.Errorf("running generator of %s: %w", p.ID, err)
		}
	}
	return g.writeFiles()
}

func (g *Generator) writeFiles() error {
	data, err := pkgjson.Marshal(g.pkg)
	if err != nil {
		return fmt.Errorf("encoding package.json: %w", err)
	}
	g.files["package.json"] = data

	for _, rel := range g.Files() {
		path := filepath.Join(g.Context, filepath.FromSlash(rel))
		if err := g.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", rel, err)
		}
		if err := afero.WriteFile(g.fs, path, g.files[rel], 0644); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}
	}
	return nil
}

var pluginName = color.New(color.FgCyan, color.Bold).SprintFunc()

// PrintExitLogs prints the messages recorded by generators, grouped by
// plugin in the order the plugins ran.
func (g *Generator) PrintExitLogs() {
	if len(g.exitLogs) == 0 {
		return
	}
	order := map[string]int{}
	for i, p := range g.plugins {
		order[p.ID] = i
	}
	logs := append([]exitLog(nil), g.exitLogs...)
	sort.SliceStable(logs, func(i, j int) bool {
		return order[logs[i].id] < order[logs[j].id]
	})

	logger.Log()
	current := ""
	for _, l := range logs {
		if l.id != current {
			current = l.id
			logger.Log(pluginName(l.id))
		}
		switch l.level {
		case plugin.LevelInfo:
			logger.Info(l.msg)
		case plugin.LevelDone:
			logger.Done(l.msg)
		case plugin.LevelWarn:
			logger.Warn(l.msg)
		case plugin.LevelError:
			logger.Error(l.msg)
		default:
			logger.Log(l.msg)
		}
	}
	logger.Log()
}
