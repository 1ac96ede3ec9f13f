package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/luban-cli/luban/internal/logger"
	"github.com/luban-cli/luban/internal/plugin"
	"github.com/luban-cli/luban/internal/preset"
)

const templateExt = ".tmpl"

// API is handed to a single plugin's generator.
type API struct {
	id  string
	gen *Generator
}

var _ plugin.API = (*API)(nil)

// ID returns the id of the plugin this API belongs to.
func (a *API) ID() string { return a.id }

func (a *API) ExtendPackage(fields map[string]any) {
	for _, w := range a.gen.pkg.Extend(fields) {
		logger.Warn(fmt.Sprintf("[%s] %s", a.id, w))
	}
}

// Render walks root in fsys and adds each file to the project at the same
// relative path. Template files are executed with data, a leading "_" in a
// file name turns into "." and blank results are dropped.
func (a *API) Render(fsys fs.FS, root string, data any) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := p
		if root != "." {
			rel = strings.TrimPrefix(p, root+"/")
		}
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		if !strings.HasSuffix(rel, templateExt) {
			a.addFile(outputPath(rel), raw)
			return nil
		}
		rel = strings.TrimSuffix(rel, templateExt)
		out, err := execute(p, string(raw), data)
		if err != nil {
			return err
		}
		a.addFile(outputPath(rel), out)
		return nil
	})
}

// RenderString executes tmpl with data and adds the result at target, a
// path relative to the project directory.
func (a *API) RenderString(target, tmpl string, data any) error {
	rel := path.Clean(target)
	if path.IsAbs(rel) || rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return fmt.Errorf("render target %q is outside the project", target)
	}
	out, err := execute(target, tmpl, data)
	if err != nil {
		return err
	}
	a.addFile(rel, out)
	return nil
}

func (a *API) HasPlugin(id string) bool {
	for _, p := range a.gen.plugins {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (a *API) ExitLog(msg string, level plugin.Level) {
	a.gen.exitLogs = append(a.gen.exitLogs, exitLog{id: a.id, msg: msg, level: level})
}

func (a *API) ProjectName() string { return a.gen.projectName }

func (a *API) Preset() *preset.Preset { return a.gen.preset }

func (a *API) addFile(rel string, content []byte) {
	if len(bytes.TrimSpace(content)) == 0 {
		logger.Debugf("[%s] skipping empty file %s", a.id, rel)
		return
	}
	a.gen.files[rel] = content
}

func execute(name, text string, data any) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// outputPath maps "_eslintrc" to ".eslintrc" in the last path element.
func outputPath(rel string) string {
	dir, file := path.Split(rel)
	if strings.HasPrefix(file, "_") {
		file = "." + file[1:]
	}
	return dir + file
}
