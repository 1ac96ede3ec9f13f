package creator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/luban-cli/luban/internal/branding"
	"github.com/luban-cli/luban/internal/generator"
	"github.com/luban-cli/luban/internal/git"
	"github.com/luban-cli/luban/internal/logger"
	"github.com/luban-cli/luban/internal/pkgjson"
	"github.com/luban-cli/luban/internal/pkgmanager"
	"github.com/luban-cli/luban/internal/plugin"
	"github.com/luban-cli/luban/internal/preset"
	"github.com/luban-cli/luban/internal/prompt"
	"github.com/luban-cli/luban/internal/readme"
	"github.com/luban-cli/luban/internal/runner"
	"github.com/luban-cli/luban/internal/versions"
)

// ErrCancelled is returned when the user declines to continue.
var ErrCancelled = errors.New("operation cancelled")

// Options are the user's choices for a new project.
type Options struct {
	Manual         bool
	Default        bool
	PresetFile     string
	PackageManager string
	Registry       string
	Git            git.Options
	LocalPlugin    bool
}

// VersionSource resolves the plugin versions for package.json.
type VersionSource interface {
	Get(ctx context.Context) *versions.Versions
}

// Creator creates a single project.
type Creator struct {
	Name    string
	Context string

	opts    Options
	modules *prompt.ModuleAPI
	asker   prompt.Asker
	fs      afero.Fs
	cmd     runner.Commander
	quiet   runner.Commander
	vers    VersionSource
	hasGit  func(context.Context) bool
	workDir string
	spinner *logger.Spinner
}

// Option configures a Creator.
type Option func(*Creator)

// WithAsker answers questions through a.
func WithAsker(a prompt.Asker) Option {
	return func(c *Creator) { c.asker = a }
}

// WithFs writes the project through fsys.
func WithFs(fsys afero.Fs) Option {
	return func(c *Creator) { c.fs = fsys }
}

// WithCommander runs every external command through cmd.
func WithCommander(cmd runner.Commander) Option {
	return func(c *Creator) {
		c.cmd = cmd
		c.quiet = cmd
	}
}

// WithVersions resolves plugin versions through v.
func WithVersions(v VersionSource) Option {
	return func(c *Creator) { c.vers = v }
}

// WithGitAvailable overrides the git binary check.
func WithGitAvailable(fn func(context.Context) bool) Option {
	return func(c *Creator) { c.hasGit = fn }
}

// WithWorkDir sets the directory local plugin paths are resolved from.
func WithWorkDir(dir string) Option {
	return func(c *Creator) { c.workDir = dir }
}

// New creates a Creator for project name in dir. modules are applied to the
// prompt API once, in order.
func New(name, dir string, opts Options, modules []prompt.Module, options ...Option) *Creator {
	wd, _ := os.Getwd()
	c := &Creator{
		Name:    name,
		Context: dir,
		opts:    opts,
		modules: prompt.NewModuleAPI(modules...),
		asker:   prompt.NewPrompter(os.Stdin, os.Stdout),
		fs:      afero.NewOsFs(),
		cmd:     runner.New(dir),
		quiet:   runner.Quiet(dir),
		vers:    versions.New(versions.FallbackVersion),
		hasGit:  git.Available,
		workDir: wd,
	}
	for _, opt := range options {
		opt(c)
	}
	c.spinner = logger.NewSpinner(nil)
	return c
}

var (
	highlight = color.New(color.FgYellow).SprintFunc()
	success   = color.New(color.FgGreen).SprintFunc()
	banner    = color.New(color.BgHiWhite, color.FgBlack).SprintFunc()
	underline = color.New(color.Underline).SprintFunc()
	farewell  = color.New(color.FgHiRed).SprintFunc()
)

// Create runs the whole pipeline.
func (c *Creator) Create(ctx context.Context) error {
	p, err := c.resolvePreset()
	if err != nil {
		return err
	}
	adapted, _ := preset.Adapt(p, c.Name)

	pm, err := pkgmanager.New(c.Context, c.opts.PackageManager,
		pkgmanager.WithRegistry(c.opts.Registry),
		pkgmanager.WithCommander(c.cmd))
	if err != nil {
		return err
	}

	defer c.spinner.StopSpinner()

	logger.Log()
	c.spinner.LogWithSpinner("🏗", fmt.Sprintf("Creating project in %s", highlight(c.Context)))
	v := c.vers.Get(ctx)
	logger.Debugf("latest plugin version %s (minor %s)", v.Latest, v.LatestMinor)

	pkg := pkgjson.New(c.Name, adapted)
	pkg.AddPluginDependencies(adapted.PluginIDs(), pkgjson.DependencyOptions{
		LocalPlugins: c.opts.LocalPlugin,
		WorkDir:      c.workDir,
		LatestMinor:  v.LatestMinor,
	})
	if err := c.writePackage(pkg); err != nil {
		return err
	}

	repo := git.New(c.Context, c.quiet)
	initGit := git.ShouldInit(c.opts.Git,
		func() bool { return c.hasGit(ctx) },
		func() bool { return repo.InWorkTree(ctx) })
	if initGit {
		c.spinner.StopSpinner()
		logger.Log()
		c.spinner.LogWithSpinner("🗄", "Initializing git repository...")
		if err := repo.Init(ctx); err != nil {
			return err
		}
	}
	c.spinner.StopSpinner()

	logger.Log()
	logger.Log("⚙️  Installing CLI plugins. This might take a while...")
	if err := pm.Install(ctx); err != nil {
		return fmt.Errorf("installing CLI plugins: %w", err)
	}

	plugins := plugin.Resolve(adapted.Clone().Plugins)
	logger.Log()
	logger.Log("🔩  Invoking plugin's generators...")
	gen := generator.New(c.Context, c.Name, p, plugins, pkg, generator.WithFs(c.fs))
	if err := gen.Generate(); err != nil {
		return err
	}

	logger.Log()
	logger.Log("📥  Installing additional dependencies...")
	if err := pm.Install(ctx); err != nil {
		return fmt.Errorf("installing additional dependencies: %w", err)
	}

	logger.Log()
	c.spinner.LogWithSpinner("📝", "Generating README.md...")
	if err := afero.WriteFile(c.fs, filepath.Join(c.Context, "README.md"), []byte(readme.Generate(gen.Pkg(), pm.Bin())), 0644); err != nil {
		return fmt.Errorf("writing README.md: %w", err)
	}
	c.spinner.StopSpinner()

	logger.Log()
	c.spinner.LogWithSpinner("🔧", "Fixing and formatting some lint errors...")
	if err := c.fixLintErrors(ctx, adapted); err != nil {
		if ctx.Err() != nil {
			c.spinner.StopSpinner()
			return ctx.Err()
		}
		logger.Debugf("lint fix: %v", err)
		logger.Log("\n")
		logger.Warn("🚨fix lint errors failure, you can manual fix it later by `npm run eslint:fix`")
	}
	c.spinner.StopSpinner()

	logger.Log()
	c.spinner.LogWithSpinner("🎨", "Formatting some config file...")
	if err := c.formatConfigFiles(ctx, adapted); err != nil {
		if ctx.Err() != nil {
			c.spinner.StopSpinner()
			return ctx.Err()
		}
		logger.Debugf("format: %v", err)
		logger.Log("\n")
		logger.Warn("🚨format file failure, but does not effect to create project")
	}
	c.spinner.StopSpinner()

	if err := ctx.Err(); err != nil {
		return err
	}

	if initGit {
		msg := git.DefaultCommitMessage
		if c.opts.Git.Message != nil && *c.opts.Git.Message != "" {
			msg = *c.opts.Git.Message
		}
		logger.Log()
		c.spinner.LogWithSpinner("🗃", "Committing initial files...")
		if err := repo.CommitAll(ctx, msg); err != nil {
			c.spinner.StopSpinner()
			logger.Warn(fmt.Sprintf("skipped git commit: %v", err))
		}
		c.spinner.StopSpinner()
	}

	c.printSuccess(pm.Bin())
	gen.PrintExitLogs()
	return nil
}

func (c *Creator) writePackage(pkg pkgjson.Package) error {
	data, err := pkgjson.Marshal(pkg)
	if err != nil {
		return fmt.Errorf("encoding package.json: %w", err)
	}
	if err := c.fs.MkdirAll(c.Context, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Context, err)
	}
	if err := afero.WriteFile(c.fs, filepath.Join(c.Context, "package.json"), data, 0644); err != nil {
		return fmt.Errorf("writing package.json: %w", err)
	}
	return nil
}

func (c *Creator) printSuccess(pm string) {
	logger.Log()
	logger.Log(success("🌈  Create project successfully!"))
	logger.Log()
	logger.Log("      " + banner("🚀   Run Application  "))
	logger.Log("      " + highlight("cd "+c.Name))
	logger.Log("      " + highlight(pkgmanager.ScriptCommand(pm, "start")))
	logger.Log()
	logger.Log(fmt.Sprintf("🔗  More documentation to visit %s", underline(branding.DocsURL())))
	logger.Log()
	logger.Log(farewell("👩‍💻  Happy coding"))
	logger.Log()
}
