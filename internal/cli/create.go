package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/luban-cli/luban/internal/config"
	"github.com/luban-cli/luban/internal/creator"
	"github.com/luban-cli/luban/internal/git"
	"github.com/luban-cli/luban/internal/logger"
	"github.com/luban-cli/luban/internal/pkgmanager"
	"github.com/luban-cli/luban/internal/prompt"
	"github.com/luban-cli/luban/internal/promptmodules"
	"github.com/luban-cli/luban/internal/versions"
)

var createFlags struct {
	manual         bool
	useDefault     bool
	presetFile     string
	packageManager string
	registry       string
	gitMessage     string
	skipGit        bool
	forceGit       bool
	localPlugin    bool
	force          bool
	merge          bool
}

func init() {
	f := createCmd.Flags()
	f.BoolVarP(&createFlags.manual, "manual", "m", false, "Pick features manually instead of using the default preset")
	f.BoolVarP(&createFlags.useDefault, "default", "d", false, "Use the default preset without asking")
	f.StringVarP(&createFlags.presetFile, "preset", "p", "", "Load the preset from a YAML or JSON file")
	f.StringVar(&createFlags.packageManager, "package-manager", "", "Package manager to install with: "+strings.Join(pkgmanager.Supported, ", "))
	f.StringVarP(&createFlags.registry, "registry", "r", "", "npm registry used to install dependencies")
	f.StringVarP(&createFlags.gitMessage, "git", "g", "", "Force git init with an initial commit message")
	f.Lookup("git").NoOptDefVal = git.DefaultCommitMessage
	f.BoolVarP(&createFlags.skipGit, "skip-git", "n", false, "Skip git initialization")
	f.BoolVar(&createFlags.forceGit, "force-git", false, "Initialize git even inside an existing repository")
	f.BoolVar(&createFlags.localPlugin, "local-plugin", false, "Install CLI plugins from local checkouts")
	f.BoolVarP(&createFlags.force, "force", "f", false, "Overwrite the target directory if it exists")
	f.BoolVar(&createFlags.merge, "merge", false, "Merge into the target directory if it exists")
	createCmd.MarkFlagsMutuallyExclusive("manual", "default", "preset")
	createCmd.MarkFlagsMutuallyExclusive("force", "merge")
	createCmd.MarkFlagsMutuallyExclusive("skip-git", "force-git")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <app-name>",
	Short: "Create a new React project",
	Long: `Create a new React project in ./<app-name>. Use "." to create it in the
current directory.

Examples:
  luban create my-app
  luban create my-app --manual --package-manager yarn
  luban create . --default --skip-git`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	inCurrent := args[0] == "."
	name := args[0]
	if inCurrent {
		name = filepath.Base(cwd)
	}
	target := filepath.Join(cwd, args[0])

	if problems := validateProjectName(name); len(problems) > 0 {
		for _, p := range problems {
			logger.Error(p)
		}
		return fmt.Errorf("invalid project name: %q", name)
	}

	interactive := prompt.IsInteractive(os.Stdin)
	asker := prompt.NewPrompter(os.Stdin, cmd.OutOrStdout())
	if !interactive && !createFlags.useDefault && createFlags.presetFile == "" {
		return fmt.Errorf("use --default or --preset to create a project: %w", prompt.ErrNotInteractive)
	}

	err = prepareTarget(afero.NewOsFs(), target, targetOptions{
		force:       createFlags.force,
		merge:       createFlags.merge,
		inCurrent:   inCurrent,
		interactive: interactive,
	}, asker)
	if err != nil {
		return err
	}

	opts := createOptions(cmd)
	if slices.Contains(pkgmanager.Supported, opts.PackageManager) && !pkgmanager.Available(opts.PackageManager) {
		return fmt.Errorf("package manager %s not found on PATH", opts.PackageManager)
	}

	checker := versions.New(buildVersion,
		versions.WithRegistry(lookupRegistry(opts)),
		versions.WithCacheDir(config.Dir()))
	c := creator.New(name, target, opts, promptmodules.All(),
		creator.WithAsker(asker),
		creator.WithVersions(checker))
	return c.Create(cmd.Context())
}

// lookupRegistry returns the registry installs will use, falling back to the
// configured default.
func lookupRegistry(opts creator.Options) string {
	if opts.Registry != "" {
		return opts.Registry
	}
	return config.Registry()
}

// createOptions merges the create flags with the user's configuration.
func createOptions(cmd *cobra.Command) creator.Options {
	opts := creator.Options{
		Manual:         createFlags.manual,
		Default:        createFlags.useDefault,
		PresetFile:     createFlags.presetFile,
		PackageManager: createFlags.packageManager,
		Registry:       createFlags.registry,
		LocalPlugin:    createFlags.localPlugin,
		Git: git.Options{
			SkipGit:  createFlags.skipGit,
			ForceGit: createFlags.forceGit,
		},
	}
	if opts.PackageManager == "" {
		opts.PackageManager = config.PackageManager()
	}
	if opts.Registry == "" {
		opts.Registry = config.Get(config.KeyRegistry)
	}
	if cmd.Flags().Changed("git") {
		msg := createFlags.gitMessage
		opts.Git.Message = &msg
	}
	return opts
}
