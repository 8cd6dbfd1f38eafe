package app

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/agentstation/marquee/cmd/marquee/cmd/categories"
	"github.com/agentstation/marquee/cmd/marquee/cmd/completion"
	"github.com/agentstation/marquee/cmd/marquee/cmd/favorites"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/internal/config"
	"github.com/agentstation/marquee/pkg/logging"
)

// Execute runs the marquee CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "marquee",
		Short:   "Emulator front-end categories and favorites",
		Version: a.version,
		Long: `Marquee browses the systems of an emulator front-end by category and
keeps a persistent list of favorite systems and software.

Category files are INI-style files in the category directory; favorites
are stored in favorites.ini in the UI directory.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.marquee.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringP("format", "o", "", "output format: table, json, yaml, markdown")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().String("category-path", "", "directory holding category files")
	rootCmd.PersistentFlags().String("ui-path", "", "directory holding favorites.ini")
	rootCmd.PersistentFlags().String("locale", "", "collation locale for category names")

	rootCmd.SetVersionTemplate("marquee {{.Version}}\n")

	a.registerCommands(rootCmd)
	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	if _, err := output.ParseFormat(format); err != nil {
		return err
	}

	if path := mustGetString(cmd, "config"); path != "" {
		cfg, err := config.LoadFs(a.fs, path)
		if err != nil {
			return err
		}
		a.config = cfg
	}
	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)
	for flag, field := range map[string]*string{
		"category-path": &a.config.CategoryPath,
		"ui-path":       &a.config.UIPath,
		"locale":        &a.config.Locale,
	} {
		if cmd.Flags().Changed(flag) {
			*field = mustGetString(cmd, flag)
		}
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithOperation(logging.WithLogger(ctx, a.logger), cmd.CommandPath()))
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(categories.NewCommand(a))
	rootCmd.AddCommand(favorites.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand(a.fs))

	rootCmd.AddCommand(a.newVersionCommand())
	rootCmd.AddCommand(a.newManCommand())
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "marquee version %s\n", a.version)
			fmt.Fprintf(w, "commit: %s\n", a.commit)
			fmt.Fprintf(w, "built: %s\n", a.date)
			fmt.Fprintf(w, "built by: %s\n", a.builtBy)
			fmt.Fprintf(w, "go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func (a *App) newManCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := &doc.GenManHeader{
				Title:   "MARQUEE",
				Section: "1",
				Source:  "marquee " + a.version,
				Manual:  "marquee Manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

// ExitOnError prints err and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
