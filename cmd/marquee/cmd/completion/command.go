// Package completion provides the shell completion command.
package completion

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/cmd/completion"
)

// NewCommand creates the completion command. Scripts are installed into fsys.
func NewCommand(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate or install shell completions",
		Long: `Generate the completion script for bash, zsh, fish or powershell.

To load completions in your current bash session:

  source <(marquee completion bash)

Use "marquee completion install" to install them permanently.`,
		ValidArgs:             completion.Shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return completion.Generate(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newInstallCommand(fsys))
	cmd.AddCommand(newUninstallCommand(fsys))
	return cmd
}

func newInstallCommand(fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:       "install [shell...]",
		Short:     "Install completions (all supported shells by default)",
		ValidArgs: completion.Installable,
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := detectEnv()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = completion.Installable
			}
			for _, shell := range args {
				if err := completion.Install(fsys, env, cmd.Root(), shell, cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newUninstallCommand(fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:       "uninstall [shell...]",
		Short:     "Remove installed completions",
		ValidArgs: completion.Installable,
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := detectEnv()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return completion.UninstallAll(fsys, env, cmd.OutOrStdout())
			}
			for _, shell := range args {
				if err := completion.Uninstall(fsys, env, shell, cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// detectEnv finds the home directory and a Homebrew prefix, if any.
func detectEnv() (completion.Env, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return completion.Env{}, err
	}
	env := completion.Env{Home: home, BrewPrefix: os.Getenv("HOMEBREW_PREFIX")}
	if env.BrewPrefix == "" {
		for _, prefix := range []string{"/opt/homebrew", "/usr/local"} {
			if _, err := os.Stat(filepath.Join(prefix, "bin", "brew")); err == nil {
				env.BrewPrefix = prefix
				break
			}
		}
	}
	return env, nil
}
