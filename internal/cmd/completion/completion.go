// Package completion installs and removes shell completion scripts.
package completion

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/errors"
)

// Supported shells.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

// Shells lists the shells a script can be generated for.
var Shells = []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// Installable lists the shells with a well-known completion directory.
var Installable = []string{ShellBash, ShellZsh, ShellFish}

const (
	success = "✓"
	failure = "✗"
)

// Env describes where completion files should live.
type Env struct {
	Home       string // user home directory
	BrewPrefix string // Homebrew prefix, empty when Homebrew is absent
}

// Generate writes the completion script for shell to w.
func Generate(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case ShellBash:
		return root.GenBashCompletionV2(w, true)
	case ShellZsh:
		return root.GenZshCompletion(w)
	case ShellFish:
		return root.GenFishCompletion(w, true)
	case ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.NewValidationError("shell", shell, "unsupported shell")
	}
}

// Path returns the file the completion script for shell is installed to.
func Path(env Env, shell string) (string, error) {
	name := constants.AppName
	if env.BrewPrefix != "" {
		switch shell {
		case ShellBash:
			return filepath.Join(env.BrewPrefix, "etc", "bash_completion.d", name), nil
		case ShellZsh:
			return filepath.Join(env.BrewPrefix, "share", "zsh", "site-functions", "_"+name), nil
		case ShellFish:
			return filepath.Join(env.BrewPrefix, "share", "fish", "vendor_completions.d", name+".fish"), nil
		}
	}
	switch shell {
	case ShellBash:
		return filepath.Join(env.Home, ".bash_completion.d", name), nil
	case ShellZsh:
		return filepath.Join(env.Home, ".zsh", "completions", "_"+name), nil
	case ShellFish:
		return filepath.Join(env.Home, ".config", "fish", "completions", name+".fish"), nil
	default:
		return "", errors.NewValidationError("shell", shell, "completions can only be installed for bash, zsh and fish")
	}
}

// Install writes the completion script for shell into its completion
// directory and reports progress to w.
func Install(fsys afero.Fs, env Env, root *cobra.Command, shell string, w io.Writer) error {
	target, err := Path(env, shell)
	if err != nil {
		return err
	}

	var script bytes.Buffer
	if err := Generate(root, shell, &script); err != nil {
		return fmt.Errorf("failed to generate %s completion: %w", shell, err)
	}
	if err := fsys.MkdirAll(filepath.Dir(target), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(target), err)
	}
	if err := afero.WriteFile(fsys, target, script.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", target, err)
	}

	fmt.Fprintf(w, "%s %s completions installed to: %s\n", success, shell, target)
	fmt.Fprintln(w, "Start a new shell session to enable completions.")
	return nil
}

// Uninstall removes the completion script for shell. A missing script is
// reported, not treated as an error.
func Uninstall(fsys afero.Fs, env Env, shell string, w io.Writer) error {
	target, err := Path(env, shell)
	if err != nil {
		return err
	}

	exists, err := afero.Exists(fsys, target)
	if err != nil {
		return errors.WrapIO("stat", target, err)
	}
	if !exists {
		fmt.Fprintf(w, "No %s completions found at: %s\n", shell, target)
		return nil
	}
	if err := fsys.Remove(target); err != nil {
		fmt.Fprintf(w, "%s Could not remove: %s\n", failure, target)
		return errors.WrapIO("delete", target, err)
	}
	fmt.Fprintf(w, "%s Removed %s completions from: %s\n", success, shell, target)
	return nil
}

// UninstallAll removes the completion scripts of every installable shell,
// collecting the failures.
func UninstallAll(fsys afero.Fs, env Env, w io.Writer) error {
	var errs []error
	for _, shell := range Installable {
		if err := Uninstall(fsys, env, shell, w); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
