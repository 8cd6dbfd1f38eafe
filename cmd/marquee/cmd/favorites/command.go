// Package favorites implements the favorites command.
package favorites

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/favorites"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/softlists"
)

// target selects a system, optionally with a software item mounted.
type target struct {
	list     string
	software string
	instance string
	device   string
}

func (t *target) addFlags(cmd *cobra.Command, mount bool) {
	cmd.Flags().StringVar(&t.list, "list", "", "software list name")
	cmd.Flags().StringVar(&t.software, "software", "", "software item short name")
	cmd.MarkFlagsRequiredTogether("list", "software")
	if mount {
		cmd.Flags().StringVar(&t.instance, "instance", "", "media slot instance name, e.g. cartridge")
		cmd.Flags().StringVar(&t.device, "device", "", "media device type, e.g. cart")
	}
}

// session describes driver running with the target's software mounted.
func (t *target) session(fe *marquee.Frontend, driver string) (favorites.StaticSession, error) {
	d, ok := fe.Drivers().Find(driver)
	if !ok {
		return favorites.StaticSession{}, errors.NewNotFoundError("driver", driver)
	}
	sess := favorites.StaticSession{Driver: d}
	if t.list == "" {
		return sess, nil
	}

	sw, ok := findSoftware(fe.SoftwareLists(), t.list, t.software)
	if !ok {
		return favorites.StaticSession{}, errors.NewNotFoundError("software", t.list+":"+t.software)
	}
	img := favorites.MountedImage{
		Exists:           true,
		FromSoftwareList: true,
		ListName:         t.list,
		Instance:         t.instance,
		TypeName:         t.device,
		Software:         sw,
	}
	if len(sw.Parts) > 0 {
		img.Part = &sw.Parts[0]
	}
	sess.Mounted = []favorites.MountedImage{img}
	return sess, nil
}

func findSoftware(reg softlists.Registry, list, short string) (*softlists.Software, bool) {
	entries, ok := reg.Entries(list)
	if !ok {
		return nil, false
	}
	for i := range entries {
		if entries[i].ShortName == short {
			return &entries[i], true
		}
	}
	return nil, false
}

// NewCommand creates the favorites command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		GroupID: "core",
		Short:   "Manage favorite systems and software",
		Aliases: []string{"fav", "favs"},
		Example: `  marquee favorites list
  marquee favorites add pacman
  marquee favorites add nes --list nes --software smb --instance cartridge
  marquee favorites check nes --list nes --software smb --any-driver
  marquee favorites remove pacman`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newRemoveCommand(app))
	cmd.AddCommand(newCheckCommand(app))
	return cmd
}

func newListCommand(app application.Application) *cobra.Command {
	var canonical bool
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List favorites in display order",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fe, err := app.Frontend()
			if err != nil {
				return err
			}
			entries := fe.Favorites().EntriesForDisplay()
			if canonical {
				entries = fe.Favorites().Entries()
			}
			return output.Write(cmd.OutOrStdout(), output.Format(app.OutputFormat()), entries, output.FavoritesData(entries))
		},
	}
	cmd.Flags().BoolVar(&canonical, "canonical", false, "list in storage order instead of display order")
	return cmd
}

func newAddCommand(app application.Application) *cobra.Command {
	var t target
	cmd := &cobra.Command{
		Use:   "add <driver>",
		Short: "Add a system, or software running on it, to favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fe, err := app.Frontend()
			if err != nil {
				return err
			}
			sess, err := t.session(fe, args[0])
			if err != nil {
				return err
			}

			added := fe.Favorites().AddRunning(sess)
			ctx := logging.WithDriver(cmd.Context(), args[0])
			logging.FromContext(ctx).Info().
				Str("list", t.list).
				Str("software", t.software).
				Bool("added", added > 0).
				Msg("Updated favorites")
			return nil
		},
	}
	t.addFlags(cmd, true)
	return cmd
}

func newRemoveCommand(app application.Application) *cobra.Command {
	var t target
	cmd := &cobra.Command{
		Use:     "remove <driver>",
		Short:   "Remove a system, or software running on it, from favorites",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fe, err := app.Frontend()
			if err != nil {
				return err
			}
			sess, err := t.session(fe, args[0])
			if err != nil {
				return err
			}

			if !fe.Favorites().RemoveRunning(sess) {
				return errors.NewNotFoundError("favorite", key(args[0], t))
			}
			ctx := logging.WithDriver(cmd.Context(), args[0])
			logging.FromContext(ctx).Info().Str("favorite", key(args[0], t)).Msg("Removed favorite")
			return nil
		},
	}
	t.addFlags(cmd, false)
	return cmd
}

// checkResult is the output of favorites check.
type checkResult struct {
	Driver   string `json:"driver" yaml:"driver"`
	List     string `json:"list,omitempty" yaml:"list,omitempty"`
	Software string `json:"software,omitempty" yaml:"software,omitempty"`
	Favorite bool   `json:"favorite" yaml:"favorite"`
}

func newCheckCommand(app application.Application) *cobra.Command {
	var (
		t         target
		anyDriver bool
	)
	cmd := &cobra.Command{
		Use:   "check <driver>",
		Short: "Report whether a system or software item is a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fe, err := app.Frontend()
			if err != nil {
				return err
			}
			sess, err := t.session(fe, args[0])
			if err != nil {
				return err
			}

			store := fe.Favorites()
			var found bool
			if anyDriver && len(sess.Mounted) > 0 {
				found = store.IsFavoriteSoftware(favorites.Entry{
					ListName:   t.list,
					ShortName:  t.software,
					DriverName: sess.Driver.Name,
					Driver:     sess.Driver,
				})
			} else {
				found = store.IsFavoriteRunning(sess)
			}

			result := checkResult{Driver: args[0], List: t.list, Software: t.software, Favorite: found}
			table := output.Data{
				Headers: []string{"Driver", "List", "Software", "Favorite"},
				Rows:    [][]string{{result.Driver, result.List, result.Software, yesNo(found)}},
			}
			return output.Write(cmd.OutOrStdout(), output.Format(app.OutputFormat()), result, table)
		},
	}
	t.addFlags(cmd, false)
	cmd.Flags().BoolVar(&anyDriver, "any-driver", false, "match the software item on any system")
	return cmd
}

func key(driver string, t target) string {
	if t.list == "" {
		return driver
	}
	return driver + "/" + t.list + ":" + t.software
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
