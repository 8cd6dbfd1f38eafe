// Package categories implements the categories command.
package categories

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
)

// NewCommand creates the categories command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories [file]",
		GroupID: "core",
		Short:   "List category files and their categories",
		Aliases: []string{"category", "cat"},
		Args:    cobra.MaximumNArgs(1),
		Long: `Categories lists the category files found in the category directory.

Given a file name, it lists the categories defined in that file in
collation order.`,
		Example: `  marquee categories                       # List indexed category files
  marquee categories genre.ini             # List categories in genre.ini
  marquee categories show genre.ini Maze   # List systems in a category`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fe, err := app.Frontend()
			if err != nil {
				return err
			}
			index := fe.Categories()
			format := output.Format(app.OutputFormat())

			if len(args) == 0 {
				files := index.Files()
				app.Logger().Debug().Int("files", len(files)).Msg("Listing category files")
				return output.Write(cmd.OutOrStdout(), format, files, output.CategoryFilesData(files))
			}

			i, ok := index.FindFile(args[0])
			if !ok {
				return errors.NewNotFoundError("category file", args[0])
			}
			file, _ := index.File(i)
			return output.Write(cmd.OutOrStdout(), format, file, output.CategoriesData(file))
		},
	}

	cmd.AddCommand(NewShowCommand(app))
	return cmd
}

// NewShowCommand creates the categories show subcommand.
func NewShowCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file> <category>",
		Short: "List the systems in a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fe, err := app.Frontend()
			if err != nil {
				return err
			}

			set, err := fe.Categories().QueryCategory(args[0], args[1])
			if err != nil {
				return err
			}
			systems := set.Sorted()
			ctx := logging.WithCategoryFile(cmd.Context(), args[0])
			logging.FromContext(ctx).Debug().
				Str("category", args[1]).
				Int("systems", len(systems)).
				Msg("Queried category")
			return output.Write(cmd.OutOrStdout(), output.Format(app.OutputFormat()), systems, output.DriversData(systems))
		},
	}
}
