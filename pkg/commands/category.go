package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/commands/options"
	"tableflip.dev/stepio/pkg/runner/category"
)

func addCategory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories", "cat"},
		Short:   "Color-coded task categories.",
	}

	co := &options.CategoryOptions{}
	var name string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a category",
		Example: `
stepio category add Health --color green
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			if err := options.PromptColor(cmd, "color"); err != nil {
				return err
			}
			fields, err := co.Fields(name)
			if err != nil {
				return output.HandleError(err)
			}
			s := category.Add{App: a, Fields: fields}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(add)
	options.AddCategoryArgs(add, co)
	cmd.AddCommand(add)

	uco := &options.CategoryOptions{}
	edit := &cobra.Command{
		Use:   "edit ID",
		Short: "Rename or recolor a category",
		Long: options.Wrap80("Tasks keep the category name they were given, so renaming a " +
			"category leaves its old tasks under the old name."),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			u, err := uco.Update(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			s := category.Edit{App: a, ID: args[0], Update: u}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(edit)
	options.AddCategoryArgs(edit, uco)
	options.AddCategoryNameArg(edit, uco)
	cmd.AddCommand(edit)

	del := &cobra.Command{
		Use:     "delete ID...",
		Aliases: []string{"rm"},
		Short:   "Delete categories",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			s := category.Delete{App: a, IDs: args}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(del)
	cmd.AddCommand(del)

	io := &options.IDOptions{}
	var palette bool
	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List categories with their task counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			s := category.List{App: a, ShowID: io.ShowID, JSON: output.JSON, Palette: palette}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(list)
	options.AddShowIDArgs(list, io)
	list.Flags().BoolVar(&palette, "palette", false, "Show the colors a category can use.")
	cmd.AddCommand(list)

	topLevel.AddCommand(cmd)
}
