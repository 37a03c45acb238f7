package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/commands/options"
	"tableflip.dev/stepio/pkg/runner/event"
)

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"events"},
		Short:   "Schedule calendar events.",
	}

	eo := &options.EventOptions{}
	var title string
	add := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add an event",
		Example: `
stepio event add team sync --on 3/16 --start 10:00 --end 10:30 -n 4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			fields, err := eo.Fields(title)
			if err != nil {
				return output.HandleError(err)
			}
			s := event.Add{App: a, Fields: fields}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(add)
	options.AddEventArgs(add, eo)
	cmd.AddCommand(add)

	ueo := &options.EventOptions{}
	edit := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			u, err := ueo.Update(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			s := event.Edit{App: a, ID: args[0], Update: u}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(edit)
	options.AddEventArgs(edit, ueo)
	options.AddEventTitleArg(edit, ueo)
	cmd.AddCommand(edit)

	del := &cobra.Command{
		Use:     "delete ID...",
		Aliases: []string{"rm"},
		Short:   "Delete events",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			s := event.Delete{App: a, IDs: args}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(del)
	cmd.AddCommand(del)

	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List events",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s := event.List{App: a, On: on, ShowID: io.ShowID, JSON: output.JSON}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(list)
	options.AddOnArgs(list, oo)
	options.AddShowIDArgs(list, io)
	cmd.AddCommand(list)

	topLevel.AddCommand(cmd)
}
