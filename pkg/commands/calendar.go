package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/commands/options"
	"tableflip.dev/stepio/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var (
		agenda bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month with the days that have tasks or events.",
		Example: `
stepio calendar --on 2020-03-15 --agenda
stepio calendar --watch
`,
		Args: cobra.NoArgs,
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
			c := calendar.Calendar{App: a, Agenda: agenda, Watch: watch, Clear: watch}
			if on != nil {
				c.On = *on
			} else {
				c.On = time.Now()
			}
			return output.HandleError(c.Do(cmd.Context()))
		},
	}
	session(cmd)
	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVar(&agenda, "agenda", false, "Also list every day of the month that has items.")
	cmd.Flags().BoolVar(&watch, "watch", false, "Redraw whenever the stored data changes.")
	topLevel.AddCommand(cmd)
}
