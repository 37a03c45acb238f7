package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/runner/clock"
	"tableflip.dev/stepio/pkg/timeutil"
)

func addClock(topLevel *cobra.Command) {
	var (
		every string
		once  bool
	)

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Show the time of day, refreshed until interrupted.",
		Example: `
stepio clock --every 30s
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			c := clock.Clock{Every: a.ClockEvery(), Once: once}
			if cmd.Flags().Changed("every") {
				d, _, err := timeutil.ParseWindow(every)
				if err != nil {
					return output.HandleError(err)
				}
				c.Every = d
			}
			return output.HandleError(c.Do(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&every, "every", "", "Refresh interval, like 1m or 30s. Defaults to clock_every.")
	cmd.Flags().BoolVar(&once, "once", false, "Print the time once and exit.")
	topLevel.AddCommand(cmd)
}
