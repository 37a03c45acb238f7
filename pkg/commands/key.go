package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "What the marks in listings mean and the dashboard keys.",
		Example: `
stepio key
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := key.Key{}
			return output.HandleError(k.Do(cmd.Context()))
		},
	}
	noApp(cmd)

	topLevel.AddCommand(cmd)
}
