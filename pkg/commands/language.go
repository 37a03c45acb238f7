package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/i18n"
	"tableflip.dev/stepio/pkg/runner/language"
)

func addLanguage(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "language [CODE]",
		Aliases:   []string{"lang"},
		Short:     "Show or change the interface language.",
		ValidArgs: i18n.Supported(),
		Example: `
stepio language id
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			l := language.Language{App: a}
			if len(args) == 1 {
				l.Set = args[0]
			}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(cmd)
}
