package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/model"
	"tableflip.dev/stepio/pkg/overlay"
	"tableflip.dev/stepio/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	var open string
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the terminal dashboard",
		Example: `
stepio ui
stepio ui --open add-task
`,
		Annotations: map[string]string{annotationApp: appTUI},
		ValidArgs:   []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var opts []tui.Option
			if open != "" {
				t, err := startModal(open)
				if err != nil {
					return err
				}
				opts = append(opts, tui.WithModal(t))
			}
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			if _, err := a.RequireSession(); err != nil {
				return err
			}
			return tui.Run(cmd.Context(), a, opts...)
		},
	}
	cmd.Flags().StringVar(&open, "open", "", fmt.Sprintf("Open a modal on start, one of: %s.", strings.Join(startModalNames(), ", ")))

	topLevel.AddCommand(cmd)
}

func startModal(raw string) (overlay.ModalType, error) {
	t, err := overlay.ParseModalType(raw)
	if err != nil {
		return "", err
	}
	for _, s := range tui.StartModals() {
		if s == t {
			return t, nil
		}
	}
	return "", model.Invalid(fmt.Sprintf("%s needs a selected item and cannot be opened on start", t), nil)
}

func startModalNames() []string {
	var names []string
	for _, t := range tui.StartModals() {
		names = append(names, string(t))
	}
	return names
}
