package options

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/stepio/pkg/model"
)

// Interactive reports whether stdin is a terminal a prompt can read from.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

// PromptMissing asks for flag name when it was not given and a terminal is
// attached. Secret flags are masked.
func PromptMissing(cmd *cobra.Command, name string, secret bool) error {
	f := cmd.Flags().Lookup(name)
	if f == nil || f.Changed || !Interactive() {
		return nil
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s (%s)", f.Usage, asFlags(f)),
		Templates: templates,
		Validate: func(input string) error {
			if input == "" && f.DefValue == "" {
				return errors.New("empty")
			}
			return nil
		},
	}
	if secret {
		prompt.Mask = '*'
	}

	result, err := prompt.Run()
	if err != nil {
		return err
	}
	if result == "" {
		result = f.DefValue
	}
	return cmd.Flags().Set(name, result)
}

// PromptColor offers the palette for flag name when it was not given.
func PromptColor(cmd *cobra.Command, name string) error {
	f := cmd.Flags().Lookup(name)
	if f == nil || f.Changed || !Interactive() {
		return nil
	}

	type item struct {
		Name   string
		Swatch string
	}
	var items []item
	for _, c := range model.Palette() {
		items = append(items, item{Name: c.Name(), Swatch: string(c)})
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ .Name | cyan }} ({{ .Swatch | faint }})",
		Inactive: "  {{ .Name }} ({{ .Swatch | faint }})",
		Selected: "Color: {{ .Name | bold }}",
	}
	prompt := promptui.Select{
		Label:     "Category color",
		Items:     items,
		Templates: templates,
		Size:      len(items),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return err
	}
	return cmd.Flags().Set(name, items[i].Name)
}
