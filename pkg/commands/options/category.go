package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/model"
)

// CategoryOptions are the editable category fields.
type CategoryOptions struct {
	Name  string
	Color string
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVar(&o.Color, "color", "", "Palette color: yellow, blue, green, red, purple, pink, indigo or gray.")
}

func AddCategoryNameArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "New name.")
}

func (o *CategoryOptions) Fields(name string) (model.CategoryFields, error) {
	c, err := model.ParseColor(o.Color)
	if err != nil {
		return model.CategoryFields{}, err
	}
	return model.CategoryFields{Name: name, Color: c}, nil
}

func (o *CategoryOptions) Update(cmd *cobra.Command) (model.CategoryUpdate, error) {
	var u model.CategoryUpdate
	f := cmd.Flags()
	if f.Changed("name") {
		u.Name = model.String(o.Name)
	}
	if f.Changed("color") {
		c, err := model.ParseColor(o.Color)
		if err != nil {
			return u, err
		}
		u.Color = &c
	}
	return u, nil
}
