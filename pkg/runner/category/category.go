// Package category runs the category commands.
package category

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/stepio/pkg/app"
	"tableflip.dev/stepio/pkg/model"
	"tableflip.dev/stepio/pkg/printers"
)

type Add struct {
	App    *app.App
	Fields model.CategoryFields
}

func (a *Add) Do(ctx context.Context) error {
	if _, err := a.App.Planner.AddCategory(ctx, a.Fields); err != nil {
		return err
	}
	return list(a.App, true)
}

type Edit struct {
	App    *app.App
	ID     string
	Update model.CategoryUpdate
}

func (e *Edit) Do(ctx context.Context) error {
	if _, err := e.App.Planner.UpdateCategory(ctx, e.ID, e.Update); err != nil {
		return err
	}
	return list(e.App, true)
}

type Delete struct {
	App *app.App
	IDs []string
}

func (d *Delete) Do(ctx context.Context) error {
	for _, id := range d.IDs {
		if err := d.App.Planner.DeleteCategory(ctx, id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(color.Output, "Deleted category %s.\n", id)
	}
	return d.App.Unsaved()
}

// List prints every category with how many tasks carry its name.
type List struct {
	App     *app.App
	ShowID  bool
	JSON    bool
	Palette bool
}

func (l *List) Do(_ context.Context) error {
	if l.Palette {
		pp := printers.PrettyPrint{}
		pp.Palette()
		return nil
	}
	if l.JSON {
		type row struct {
			model.Category
			Tasks int `json:"tasks"`
		}
		cats := l.App.Planner.Categories()
		rows := make([]row, 0, len(cats))
		for _, c := range cats {
			rows = append(rows, row{Category: c, Tasks: l.App.Planner.CategoryTaskCount(c.ID)})
		}
		return printers.JSON(nil, rows)
	}
	return list(l.App, l.ShowID)
}

func list(a *app.App, showID bool) error {
	cats := a.Planner.Categories()
	pp := printers.PrettyPrint{ShowID: showID}
	pp.TitleWithCount(a.Translator.T("Categories"), a.Planner.ActiveCategoriesCount(), a.Translator.T("active categories"))
	pp.Categories(func(c model.Category) int { return a.Planner.CategoryTaskCount(c.ID) }, cats...)
	return a.Unsaved()
}
