// Package key prints the legend for listings and the dashboard keys.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/stepio/pkg/printers"
	"tableflip.dev/stepio/pkg/tui"
)

// Key prints what the marks in task listings mean and which keys the
// dashboard understands.
type Key struct{}

func (k *Key) Do(_ context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	marks := [][2]string{}
	for _, m := range printers.Marks() {
		marks = append(marks, [2]string{m.Symbol, m.Meaning})
	}
	k.table("Marks", marks)

	keys := [][2]string{}
	for _, b := range tui.Bindings() {
		keys = append(keys, [2]string{b.Keys, b.Help})
	}
	k.table("Dashboard", keys)

	menu := [][2]string{}
	for _, b := range tui.MenuBindings() {
		menu = append(menu, [2]string{b.Keys, b.Help})
	}
	k.table("Menus", menu)
	return nil
}

func (k *Key) table(title string, rows [][2]string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), bold.Sprint("Meaning"))
	for _, r := range rows {
		tbl.AddRow(r[0], r[1])
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}
