// Package info reports where stepio keeps its data.
package info

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/stepio/pkg/app"
)

type Info struct {
	App *app.App
}

func (n *Info) Do(_ context.Context) error {
	if override := os.Getenv("STEPIO_CONFIG_PATH"); override != "" {
		fmt.Println("STEPIO_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("STEPIO_CONFIG_PATH env var not set")
	}

	s := n.App.Settings
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("path"), s.BasePath())
	tbl.AddRow(bold.Sprint("driver"), s.Driver())
	tbl.AddRow(bold.Sprint("language"), n.App.Translator.Language())
	tbl.AddRow(bold.Sprint("clock every"), n.App.ClockEvery())
	tbl.AddRow(bold.Sprint("auth latency"), s.AuthLatency)

	st := n.App.Session.State()
	who := st.Status().String()
	if st.User != nil {
		who = fmt.Sprintf("%s <%s>", st.User.Name, st.User.Email)
	}
	tbl.AddRow(bold.Sprint("session"), who)

	snap := n.App.Planner.Snapshot()
	tbl.AddRow(bold.Sprint("tasks"), len(snap.Tasks))
	tbl.AddRow(bold.Sprint("pinned"), len(snap.PinnedTasks))
	tbl.AddRow(bold.Sprint("events"), len(snap.Events))
	tbl.AddRow(bold.Sprint("categories"), len(snap.Categories))

	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
