package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/commands/options"
	"tableflip.dev/stepio/pkg/runner/task"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Add, change and list tasks.",
	}

	addTaskAdd(cmd)
	addTaskEdit(cmd)
	addTaskDelete(cmd)
	addTaskDone(cmd)
	addTaskPin(cmd, "pin", false)
	addTaskPin(cmd, "unpin", true)
	addTaskList(cmd)
	addTaskShow(cmd)
	addTaskUpcoming(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(parent *cobra.Command) {
	to := &options.TaskOptions{}
	io := &options.IDOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a task",
		Example: `
stepio task add call the dentist --on tomorrow --time 09:30 --category Health
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			fields, err := to.Fields(title)
			if err != nil {
				return output.HandleError(err)
			}
			s := task.Add{App: a, Fields: fields, Pin: to.Pin, ShowID: io.ShowID}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(cmd)
	options.AddTaskArgs(cmd, to)
	options.AddPinArg(cmd, to)
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addTaskEdit(parent *cobra.Command) {
	to := &options.TaskOptions{}
	var refresh bool

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of a task",
		Example: `
stepio task edit 3f2c --title "call the dentist again" --time 10:00
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			u, err := to.Update(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			s := task.Edit{App: a, ID: args[0], Update: u, Refresh: refresh}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(cmd)
	options.AddTaskArgs(cmd, to)
	options.AddTaskTitleArg(cmd, to)
	cmd.Flags().BoolVar(&refresh, "refresh-pin", false, "Also update the pinned copy of the task.")
	parent.AddCommand(cmd)
}

func addTaskDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete ID...",
		Aliases: []string{"rm"},
		Short:   "Delete tasks, pinned copies included",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			s := task.Delete{App: a, IDs: args}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(cmd)
	parent.AddCommand(cmd)
}

func addTaskDone(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "done ID...",
		Short: "Toggle completion of tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			s := task.Done{App: a, IDs: args}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(cmd)
	parent.AddCommand(cmd)
}

func addTaskPin(parent *cobra.Command, use string, unpin bool) {
	short := "Pin tasks to the weekly list"
	if unpin {
		short = "Remove tasks from the weekly list"
	}
	cmd := &cobra.Command{
		Use:   use + " ID...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			s := task.Pin{App: a, IDs: args, Unpin: unpin}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(cmd)
	parent.AddCommand(cmd)
}

func addTaskList(parent *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	var (
		pinned   bool
		done     bool
		open     bool
		category string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Example: `
stepio task list --on today --open
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
			s := task.List{
				App:      a,
				On:       on,
				Pinned:   pinned,
				Category: category,
				ShowID:   io.ShowID,
				JSON:     output.JSON,
			}
			switch {
			case done && open:
				return output.HandleError(errors.New("--done and --open exclude each other"))
			case done:
				s.Completed = &done
			case open:
				completed := false
				s.Completed = &completed
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(cmd)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&pinned, "pinned", false, "Only the weekly pinned tasks.")
	cmd.Flags().BoolVar(&done, "done", false, "Only completed tasks.")
	cmd.Flags().BoolVar(&open, "open", false, "Only tasks still to do.")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only tasks in this category.")
	parent.AddCommand(cmd)
}

func addTaskShow(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one task in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			s := task.Show{App: a, ID: args[0], JSON: output.JSON}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(cmd)
	parent.AddCommand(cmd)
}

func addTaskUpcoming(parent *cobra.Command) {
	io := &options.IDOptions{}
	var window string

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Open tasks and events for the days ahead",
		Example: `
stepio task upcoming --window 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			s := task.Upcoming{App: a, Window: window, ShowID: io.ShowID, JSON: output.JSON}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(cmd)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVarP(&window, "window", "w", "1w", "How far ahead to look, like 3d, 2w or 1w3d.")
	parent.AddCommand(cmd)
}

// addPinned is a shortcut for `task list --pinned`.
func addPinned(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "pinned",
		Short: "List the weekly pinned tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			s := task.List{App: a, Pinned: true, ShowID: io.ShowID, JSON: output.JSON}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	session(cmd)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
