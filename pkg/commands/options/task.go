package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/model"
)

// TaskOptions are the editable task fields.
type TaskOptions struct {
	Description string
	Time        string
	On          string
	Category    string
	Icon        string
	Title       string
	Pin         bool
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "", "Longer notes for the task.")
	cmd.Flags().StringVarP(&o.Time, "time", "t", "", "Time of day, HH:MM.")
	cmd.Flags().StringVar(&o.On, "on", "", "Day of the task, YYYY-MM-DD, M/D, today or tomorrow.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "", "Category name.")
	cmd.Flags().StringVar(&o.Icon, "icon", "", "An emoji shown before the title.")
}

func AddTaskTitleArg(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "", "New title.")
}

func AddPinArg(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().BoolVar(&o.Pin, "pin", false, "Also pin the task to the weekly list.")
}

// Fields builds creation input. A missing day means today.
func (o *TaskOptions) Fields(title string) (model.TaskFields, error) {
	date, err := ISO(o.On)
	if err != nil {
		return model.TaskFields{}, err
	}
	return model.TaskFields{
		Title:       title,
		Description: o.Description,
		Time:        o.Time,
		Date:        date,
		Category:    o.Category,
		Icon:        o.Icon,
	}, nil
}

// Update builds a partial update from only the flags that were set.
func (o *TaskOptions) Update(cmd *cobra.Command) (model.TaskUpdate, error) {
	var u model.TaskUpdate
	f := cmd.Flags()
	if f.Changed("title") {
		u.Title = model.String(o.Title)
	}
	if f.Changed("description") {
		u.Description = model.String(o.Description)
	}
	if f.Changed("time") {
		u.Time = model.String(o.Time)
	}
	if f.Changed("on") {
		date, err := ISO(o.On)
		if err != nil {
			return u, err
		}
		u.Date = model.String(date)
	}
	if f.Changed("category") {
		u.Category = model.String(o.Category)
	}
	if f.Changed("icon") {
		u.Icon = model.String(o.Icon)
	}
	return u, nil
}
