package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/model"
)

// EventOptions are the editable event fields.
type EventOptions struct {
	Title        string
	Start        string
	End          string
	On           string
	Participants int
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Start, "start", "s", "", "Start time, HH:MM.")
	cmd.Flags().StringVarP(&o.End, "end", "e", "", "End time, HH:MM.")
	cmd.Flags().StringVar(&o.On, "on", "", "Day of the event, YYYY-MM-DD, M/D, today or tomorrow.")
	cmd.Flags().IntVarP(&o.Participants, "participants", "n", 0, "How many people attend.")
}

func AddEventTitleArg(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "", "New title.")
}

func (o *EventOptions) Fields(title string) (model.EventFields, error) {
	date, err := ISO(o.On)
	if err != nil {
		return model.EventFields{}, err
	}
	return model.EventFields{
		Title:        title,
		StartTime:    o.Start,
		EndTime:      o.End,
		Date:         date,
		Participants: o.Participants,
	}, nil
}

func (o *EventOptions) Update(cmd *cobra.Command) (model.EventUpdate, error) {
	var u model.EventUpdate
	f := cmd.Flags()
	if f.Changed("title") {
		u.Title = model.String(o.Title)
	}
	if f.Changed("start") {
		u.StartTime = model.String(o.Start)
	}
	if f.Changed("end") {
		u.EndTime = model.String(o.End)
	}
	if f.Changed("on") {
		date, err := ISO(o.On)
		if err != nil {
			return u, err
		}
		u.Date = model.String(date)
	}
	if f.Changed("participants") {
		u.Participants = model.Int(o.Participants)
	}
	return u, nil
}
