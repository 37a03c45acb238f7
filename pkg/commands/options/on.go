package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/model"
)

const layoutShort = "1/2"

// OnOptions selects a calendar day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day: --on=2020-03-15, --on=3/15, today, tomorrow or yesterday.`)
}

// GetOn returns nil when no day was given.
func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := ParseDay(o.OnString, time.Now())
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseDay reads an ISO date, a month/day in now's year, or a relative word.
func ParseDay(raw string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	if t, err := model.ParseDate(raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutShort, raw, time.Local)
	if err != nil {
		return time.Time{}, model.Invalid(fmt.Sprintf("cannot read day %q", raw), err)
	}
	return t.AddDate(now.Year(), 0, 0), nil
}

// ISO turns raw into a YYYY-MM-DD date, defaulting to today when empty.
func ISO(raw string) (string, error) {
	if raw == "" {
		raw = "today"
	}
	t, err := ParseDay(raw, time.Now())
	if err != nil {
		return "", err
	}
	return model.FormatDate(t), nil
}
