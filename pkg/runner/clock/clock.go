// Package clock shows the current time of day, refreshed until interrupted.
package clock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/stepio/pkg/timeutil"
)

type Clock struct {
	Every time.Duration
	// Once prints a single reading and returns.
	Once bool
	Out  io.Writer
	// TTY overrides terminal detection when set.
	TTY *bool
}

func (c *Clock) Do(ctx context.Context) error {
	out := c.Out
	if out == nil {
		out = color.Output
	}
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if c.TTY != nil {
		tty = *c.TTY
	}
	big := color.New(color.Bold)

	show := func(now time.Time) {
		if tty {
			// Redraw the same line.
			_, _ = fmt.Fprint(out, "\r")
			_, _ = big.Fprint(out, timeutil.FormatClock(now))
			return
		}
		_, _ = fmt.Fprintln(out, timeutil.FormatClock(now))
	}

	if c.Once {
		show(time.Now())
		if tty {
			_, _ = fmt.Fprintln(out, "")
		}
		return nil
	}

	err := timeutil.Ticker(ctx, c.Every, show)
	if tty {
		_, _ = fmt.Fprintln(out, "")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
