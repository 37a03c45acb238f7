package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/app"
	"tableflip.dev/stepio/pkg/commands/options"
	"tableflip.dev/stepio/pkg/logging"
	"tableflip.dev/stepio/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

// Command annotations read by the root pre-run hook.
const (
	annotationApp = "stepio/app"

	// appNone skips opening the store entirely.
	appNone = "none"
	// appSession also requires a signed-in user.
	appSession = "session"
	// appTUI logs to a file so the alt screen stays clean.
	appTUI = "tui"
)

type appKey struct{}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "stepio",
		Annotations: map[string]string{annotationApp: appNone},
		Short:       options.Wrap80("Tasks, events and categories for the week ahead, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode := cmd.Annotations[annotationApp]
			if mode == appNone {
				return nil
			}
			a, err := openApp(cmd.Context(), mode)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}
			ctx := logging.WithContext(cmd.Context(), a.Logger)
			cmd.SetContext(context.WithValue(ctx, appKey{}, a))
			if mode == appSession {
				if _, err := a.RequireSession(); err != nil {
					cmd.SilenceUsage = true
					return err
				}
			}
			return nil
		},
	}
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

// Execute runs the command tree and closes the App the pre-run hook opened.
// cobra skips post-run hooks when a command fails, so closing happens here
// for every outcome.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	c, err := cmd.ExecuteContextC(ctx)
	if c == nil {
		return err
	}
	if a := appFrom(c); a != nil {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func AddCommands(topLevel *cobra.Command) {
	addAuth(topLevel)
	addTask(topLevel)
	addPinned(topLevel)
	addEvent(topLevel)
	addCategory(topLevel)
	addCalendar(topLevel)
	addClock(topLevel)
	addLanguage(topLevel)
	addUI(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}

func openApp(ctx context.Context, mode string) (*app.App, error) {
	s, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	var opts []app.Option
	if mode == appTUI {
		if err := os.MkdirAll(s.Path, 0o755); err != nil {
			return nil, err
		}
		opts = append(opts, app.WithLogOutput(filepath.Join(s.Path, "stepio.log")))
	}
	return app.Open(ctx, s, opts...)
}

func appFrom(cmd *cobra.Command) *app.App {
	if cmd.Context() == nil {
		return nil
	}
	a, _ := cmd.Context().Value(appKey{}).(*app.App)
	return a
}

var errNoApp = errors.New("stepio: store was not opened for this command")

// mustApp returns the App opened by the root pre-run hook.
func mustApp(cmd *cobra.Command) (*app.App, error) {
	if a := appFrom(cmd); a != nil {
		return a, nil
	}
	return nil, errNoApp
}

func session(cmd *cobra.Command) {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationApp] = appSession
}

func noApp(cmd *cobra.Command) {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationApp] = appNone
}
