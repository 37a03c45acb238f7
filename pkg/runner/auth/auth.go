// Package auth runs the sign-in commands against the mock session store.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/stepio/pkg/app"
)

// Login signs in with an email and password.
type Login struct {
	App      *app.App
	Email    string
	Password string
}

func (l *Login) Do(ctx context.Context) error {
	if _, err := l.App.Session.Login(ctx, l.Email, l.Password); err != nil {
		return err
	}
	return greet(l.App)
}

// Register creates an account and signs in.
type Register struct {
	App      *app.App
	Name     string
	Email    string
	Password string
}

func (r *Register) Do(ctx context.Context) error {
	if _, err := r.App.Session.Register(ctx, r.Name, r.Email, r.Password); err != nil {
		return err
	}
	return greet(r.App)
}

// Logout forgets the stored session.
type Logout struct {
	App *app.App
}

func (l *Logout) Do(_ context.Context) error {
	l.App.Session.Logout()
	_, _ = fmt.Fprintln(color.Output, "Signed out.")
	return nil
}

// WhoAmI prints the signed-in user.
type WhoAmI struct {
	App *app.App
}

func (w *WhoAmI) Do(_ context.Context) error {
	u, err := w.App.RequireSession()
	if err != nil {
		return err
	}
	b := color.New(color.Bold)
	faint := color.New(color.Faint)
	_, _ = b.Fprintln(color.Output, u.Name)
	_, _ = faint.Fprintf(color.Output, "%s (id %s)\n", u.Email, u.ID)
	return nil
}

// ForgotPassword requests a reset link. Nothing is sent.
type ForgotPassword struct {
	App   *app.App
	Email string
}

func (f *ForgotPassword) Do(ctx context.Context) error {
	if f.Email == "" {
		return errors.New("an email is required")
	}
	if _, err := f.App.Session.ForgotPassword(ctx, f.Email); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "If %s has an account, a reset link is on its way.\n", f.Email)
	return nil
}

func greet(a *app.App) error {
	u, err := a.RequireSession()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, a.Translator.Tf("Signed in as %s", color.New(color.Bold).Sprint(u.Name)))
	return nil
}
