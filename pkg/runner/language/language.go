// Package language shows or changes the interface language.
package language

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/stepio/pkg/app"
	"tableflip.dev/stepio/pkg/i18n"
)

type Language struct {
	App *app.App
	// Set switches to this language when non-empty.
	Set string
}

func (l *Language) Do(_ context.Context) error {
	tr := l.App.Translator
	if l.Set != "" {
		if err := tr.SetLanguage(l.Set); err != nil {
			return err
		}
	}
	names := map[string]string{"en": tr.T("English"), "id": tr.T("Indonesian")}
	cur := tr.Language()
	b := color.New(color.Bold)
	_, _ = fmt.Fprintf(color.Output, "%s: %s\n", tr.T("Language"), b.Sprint(names[cur]))

	others := make([]string, 0, len(i18n.Supported()))
	for _, code := range i18n.Supported() {
		if code != cur {
			others = append(others, fmt.Sprintf("%s (%s)", code, names[code]))
		}
	}
	_, _ = color.New(color.Faint).Fprintf(color.Output, "also: %s\n", strings.Join(others, ", "))
	return nil
}
