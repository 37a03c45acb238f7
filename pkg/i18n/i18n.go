// Package i18n translates interface strings. Keys are the English phrases
// themselves, so a missing translation falls back to readable text.
package i18n

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"tableflip.dev/stepio/pkg/model"
)

// Supported languages. The first is the fallback.
var supported = []language.Tag{language.English, language.Indonesian}

var matcher = language.NewMatcher(supported)

// Persister keeps the chosen language between runs.
type Persister interface {
	ReadLanguage() (string, error)
	WriteLanguage(tag string) error
}

// Translator looks up phrases in the current language.
type Translator struct {
	mu        sync.RWMutex
	persister Persister
	logger    *zap.Logger
	lang      language.Tag
}

// New restores the stored language, falling back to def and then English.
func New(p Persister, def string, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Translator{persister: p, logger: logger, lang: language.English}
	if tag, err := Match(def); err == nil {
		t.lang = tag
	}
	if p == nil {
		return t
	}
	stored, err := p.ReadLanguage()
	if err != nil {
		logger.Warn("i18n: read language", zap.Error(err))
		return t
	}
	if stored == "" {
		return t
	}
	if tag, err := Match(stored); err == nil {
		t.lang = tag
	} else {
		logger.Info("i18n: ignoring stored language", zap.String("language", stored))
	}
	return t
}

// Match resolves raw to one of the supported languages. Regional variants
// such as en-GB resolve to their base language.
func Match(raw string) (language.Tag, error) {
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, model.Invalid(fmt.Sprintf("i18n: bad language %q", raw), err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return language.Und, model.Invalid(fmt.Sprintf("i18n: unsupported language %q", raw), nil)
	}
	return supported[idx], nil
}

// Supported returns the language codes that can be selected.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, tag.String())
	}
	return out
}

// Language returns the current language code, "en" or "id".
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang.String()
}

// SetLanguage switches language and stores the choice. A storage failure is
// logged and the switch still applies for this run.
func (t *Translator) SetLanguage(raw string) error {
	tag, err := Match(raw)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.lang = tag
	t.mu.Unlock()
	if t.persister != nil {
		if err := t.persister.WriteLanguage(tag.String()); err != nil {
			t.logger.Warn("i18n: write language", zap.Error(err))
		}
	}
	return nil
}

// T translates key, returning key itself when there is no entry.
func (t *Translator) T(key string) string {
	t.mu.RLock()
	table := catalog[t.lang.String()]
	t.mu.RUnlock()
	if v, ok := table[key]; ok && v != "" {
		return v
	}
	return key
}

// Tf translates format and applies args.
func (t *Translator) Tf(format string, args ...interface{}) string {
	return fmt.Sprintf(t.T(format), args...)
}
