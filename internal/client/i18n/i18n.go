// Package i18n holds the English and Arabic string tables and the
// persisted language preference.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	"github.com/levantva/crewcenter/internal/client/repositories/metadata"
	"github.com/levantva/crewcenter/internal/common"
	"github.com/levantva/crewcenter/internal/logging"
)

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Languages lists the supported codes.
var Languages = []Language{English, Arabic}

// Direction is the text direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var ErrUnsupportedLanguage = common.ErrUnsupportedLanguage

//go:embed en.json ar.json
var tablesFS embed.FS

var tables = mustLoadTables()

func mustLoadTables() map[Language]map[string]string {
	out := make(map[Language]map[string]string, len(Languages))
	for _, lang := range Languages {
		raw, err := tablesFS.ReadFile(string(lang) + ".json")
		if err != nil {
			panic(err)
		}
		var t map[string]string
		if err := json.Unmarshal(raw, &t); err != nil {
			panic(fmt.Errorf("parse %s table: %w", lang, err))
		}
		out[lang] = t
	}
	return out
}

// Parse validates a language code.
func Parse(code string) (Language, error) {
	l := Language(code)
	if _, ok := tables[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return l, nil
}

// DirectionOf returns rtl for Arabic and ltr otherwise.
func DirectionOf(l Language) Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// Table returns a copy of the strings of l.
func Table(l Language) (map[string]string, error) {
	t, ok := tables[l]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, l)
	}
	return maps.Clone(t), nil
}

// Translator looks keys up in the current language and keeps the choice
// in the metadata repository under common.LanguageKey.
type Translator struct {
	repo metadata.Repository
	log  logging.Logger

	mu   sync.RWMutex
	lang Language
}

func NewTranslator(repo metadata.Repository, def Language, log logging.Logger) *Translator {
	if _, ok := tables[def]; !ok {
		def = English
	}
	return &Translator{repo: repo, lang: def, log: log.With("module", "i18n")}
}

// Restore loads the saved language. An unknown saved value is ignored.
func (t *Translator) Restore(ctx context.Context) error {
	raw, err := t.repo.Get(ctx, common.LanguageKey)
	if err != nil {
		return fmt.Errorf("restore language: %w", err)
	}
	if raw == nil {
		return nil
	}
	l, err := Parse(string(raw))
	if err != nil {
		t.log.Warn(ctx, "ignoring saved language", "value", string(raw))
		return nil
	}
	t.mu.Lock()
	t.lang = l
	t.mu.Unlock()
	return nil
}

// SetLanguage switches and persists the language.
func (t *Translator) SetLanguage(ctx context.Context, code string) error {
	l, err := Parse(code)
	if err != nil {
		return err
	}
	if err := t.repo.Set(ctx, common.LanguageKey, []byte(l)); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	t.mu.Lock()
	t.lang = l
	t.mu.Unlock()
	t.log.Info(ctx, "language changed", "language", l)
	return nil
}

func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

func (t *Translator) Direction() Direction {
	return DirectionOf(t.Language())
}

// T returns the string for key, or key itself when the table has none.
func (t *Translator) T(key string) string {
	if v, ok := tables[t.Language()][key]; ok && v != "" {
		return v
	}
	return key
}
