// Package i18n resolves translation keys for the two supported locales. The
// bundles are embedded at build time; an unknown key resolves to itself so a
// missing translation degrades to something greppable instead of an error.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed messages/*.json
var messageFiles embed.FS

const (
	LocaleEN = "en"
	LocaleAR = "ar"
)

// TranslateFunc resolves a message key to display text.
type TranslateFunc func(key string) string

var bundles = loadBundles()

func loadBundles() map[string]map[string]string {
	out := make(map[string]map[string]string, 2)
	for _, locale := range []string{LocaleEN, LocaleAR} {
		raw, err := messageFiles.ReadFile(fmt.Sprintf("messages/%s.json", locale))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing bundle for %q: %v", locale, err))
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			panic(fmt.Sprintf("i18n: invalid bundle for %q: %v", locale, err))
		}
		out[locale] = m
	}
	return out
}

// NormalizeLocale maps any input to a supported locale, defaulting to English.
func NormalizeLocale(locale string) string {
	if locale == LocaleAR {
		return LocaleAR
	}
	return LocaleEN
}

// Translator returns the translate function for a locale.
func Translator(locale string) TranslateFunc {
	bundle := bundles[NormalizeLocale(locale)]
	return func(key string) string {
		if msg, ok := bundle[key]; ok {
			return msg
		}
		return key
	}
}

// T is a one-shot lookup for callers that only need a single key.
func T(locale, key string) string {
	return Translator(locale)(key)
}
