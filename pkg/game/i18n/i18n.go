// Package i18n holds the player-facing message catalogue.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is selected
const DefaultLanguage = "en"

//go:embed locales
var locales embed.FS

var (
	po       *gotext.Po
	language string
)

func init() {
	if err := SetLanguage(DefaultLanguage); err != nil {
		panic(err)
	}
}

// SetLanguage switches the catalogue. The previous catalogue stays active
// if lang has none.
func SetLanguage(lang string) error {
	data, err := locales.ReadFile(path.Join("locales", lang, "default.po"))
	if err != nil {
		return fmt.Errorf("no messages for language %q: %w", lang, err)
	}

	next := gotext.NewPo()
	next.Parse(data)

	po = next
	language = lang
	return nil
}

// Language returns the active language code
func Language() string {
	return language
}

// Languages lists the embedded language codes
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}

	var langs []string
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	sort.Strings(langs)
	return langs
}

// T translates key and formats it with args. Unknown keys come back as-is.
func T(key string, args ...any) string {
	return po.Get(key, args...)
}
