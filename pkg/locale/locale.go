// Package locale provides translations for text printed by the simulator.
package locale

import (
	"embed"
	"fmt"
	"strings"

	"codeberg.org/tslocum/gotext"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed locales
var assetFS embed.FS

const English = "en"

// Catalog holds the embedded translations.
type Catalog struct {
	tags  []language.Tag
	names []string
	po    map[string]*gotext.Po
}

// Load parses every embedded catalog. English is always available and is
// not translated.
func Load() (*Catalog, error) {
	entries, err := assetFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list files in locales directory: %s", err)
	}

	c := &Catalog{
		tags: []language.Tag{
			language.MustParse("en_US"),
		},
		names: []string{
			English,
		},
		po: make(map[string]*gotext.Po),
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		tag, err := language.Parse(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid locale %s: %s", entry.Name(), err)
		}

		b, err := assetFS.ReadFile(fmt.Sprintf("locales/%s/%s.po", entry.Name(), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %s", entry.Name(), err)
		}

		po := gotext.NewPo()
		po.Parse(b)
		c.tags = append(c.tags, tag)
		c.names = append(c.names, entry.Name())
		c.po[entry.Name()] = po
	}
	return c, nil
}

// Languages returns the names of the available languages.
func (c *Catalog) Languages() []string {
	return append([]string(nil), c.names...)
}

// Match returns the available language closest to identifier, defaulting to English.
func (c *Catalog) Match(identifier string) string {
	if identifier == "" {
		return English
	}

	tag, err := language.Parse(identifier)
	if err != nil {
		return English
	}
	var preferred = []language.Tag{tag}

	useLanguage, index, confidence := language.NewMatcher(c.tags).Match(preferred...)
	useLanguageCode := useLanguage.String()
	if index < 0 || confidence == language.No || useLanguageCode == "" || strings.HasPrefix(useLanguageCode, "en") {
		return English
	}
	return c.names[index]
}

// Get returns the translation of str in lang, or str when none exists.
func (c *Catalog) Get(lang string, str string) string {
	po := c.po[c.Match(lang)]
	if po == nil {
		return str
	}
	return po.Get(str)
}

// Printer returns a printer formatting numbers for lang.
func (c *Catalog) Printer(lang string) *message.Printer {
	tag, err := language.Parse(c.Match(lang))
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// Sprintf translates format and formats it with the number conventions of lang.
func (c *Catalog) Sprintf(lang string, format string, a ...interface{}) string {
	return c.Printer(lang).Sprintf(c.Get(lang, format), a...)
}
