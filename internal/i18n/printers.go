package i18n

import (
	"io/fs"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SupportedLanguages lists the languages the user interface is translated to, default first
var SupportedLanguages = []string{"en", "es"}

// Printers returns a message printer per supported language, backed by the translations found in dir
func Printers(dir fs.FS) (map[string]*message.Printer, error) {
	cat, err := NewCatalogFromFolder(dir, SupportedLanguages[0])
	if err != nil {
		return nil, err
	}

	printers := make(map[string]*message.Printer, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		printers[lang] = message.NewPrinter(language.Make(lang), message.Catalog(cat))
	}
	return printers, nil
}

// BestLanguage picks the supported language that fits an Accept-Language header best
func BestLanguage(acceptLanguage string) string {
	tags := make([]language.Tag, len(SupportedLanguages))
	for i, lang := range SupportedLanguages {
		tags[i] = language.Make(lang)
	}
	matcher := language.NewMatcher(tags)

	accepted, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, index, _ := matcher.Match(accepted...)
	return SupportedLanguages[index]
}
