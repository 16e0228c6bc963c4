package infrastructure

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
	"github.com/gosimple/slug"
	"github.com/lineup-rsvp/lineup/internal/confirmation"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
	"golang.org/x/text/message"
)

func TemplateEngine(viewsFS fs.FS, printers map[string]*message.Printer) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("t", func(lang, key string, values ...any) template.HTML {
		printer, ok := printers[lang]
		if !ok {
			return template.HTML(template.HTMLEscapeString(fmt.Sprintf(key, values...)))
		}
		return template.HTML(template.HTMLEscapeString(printer.Sprintf(key, values...)))
	})

	engine.AddFunc("dict", func(values ...any) map[string]any {
		if len(values)%2 != 0 {
			fmt.Println("invalid dict call")
			return nil
		}
		dict := make(map[string]any, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				fmt.Println("dict keys must be strings")
				return nil
			}
			dict[key] = values[i+1]
		}
		return dict
	})

	engine.AddFunc("slugify", func(text string) string {
		return slug.Make(text)
	})

	engine.AddFunc("uppercase", func(text string) string {
		return strings.ToUpper(text)
	})

	engine.AddFunc("limit", func(limit int) string {
		if limit < 0 {
			return "∞"
		}
		return fmt.Sprintf("%d", limit)
	})

	engine.AddFunc("categories", func() []string {
		return model.EventCategories
	})

	engine.AddFunc("formatDate", confirmation.FormatDate)
	engine.AddFunc("formatTime", confirmation.FormatTime)
	engine.AddFunc("notLast", notLast[string])

	return engine, nil
}

func notLast[V any](slice []V, index int) bool {
	return index < len(slice)-1
}
