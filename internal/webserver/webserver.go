package webserver

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/lineup-rsvp/lineup/internal/i18n"
	"github.com/lineup-rsvp/lineup/internal/webserver/infrastructure"
)

var (
	//go:embed embedded
	embedded embed.FS

	cssFS          fs.FS
	viewsFS        fs.FS
	translationsFS fs.FS
)

type Config struct {
	Version           string
	FQDN              string
	Port              int
	JwtSecret         []byte
	MinPasswordLength int
	GuestsPerPage     int
	UploadMaxSize     int
	LookupRate        float64
	LookupBurst       int
	EmailTimeout      time.Duration
	FromEmail         string
	DefaultTimezone   string
}

func init() {
	var err error

	cssFS, err = fs.Sub(embedded, "embedded/css")
	if err != nil {
		log.Fatal(err)
	}

	viewsFS, err = fs.Sub(embedded, "embedded/views")
	if err != nil {
		log.Fatal(err)
	}

	translationsFS, err = fs.Sub(embedded, "embedded/translations")
	if err != nil {
		log.Fatal(err)
	}
}

// New builds a new Fiber application and set up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	printers, err := i18n.Printers(translationsFS)
	if err != nil {
		log.Fatal(err)
	}

	engine, err := infrastructure.TemplateEngine(viewsFS, printers)
	if err != nil {
		log.Fatal(err)
	}

	bodyLimit := cfg.UploadMaxSize
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		PassLocalsToViews:     true,
		DisableStartupMessage: true,
		AppName:               cfg.Version,
		BodyLimit:             bodyLimit,
		ErrorHandler:          errorHandler,
	})

	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	app.Use(SetLanguage, SetFQDN(cfg))

	routes(app, controllers)
	return app
}
