package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lineup-rsvp/lineup/internal/guestimport"
	"github.com/lineup-rsvp/lineup/internal/spreadsheet"
	"github.com/lineup-rsvp/lineup/internal/webserver"
	"github.com/lineup-rsvp/lineup/internal/webserver/infrastructure"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

var version string = "unknown"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("error loading .env file: %s\n", err)
	}

	var input CLIInput
	ctx := kong.Parse(&input, kong.Vars{"version": version})
	if err := ctx.Run(&input); err != nil {
		log.Fatal(err)
	}
}

func (s *ServeCmd) Run(input *CLIInput) error {
	db := infrastructure.Connect(input.DatabaseURL)

	jwtSecret := []byte(s.JwtSecret)
	if len(jwtSecret) == 0 {
		log.Println("no JWT secret set, sessions will not survive a restart")
		jwtSecret = make([]byte, 32)
		if _, err := rand.Read(jwtSecret); err != nil {
			return err
		}
	}

	webserverConfig := webserver.Config{
		Version:           version,
		FQDN:              s.FQDN,
		Port:              s.Port,
		JwtSecret:         jwtSecret,
		MinPasswordLength: s.MinPasswordLength,
		GuestsPerPage:     s.GuestsPerPage,
		UploadMaxSize:     s.UploadMaxSize * 1024 * 1024,
		LookupRate:        s.LookupRate,
		LookupBurst:       s.LookupBurst,
		EmailTimeout:      s.EmailTimeout,
		FromEmail:         s.FromEmail,
		DefaultTimezone:   s.DefaultTimezone,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, s.sender())
	app := webserver.New(webserverConfig, controllers)
	fmt.Printf("Lineup version %s started listening on port %d\n\n", version, s.Port)
	return app.Listen(fmt.Sprintf(":%d", s.Port))
}

// sender picks the email transport: the Resend API if a key is set, SMTP if a server is set,
// otherwise confirmations are not sent.
func (s *ServeCmd) sender() webserver.Sender {
	switch {
	case s.ResendAPIKey != "":
		return infrastructure.NewResend(s.ResendAPIKey)
	case s.SmtpServer != "":
		return &infrastructure.SMTP{
			Server:   s.SmtpServer,
			Port:     s.SmtpPort,
			User:     s.SmtpUser,
			Password: s.SmtpPassword,
		}
	}
	log.Println("no email service configured, confirmations will not be sent")
	return &infrastructure.NoEmail{}
}

func (i *ImportCmd) Run(input *CLIInput) error {
	return runImport(afero.NewOsFs(), infrastructure.Connect(input.DatabaseURL), i.LineupID, i.File)
}

func runImport(appFs afero.Fs, db *gorm.DB, lineupID, path string) error {
	lineup, err := (&model.LineupRepository{DB: db}).FindByID(lineupID)
	if err != nil {
		return fmt.Errorf("lineup %s: %w", lineupID, err)
	}

	file, err := appFs.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	rows, err := spreadsheet.ParseGuests(file, lineup.Events)
	if err != nil {
		return err
	}

	importer := guestimport.NewImporter(&model.GuestRepository{DB: db}, &model.InvitationRepository{DB: db})
	res := importer.Apply(lineup.ID, rows, guestimport.Refs(lineup.Events))
	for _, msg := range res.Errors {
		log.Println(msg)
	}
	fmt.Printf("%d guests imported into %s\n", res.Count, lineup.Title)
	if !res.Success {
		return fmt.Errorf("no guest could be imported")
	}
	return nil
}
