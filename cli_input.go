package main

import (
	"time"

	"github.com/alecthomas/kong"
)

// CLIInput stores all configuration flags and arguments that can be passed to the application
type CLIInput struct {
	Version kong.VersionFlag `short:"v" name:"version" help:"Get version number."`
	// DatabaseURL is either a PostgreSQL connection URL or the path to a SQLite file
	DatabaseURL string `env:"DATABASE_URL" default:"lineup.db" name:"database-url" help:"PostgreSQL connection URL (postgres://...) or path to a SQLite database file"`

	Serve  ServeCmd  `cmd:"" default:"1" help:"Start the web server."`
	Import ImportCmd `cmd:"" help:"Import the guests listed in a spreadsheet into a lineup."`
}

// ServeCmd holds the settings of the web server
type ServeCmd struct {
	// FQDN stores the domain name of the server. If the server is listening on a non-standard HTTP / HTTPS port, include it using a colon (e. g. example.com:3000)
	FQDN string `env:"FQDN" short:"d" default:"localhost:3000" name:"fqdn" help:"Domain name of the server. If the server is listening on a non-standard HTTP / HTTPS port, include it using a colon (e. g. example:3000)"`
	// Port defines the port number in which the webserver listens for requests
	Port int `env:"PORT" short:"p" default:"3000" name:"port" help:"Port number in which the webserver listens for requests"`
	// JwtSecret stores the string to use to sign JWTs
	JwtSecret string `env:"JWT_SECRET" short:"s" name:"jwt-secret" help:"String to use to sign JWTs"`
	// MinPasswordLength is the minimum length acceptable for passwords
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" default:"8" name:"min-password-length" help:"Minimum length acceptable for passwords"`
	// GuestsPerPage is the number of guests shown in every page of the guest list
	GuestsPerPage int `env:"GUESTS_PER_PAGE" default:"25" name:"guests-per-page" help:"Number of guests shown in every page of the guest list"`
	// UploadMaxSize is the maximum size of a request body, spreadsheets included, in megabytes
	UploadMaxSize int `env:"UPLOAD_MAX_SIZE" short:"u" default:"5" name:"upload-max-size" help:"Maximum size of uploaded spreadsheets, in megabytes"`
	// LookupRate and LookupBurst throttle the guest lookups coming from a single address
	LookupRate  float64 `env:"LOOKUP_RATE" default:"1" name:"lookup-rate" help:"Guest lookups per second allowed from a single address. Set to 0 to disable throttling"`
	LookupBurst int     `env:"LOOKUP_BURST" default:"10" name:"lookup-burst" help:"Guest lookups allowed in a burst from a single address"`
	// DefaultTimezone is suggested when creating events
	DefaultTimezone string `env:"DEFAULT_TIMEZONE" default:"UTC" name:"default-timezone" help:"IANA timezone suggested for new events"`

	// ResendAPIKey enables sending confirmations through the Resend API, which takes precedence over SMTP
	ResendAPIKey string `env:"RESEND_API_KEY" name:"resend-api-key" help:"Resend API key"`
	// FromEmail is the sender address of confirmation emails
	FromEmail string `env:"RESEND_FROM_EMAIL" default:"noreply@example.com" name:"from-email" help:"Sender address of confirmation emails"`
	// EmailTimeout bounds the time spent sending a confirmation
	EmailTimeout time.Duration `env:"EMAIL_TIMEOUT" default:"10s" name:"email-timeout" help:"Maximum time to wait for a confirmation email to be sent"`
	// SmtpServer points to the address of the send mail server
	SmtpServer string `env:"SMTP_SERVER" name:"smtp-server" help:"Address of the send mail server"`
	// SmtpPort defines the port in which the mail server listens for requests
	SmtpPort int `env:"SMTP_PORT" default:"587" name:"smtp-port" help:"Port in which the mail server listens for requests"`
	// SmtpUser holds the user to authenticate against the SMTP server
	SmtpUser string `env:"SMTP_USER" name:"smtp-user" help:"User to authenticate against the SMTP server"`
	// SmtpPassword holds the password to authenticate against the SMTP server
	SmtpPassword string `env:"SMTP_PASSWORD" name:"smtp-password" help:"Password to authenticate against the SMTP server"`
}

// ImportCmd reads a workbook from disk and adds its guests to a lineup
type ImportCmd struct {
	LineupID string `arg:"" name:"lineup-id" help:"Identifier of the lineup receiving the guests."`
	File     string `arg:"" name:"file" help:"Path to the XLSX workbook." type:"path"`
}
