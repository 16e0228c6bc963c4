package confirmation

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

const (
	calendarFilename = "events.ics"
	defaultFromName  = "Event Organizer"
	confirmationView = "confirmation"
	subjectPrefix    = "RSVP Confirmed - "
)

// Mailer delivers composed messages, returning the provider's message id
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// EventDetails describes an event a guest confirmed attendance to
type EventDetails struct {
	ID            string
	Name          string
	Date          time.Time
	Time          string
	Timezone      string
	Venue         string
	Address       string
	AddressURL    string
	DressCode     string
	AttendeeCount int
}

type Input struct {
	GuestName      string
	GuestEmail     string
	LineupTitle    string
	OrganizerName  string
	OrganizerEmail string
	Events         []EventDetails
}

type Attachment struct {
	Filename string
	Content  []byte
}

type Message struct {
	From       string
	To         string
	Subject    string
	HTML       string
	Attachment *Attachment
}

// Composer writes RSVP confirmation emails
type Composer struct {
	engine      *html.Engine
	fromAddress string
	domain      string
	now         func() time.Time
}

// NewComposer returns a composer sending from fromAddress. domain is used to build calendar event UIDs.
func NewComposer(fromAddress, domain string) (*Composer, error) {
	views, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}

	engine := html.NewFileSystem(http.FS(views), ".html")
	engine.AddFunc("formatDate", FormatDate)
	engine.AddFunc("formatTime", FormatTime)
	if err := engine.Load(); err != nil {
		return nil, err
	}

	return &Composer{
		engine:      engine,
		fromAddress: fromAddress,
		domain:      domain,
		now:         time.Now,
	}, nil
}

// Compose builds the confirmation message for the events in input. A calendar
// attachment is included only if every event has a valid date and time.
func (c *Composer) Compose(input Input) (Message, error) {
	var attachment *Attachment
	calendar, err := Calendar(input.Events, input.OrganizerName, input.OrganizerEmail, c.domain, c.now())
	if err != nil {
		log.Printf("error generating calendar for %s: %s\n", input.GuestEmail, err)
	} else {
		attachment = &Attachment{Filename: calendarFilename, Content: calendar}
	}

	var body bytes.Buffer
	err = c.engine.Render(&body, confirmationView, map[string]any{
		"GuestName":   input.GuestName,
		"LineupTitle": input.LineupTitle,
		"Events":      input.Events,
		"Calendar":    attachment != nil,
	})
	if err != nil {
		return Message{}, fmt.Errorf("rendering confirmation email: %w", err)
	}

	fromName := input.OrganizerName
	if fromName == "" {
		fromName = defaultFromName
	}

	return Message{
		From:       fmt.Sprintf("%s <%s>", fromName, c.fromAddress),
		To:         input.GuestEmail,
		Subject:    subjectPrefix + input.LineupTitle,
		HTML:       body.String(),
		Attachment: attachment,
	}, nil
}
