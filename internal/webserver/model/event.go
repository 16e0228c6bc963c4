package model

import (
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the format used by date inputs
const DateLayout = "2006-01-02"

// Event is a single function inside a lineup, e. g. the ceremony or the reception
type Event struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LineupID    string `gorm:"index;not null;type:varchar(36)"`
	Slug        string
	Name        string
	Description string
	Date        time.Time
	Time        string
	EpochTime   EpochMillis `gorm:"index"`
	Timezone    string
	Venue       string
	Address     string
	AddressURL  string
	DressCode   string
	IsActive    bool         `gorm:"not null"`
	Invitations []Invitation `gorm:"constraint:OnDelete:CASCADE"`
	Responses   []Response   `gorm:"constraint:OnDelete:CASCADE"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// Normalize regenerates the slug from the name and the epoch used for sorting
func (e *Event) Normalize() {
	e.Name = strings.TrimSpace(e.Name)
	e.Slug = Slugify(e.Name)
	e.Date = time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
	start, err := StartsAt(e.Date, e.Time)
	if err != nil {
		start = e.Date
	}
	e.EpochTime = EpochMillis(start.UnixMilli())
}

func (e Event) Validate() map[string]string {
	errs := map[string]string{}

	if e.Name == "" {
		errs["name"] = "Name cannot be empty"
	}

	if len(e.Name) > 100 {
		errs["name"] = "Name cannot be longer than 100 characters"
	}

	if e.Date.IsZero() {
		errs["date"] = "Incorrect date"
	}

	if _, _, err := ParseClock(e.Time); err != nil {
		errs["time"] = "Incorrect time"
	}

	if _, err := time.LoadLocation(e.Timezone); e.Timezone == "" || err != nil {
		errs["timezone"] = "Unknown timezone"
	}

	if strings.TrimSpace(e.Venue) == "" {
		errs["venue"] = "Venue cannot be empty"
	}

	if strings.TrimSpace(e.Address) == "" {
		errs["address"] = "Address cannot be empty"
	}

	if e.AddressURL != "" {
		if u, err := url.ParseRequestURI(e.AddressURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs["addressurl"] = "Incorrect map link"
		}
	}

	return errs
}

// EventSummary is the public projection of an event offered to a guest. It
// carries the guest's attendee limit and leaves out internal bookkeeping such as the epoch.
type EventSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Timezone      string    `json:"timezone"`
	Venue         string    `json:"venue"`
	Address       string    `json:"address"`
	AddressURL    string    `json:"addressUrl,omitempty"`
	DressCode     string    `json:"dressCode,omitempty"`
	AttendeeLimit int       `json:"attendeeLimit"`
}

func (e Event) Summary(attendeeLimit int) EventSummary {
	return EventSummary{
		ID:            e.ID,
		Name:          e.Name,
		Slug:          e.Slug,
		Date:          e.Date,
		Time:          e.Time,
		Timezone:      e.Timezone,
		Venue:         e.Venue,
		Address:       e.Address,
		AddressURL:    e.AddressURL,
		DressCode:     e.DressCode,
		AttendeeLimit: attendeeLimit,
	}
}
