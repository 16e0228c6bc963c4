package model

import (
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// EventCategories lists the kinds of celebration a lineup can be, the first one being the default
var EventCategories = []string{"wedding", "engagement", "birthday", "anniversary", "other"}

// Slugify lowercases text, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens at both ends.
func Slugify(text string) string {
	return strings.Trim(nonAlphanumeric.ReplaceAllString(strings.ToLower(text), "-"), "-")
}

// EventLineup groups the events of a celebration, e. g. all the functions of a wedding
type EventLineup struct {
	ID             string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	HostID         string `gorm:"index;not null;type:varchar(36)"`
	Title          string
	Slug           string `gorm:"uniqueIndex;not null"`
	EventCategory  string
	OrganizerName  string
	OrganizerEmail string
	GroomName      string
	BrideName      string
	Description    string
	IsActive       bool    `gorm:"not null"`
	Events         []Event `gorm:"foreignKey:LineupID;constraint:OnDelete:CASCADE"`
	Guests         []Guest `gorm:"foreignKey:LineupID;constraint:OnDelete:CASCADE"`
	EventCount     int64   `gorm:"->;-:migration"`
	GuestCount     int64   `gorm:"->;-:migration"`
}

func (l *EventLineup) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Normalize derives the slug from the title and strips unsafe markup from the description
func (l *EventLineup) Normalize() {
	l.Title = strings.TrimSpace(l.Title)
	l.Slug = Slugify(l.Title)
	if !slices.Contains(EventCategories, l.EventCategory) {
		l.EventCategory = EventCategories[0]
	}
	l.Description = bluemonday.UGCPolicy().Sanitize(l.Description)
}

func (l EventLineup) Validate() map[string]string {
	errs := map[string]string{}

	if l.Title == "" {
		errs["title"] = "Title cannot be empty"
	} else if l.Slug == "" {
		errs["title"] = "Title must contain at least a letter or a number"
	}

	if len(l.Title) > 100 {
		errs["title"] = "Title cannot be longer than 100 characters"
	}

	if strings.TrimSpace(l.OrganizerName) == "" {
		errs["organizername"] = "Organizer name cannot be empty"
	}

	if _, err := mail.ParseAddress(l.OrganizerEmail); err != nil {
		errs["organizeremail"] = "Incorrect email address"
	}

	return errs
}
