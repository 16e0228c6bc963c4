// Package guestimport adds guests and their invitations to a lineup in bulk
package guestimport

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

// ErrInvalidLimit is returned for rows with attendee limits below model.Unlimited
var ErrInvalidLimit = errors.New("invalid attendee limit")

// Row is a guest to import. EventLimits maps event slugs to attendee limits,
// events missing from it are not invited.
type Row struct {
	GuestName   string         `json:"guestName"`
	Email       string         `json:"email,omitempty"`
	EventLimits map[string]int `json:"eventLimits"`
}

// EventRef identifies an event of the lineup being imported into
type EventRef struct {
	Slug string `json:"slug"`
	ID   string `json:"id"`
}

type Result struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Errors  []string `json:"errors,omitempty"`
}

type guestRepository interface {
	Create(guest *model.Guest) error
}

type invitationRepository interface {
	CreateMany(invitations []model.Invitation) error
}

type Importer struct {
	guests      guestRepository
	invitations invitationRepository
}

func NewImporter(guests guestRepository, invitations invitationRepository) *Importer {
	return &Importer{
		guests:      guests,
		invitations: invitations,
	}
}

// Refs returns the references of events, as expected by Apply
func Refs(events []model.Event) []EventRef {
	refs := make([]EventRef, len(events))
	for i, event := range events {
		refs[i] = EventRef{Slug: event.Slug, ID: event.ID}
	}
	return refs
}

// Apply creates a guest per row, one after the other, followed by its
// invitations. A failing row is reported and does not stop the import. Limits
// for slugs not found in events are ignored.
func (i *Importer) Apply(lineupID string, rows []Row, events []EventRef) Result {
	ids := make(map[string]string, len(events))
	for _, event := range events {
		ids[event.Slug] = event.ID
	}

	result := Result{}
	for _, row := range rows {
		if strings.TrimSpace(row.GuestName) == "" {
			continue
		}
		if err := i.importRow(lineupID, row, ids); err != nil {
			if errors.Is(err, model.ErrConflict) {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: Guest with this name already exists", row.GuestName))
			} else {
				log.Printf("error importing guest %s: %s\n", row.GuestName, err)
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", row.GuestName, err))
			}
			continue
		}
		result.Count++
	}

	result.Success = result.Count > 0 || len(result.Errors) == 0
	return result
}

func (i *Importer) importRow(lineupID string, row Row, ids map[string]string) error {
	guest := model.Guest{
		LineupID: lineupID,
		FullName: row.GuestName,
		Email:    row.Email,
	}
	guest.Normalize()
	if errs := guest.Validate(); len(errs) > 0 {
		for _, field := range []string{"fullname", "email"} {
			if msg, ok := errs[field]; ok {
				return errors.New(msg)
			}
		}
	}

	for slug, limit := range row.EventLimits {
		if _, ok := ids[slug]; ok && limit < model.Unlimited {
			return ErrInvalidLimit
		}
	}

	if err := i.guests.Create(&guest); err != nil {
		return err
	}

	invitations := make([]model.Invitation, 0, len(row.EventLimits))
	for slug, limit := range row.EventLimits {
		eventID, ok := ids[slug]
		if !ok || limit == 0 {
			continue
		}
		invitations = append(invitations, model.Invitation{
			GuestID:       guest.ID,
			EventID:       eventID,
			IsInvited:     true,
			AttendeeLimit: limit,
		})
	}
	return i.invitations.CreateMany(invitations)
}
