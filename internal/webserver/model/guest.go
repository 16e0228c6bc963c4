package model

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Guest is a person in a lineup's guest list, identified by their full name
type Guest struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LineupID    string `gorm:"not null;type:varchar(36);uniqueIndex:idx_guest_lineup_name;index:idx_guest_lineup_key"`
	FullName    string `gorm:"not null;uniqueIndex:idx_guest_lineup_name"`
	NameKey     string `gorm:"index:idx_guest_lineup_key"`
	Email       string
	Lineup      EventLineup  `gorm:"foreignKey:LineupID;constraint:OnDelete:CASCADE"`
	Invitations []Invitation `gorm:"constraint:OnDelete:CASCADE"`
	Responses   []Response   `gorm:"constraint:OnDelete:CASCADE"`
	EmailLogs   []EmailLog   `gorm:"constraint:OnDelete:CASCADE"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.NameKey = NameKey(g.FullName)
	return nil
}

// NameKey folds the case of a name, so lookups ignore case for any alphabet
func NameKey(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

func (g *Guest) Normalize() {
	g.FullName = strings.Join(strings.Fields(g.FullName), " ")
	g.Email = strings.TrimSpace(g.Email)
}

func (g Guest) Validate() map[string]string {
	errs := map[string]string{}

	if g.FullName == "" {
		errs["fullname"] = "Name cannot be empty"
	}

	if len(g.FullName) > 100 {
		errs["fullname"] = "Name cannot be longer than 100 characters"
	}

	if g.Email != "" {
		if _, err := mail.ParseAddress(g.Email); err != nil {
			errs["email"] = "Incorrect email address"
		}
	}

	return errs
}

// InvitedTo returns the attendee limit of the guest for eventID, 0 meaning not invited.
// Invitations must be loaded beforehand.
func (g Guest) InvitedTo(eventID string) int {
	for _, invitation := range g.Invitations {
		if invitation.EventID == eventID && invitation.IsInvited {
			return invitation.AttendeeLimit
		}
	}
	return 0
}
