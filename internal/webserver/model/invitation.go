package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unlimited is the attendee limit of invitations without a cap on party size
const Unlimited = -1

// Invitation links a guest with an event, capping how many people the guest can bring.
// An attendee limit of -1 means unlimited.
type Invitation struct {
	ID            string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	GuestID       string `gorm:"not null;type:varchar(36);uniqueIndex:idx_invitation_guest_event"`
	EventID       string `gorm:"not null;type:varchar(36);uniqueIndex:idx_invitation_guest_event;index"`
	IsInvited     bool   `gorm:"not null;default:true"`
	AttendeeLimit int    `gorm:"not null;default:-1"`
}

func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// InvitationTarget is the desired attendee limit of a guest for an event
type InvitationTarget struct {
	EventID       string `json:"eventId"`
	AttendeeLimit int    `json:"attendeeLimit"`
}

// Plan lists the changes needed to turn a guest's invitations into a desired set
type Plan struct {
	ToDelete []Invitation
	ToCreate []InvitationTarget
	ToUpdate []InvitationTarget
}

func (p Plan) Empty() bool {
	return len(p.ToDelete) == 0 && len(p.ToCreate) == 0 && len(p.ToUpdate) == 0
}

// Reconcile diffs current invitations against desired targets. Targets whose
// limit is 0 mean "not invited" and are dropped; for repeated event ids the
// last target wins. Output keeps the order of the inputs.
func Reconcile(current []Invitation, desired []InvitationTarget) Plan {
	wanted := make(map[string]int, len(desired))
	order := make([]string, 0, len(desired))
	for _, target := range desired {
		if _, seen := wanted[target.EventID]; !seen {
			order = append(order, target.EventID)
		}
		wanted[target.EventID] = target.AttendeeLimit
	}

	existing := make(map[string]Invitation, len(current))
	for _, invitation := range current {
		existing[invitation.EventID] = invitation
	}

	plan := Plan{}
	for _, invitation := range current {
		if limit, ok := wanted[invitation.EventID]; !ok || limit == 0 {
			plan.ToDelete = append(plan.ToDelete, invitation)
		}
	}

	for _, eventID := range order {
		limit := wanted[eventID]
		if limit == 0 {
			continue
		}
		target := InvitationTarget{EventID: eventID, AttendeeLimit: limit}
		invitation, ok := existing[eventID]
		switch {
		case !ok:
			plan.ToCreate = append(plan.ToCreate, target)
		case invitation.AttendeeLimit != limit:
			plan.ToUpdate = append(plan.ToUpdate, target)
		}
	}

	return plan
}

// ValidAttendeeCount reports whether count people can attend an event under limit
func ValidAttendeeCount(limit, count int) bool {
	if limit == Unlimited {
		return count >= 1
	}
	return count >= 1 && count <= limit
}
