package model

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepository struct {
	DB *gorm.DB
}

func (i *InvitationRepository) ListByGuest(guestID string) ([]Invitation, error) {
	var invitations []Invitation

	if result := i.DB.Where("guest_id = ?", guestID).Find(&invitations); result.Error != nil {
		log.Printf("error listing invitations: %s\n", result.Error)
		return nil, result.Error
	}
	return invitations, nil
}

// Sync makes the guest's invitations match desired, applying deletions,
// creations and limit updates in a single transaction.
func (i *InvitationRepository) Sync(guestID string, desired []InvitationTarget) (Plan, error) {
	var plan Plan

	err := i.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = syncInvitations(tx, guestID, desired)
		return err
	})
	if err != nil {
		log.Printf("error syncing invitations for guest %s: %s\n", guestID, err)
		return Plan{}, err
	}
	return plan, nil
}

func syncInvitations(tx *gorm.DB, guestID string, desired []InvitationTarget) (Plan, error) {
	var current []Invitation
	if err := tx.Where("guest_id = ?", guestID).Find(&current).Error; err != nil {
		return Plan{}, err
	}

	plan := Reconcile(current, desired)

	for _, invitation := range plan.ToDelete {
		if err := tx.Delete(&Invitation{}, "id = ?", invitation.ID).Error; err != nil {
			return Plan{}, err
		}
	}

	for _, target := range plan.ToCreate {
		invitation := Invitation{
			GuestID:       guestID,
			EventID:       target.EventID,
			IsInvited:     true,
			AttendeeLimit: target.AttendeeLimit,
		}
		if err := tx.Create(&invitation).Error; err != nil {
			return Plan{}, translate(err)
		}
	}

	for _, target := range plan.ToUpdate {
		err := tx.Model(&Invitation{}).
			Where("guest_id = ? AND event_id = ?", guestID, target.EventID).
			Update("attendee_limit", target.AttendeeLimit).Error
		if err != nil {
			return Plan{}, err
		}
	}
	return plan, nil
}

// CreateMany inserts invitations, silently skipping those already present
func (i *InvitationRepository) CreateMany(invitations []Invitation) error {
	if len(invitations) == 0 {
		return nil
	}
	result := i.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&invitations)
	if result.Error != nil {
		log.Printf("error creating invitations: %s\n", result.Error)
		return result.Error
	}
	return nil
}
