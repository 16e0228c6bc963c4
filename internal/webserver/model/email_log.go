package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmailTypeConfirmation = "confirmation"

	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailLog records every attempt to send an email to a guest
type EmailLog struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time
	GuestID   string `gorm:"index;not null;type:varchar(36)"`
	EmailType string
	Status    string
	ResendID  string
	Error     string
}

func (e *EmailLog) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
