package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Response is a guest's answer for one event. There is at most one per guest and event.
type Response struct {
	ID            string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	GuestID       string `gorm:"not null;type:varchar(36);uniqueIndex:idx_response_guest_event"`
	EventID       string `gorm:"not null;type:varchar(36);uniqueIndex:idx_response_guest_event;index"`
	IsAttending   bool
	AttendeeCount int
	Guest         Guest `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE"`
	Event         Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (r *Response) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
