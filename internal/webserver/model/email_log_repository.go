package model

import (
	"log"

	"gorm.io/gorm"
)

type EmailLogRepository struct {
	DB *gorm.DB
}

func (e *EmailLogRepository) Create(entry *EmailLog) error {
	if result := e.DB.Create(entry); result.Error != nil {
		log.Printf("error creating email log: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (e *EmailLogRepository) ListByGuest(guestID string) ([]EmailLog, error) {
	var entries []EmailLog

	if result := e.DB.Where("guest_id = ?", guestID).Order("created_at ASC").Find(&entries); result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
