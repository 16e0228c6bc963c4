package model

import (
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseRepository struct {
	DB *gorm.DB
}

// Upsert stores the answer of a guest for an event, replacing any previous one
func (r *ResponseRepository) Upsert(response *Response) error {
	response.UpdatedAt = time.Now()
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guest_id"}, {Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_attending", "attendee_count", "updated_at"}),
	}).Create(response)
	if result.Error != nil {
		log.Printf("error saving response: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// ListByLineup returns the responses of a lineup's guests, most recently updated first
func (r *ResponseRepository) ListByLineup(lineupID string) ([]Response, error) {
	var responses []Response

	result := r.DB.Joins("Guest").Joins("Event").
		Where("responses.guest_id IN (?)", r.DB.Model(&Guest{}).Select("id").Where("lineup_id = ?", lineupID)).
		Order("responses.updated_at DESC").
		Find(&responses)
	if result.Error != nil {
		log.Printf("error listing responses: %s\n", result.Error)
		return nil, result.Error
	}
	return responses, nil
}

func (r *ResponseRepository) Delete(lineupID, id string) error {
	result := r.DB.Where(
		"id = ? AND guest_id IN (?)", id, r.DB.Model(&Guest{}).Select("id").Where("lineup_id = ?", lineupID),
	).Delete(&Response{})
	if result.Error != nil {
		log.Printf("error deleting response: %s\n", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every response given by the guests of a lineup
func (r *ResponseRepository) DeleteAll(lineupID string) (int64, error) {
	result := r.DB.Where(
		"guest_id IN (?)", r.DB.Model(&Guest{}).Select("id").Where("lineup_id = ?", lineupID),
	).Delete(&Response{})
	if result.Error != nil {
		log.Printf("error deleting responses: %s\n", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
