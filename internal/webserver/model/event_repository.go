package model

import (
	"log"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func (e *EventRepository) Create(event *Event) error {
	if result := e.DB.Create(event); result.Error != nil {
		log.Printf("error creating event: %s\n", result.Error)
		return translate(result.Error)
	}
	return nil
}

func (e *EventRepository) Update(event *Event) error {
	result := e.DB.Model(event).Select(
		"slug", "name", "description", "date", "time", "epoch_time", "timezone",
		"venue", "address", "address_url", "dress_code", "is_active",
	).Updates(event)
	if result.Error != nil {
		log.Printf("error updating event: %s\n", result.Error)
		return translate(result.Error)
	}
	return nil
}

// FindInLineup returns the event only if it belongs to lineupID
func (e *EventRepository) FindInLineup(lineupID, id string) (*Event, error) {
	var event Event

	if result := e.DB.Where("id = ? AND lineup_id = ?", id, lineupID).First(&event); result.Error != nil {
		return nil, translate(result.Error)
	}
	return &event, nil
}

func (e *EventRepository) ListByLineup(lineupID string) ([]Event, error) {
	var events []Event

	if result := e.DB.Where("lineup_id = ?", lineupID).Order("epoch_time ASC").Find(&events); result.Error != nil {
		log.Printf("error listing events: %s\n", result.Error)
		return nil, result.Error
	}
	return events, nil
}

// FindByIDs returns the events matching ids in chronological order
func (e *EventRepository) FindByIDs(ids []string) ([]Event, error) {
	var events []Event

	if len(ids) == 0 {
		return events, nil
	}
	if result := e.DB.Where("id IN ?", ids).Order("epoch_time ASC").Find(&events); result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (e *EventRepository) Delete(lineupID, id string) error {
	result := e.DB.Where("id = ? AND lineup_id = ?", id, lineupID).Delete(&Event{})
	if result.Error != nil {
		log.Printf("error deleting event: %s\n", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
