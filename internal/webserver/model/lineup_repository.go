package model

import (
	"log"

	"gorm.io/gorm"
)

const lineupCounts = "event_lineups.*, " +
	"(SELECT COUNT(*) FROM events WHERE events.lineup_id = event_lineups.id) AS event_count, " +
	"(SELECT COUNT(*) FROM guests WHERE guests.lineup_id = event_lineups.id) AS guest_count"

type LineupRepository struct {
	DB *gorm.DB
}

// Create persists a new lineup, failing with ErrConflict if its slug is already taken
func (l *LineupRepository) Create(lineup *EventLineup) error {
	var total int64
	if err := l.DB.Model(&EventLineup{}).Where("slug = ?", lineup.Slug).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return ErrConflict
	}

	if result := l.DB.Create(lineup); result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return ErrConflict
		}
		log.Printf("error creating lineup: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (l *LineupRepository) Update(lineup *EventLineup) error {
	var total int64
	err := l.DB.Model(&EventLineup{}).Where("slug = ? AND id <> ?", lineup.Slug, lineup.ID).Count(&total).Error
	if err != nil {
		return err
	}
	if total > 0 {
		return ErrConflict
	}

	result := l.DB.Model(lineup).Select(
		"title", "slug", "event_category", "organizer_name", "organizer_email",
		"groom_name", "bride_name", "description", "is_active",
	).Updates(lineup)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return ErrConflict
		}
		log.Printf("error updating lineup: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// ListByHost returns the lineups owned by a host, newest first, with their event and guest counts
func (l *LineupRepository) ListByHost(hostID string) ([]EventLineup, error) {
	var lineups []EventLineup

	result := l.DB.Model(&EventLineup{}).
		Select(lineupCounts).
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&lineups)
	if result.Error != nil {
		log.Printf("error listing lineups: %s\n", result.Error)
		return nil, result.Error
	}
	return lineups, nil
}

// FindOwned returns the lineup only if it belongs to hostID. Lineups owned by
// other hosts are reported as not found.
func (l *LineupRepository) FindOwned(hostID, id string) (*EventLineup, error) {
	var lineup EventLineup

	result := l.DB.Model(&EventLineup{}).
		Select(lineupCounts).
		Where("id = ? AND host_id = ?", id, hostID).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("epoch_time ASC")
		}).
		First(&lineup)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &lineup, nil
}

// FindActiveBySlug returns an active lineup with its active events, as shown in the public RSVP page
func (l *LineupRepository) FindActiveBySlug(slug string) (*EventLineup, error) {
	var lineup EventLineup

	result := l.DB.Where("slug = ? AND is_active = ?", slug, true).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("epoch_time ASC")
		}).
		First(&lineup)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &lineup, nil
}

func (l *LineupRepository) Delete(hostID, id string) error {
	result := l.DB.Where("id = ? AND host_id = ?", id, hostID).Delete(&EventLineup{})
	if result.Error != nil {
		log.Printf("error deleting lineup: %s\n", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID returns a lineup with all its events regardless of its owner
func (l *LineupRepository) FindByID(id string) (*EventLineup, error) {
	var lineup EventLineup

	result := l.DB.Where("id = ?", id).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("epoch_time ASC")
		}).
		First(&lineup)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &lineup, nil
}
