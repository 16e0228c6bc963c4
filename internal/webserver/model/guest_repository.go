package model

import (
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/lineup-rsvp/lineup/internal/result"
	"gorm.io/gorm"
)

const maxSuggestions = 5

type GuestRepository struct {
	DB *gorm.DB
}

// MatchResult holds the outcome of looking up a guest by name in a lineup
type MatchResult struct {
	Matched     bool
	Guest       *Guest
	Events      []EventSummary
	Suggestions []string
}

// Create persists guest, returning ErrConflict if the lineup already has a guest with the same name
func (g *GuestRepository) Create(guest *Guest) error {
	if result := g.DB.Create(guest); result.Error != nil {
		guest.ID = ""
		if IsUniqueViolation(result.Error) {
			return ErrConflict
		}
		log.Printf("error creating guest: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// CreateInvited persists guest together with its invitations. Nothing is
// stored if any of them fails.
func (g *GuestRepository) CreateInvited(guest *Guest, targets []InvitationTarget) error {
	err := g.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(guest).Error; err != nil {
			return err
		}
		_, err := syncInvitations(tx, guest.ID, targets)
		return err
	})
	if err != nil {
		guest.ID = ""
		if IsUniqueViolation(err) || errors.Is(err, ErrConflict) {
			return ErrConflict
		}
		log.Printf("error creating guest: %s\n", err)
		return err
	}
	return nil
}

func (g *GuestRepository) Update(guest *Guest) error {
	guest.NameKey = NameKey(guest.FullName)
	result := g.DB.Model(guest).Select("full_name", "name_key", "email").Updates(guest)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return ErrConflict
		}
		log.Printf("error updating guest: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (g *GuestRepository) UpdateEmail(id, email string) error {
	result := g.DB.Model(&Guest{}).Where("id = ?", id).Update("email", email)
	if result.Error != nil {
		log.Printf("error updating guest email: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// FindInLineup returns the guest with its invitations, provided it belongs to lineupID
func (g *GuestRepository) FindInLineup(lineupID, id string) (*Guest, error) {
	var guest Guest

	result := g.DB.Where("id = ? AND lineup_id = ?", id, lineupID).
		Preload("Invitations").
		First(&guest)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &guest, nil
}

// FindByID returns the guest with its lineup and invitations
func (g *GuestRepository) FindByID(id string) (*Guest, error) {
	var guest Guest

	result := g.DB.Where("id = ?", id).
		Preload("Lineup").
		Preload("Invitations").
		First(&guest)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &guest, nil
}

func (g *GuestRepository) List(lineupID string, page, resultsPerPage int, filter string) (result.Paginated[[]Guest], error) {
	var guests []Guest

	query := g.filtered(lineupID, filter)
	res := query.Scopes(Paginate(page, resultsPerPage)).
		Preload("Invitations").
		Order("full_name ASC").
		Find(&guests)
	if res.Error != nil {
		log.Printf("error listing guests: %s\n", res.Error)
		return result.Paginated[[]Guest]{}, res.Error
	}

	var total int64
	g.filtered(lineupID, filter).Model(&Guest{}).Count(&total)

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(total),
		guests,
	), nil
}

func (g *GuestRepository) filtered(lineupID, filter string) *gorm.DB {
	query := g.DB.Where("lineup_id = ?", lineupID)
	if filter != "" {
		query = query.Where(
			`name_key LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			containing(NameKey(filter)), containing(strings.ToLower(filter)),
		)
	}
	return query
}

// All returns every guest of a lineup with invitations and responses, sorted by name
func (g *GuestRepository) All(lineupID string) ([]Guest, error) {
	var guests []Guest

	result := g.DB.Where("lineup_id = ?", lineupID).
		Preload("Invitations").
		Preload("Responses").
		Order("full_name ASC").
		Find(&guests)
	if result.Error != nil {
		log.Printf("error listing guests: %s\n", result.Error)
		return nil, result.Error
	}
	return guests, nil
}

func (g *GuestRepository) Delete(lineupID, id string) error {
	result := g.DB.Where("id = ? AND lineup_id = ?", id, lineupID).Delete(&Guest{})
	if result.Error != nil {
		log.Printf("error deleting guest: %s\n", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every guest of a lineup, returning how many were removed
func (g *GuestRepository) DeleteAll(lineupID string) (int64, error) {
	result := g.DB.Where("lineup_id = ?", lineupID).Delete(&Guest{})
	if result.Error != nil {
		log.Printf("error deleting guests: %s\n", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Match looks for a guest whose name equals fullName ignoring case. When there is
// no exact match, up to five names containing the first word of fullName are
// returned as suggestions.
func (g *GuestRepository) Match(lineupID, fullName string) (MatchResult, error) {
	name := strings.Join(strings.Fields(fullName), " ")
	if name == "" {
		return MatchResult{}, nil
	}

	var guest Guest
	res := g.DB.Where("lineup_id = ? AND name_key = ?", lineupID, NameKey(name)).
		Preload("Invitations", "is_invited = ?", true).
		Limit(1).
		Find(&guest)
	if res.Error != nil {
		log.Printf("error matching guest: %s\n", res.Error)
		return MatchResult{}, res.Error
	}

	if res.RowsAffected > 0 {
		events, err := g.invitedEvents(guest)
		if err != nil {
			return MatchResult{}, err
		}
		return MatchResult{Matched: true, Guest: &guest, Events: events}, nil
	}

	token := NameKey(strings.Fields(name)[0])
	var similar []Guest
	res = g.DB.Select("full_name").
		Where(`lineup_id = ? AND name_key LIKE ? ESCAPE '\'`, lineupID, containing(token)).
		Limit(maxSuggestions).
		Find(&similar)
	if res.Error != nil {
		log.Printf("error looking for similar guests: %s\n", res.Error)
		return MatchResult{}, res.Error
	}

	suggestions := make([]string, 0, len(similar))
	for _, s := range similar {
		suggestions = append(suggestions, s.FullName)
	}
	return MatchResult{Suggestions: suggestions}, nil
}

func (g *GuestRepository) invitedEvents(guest Guest) ([]EventSummary, error) {
	limits := make(map[string]int, len(guest.Invitations))
	ids := make([]string, 0, len(guest.Invitations))
	for _, invitation := range guest.Invitations {
		limits[invitation.EventID] = invitation.AttendeeLimit
		ids = append(ids, invitation.EventID)
	}

	summaries := []EventSummary{}
	if len(ids) == 0 {
		return summaries, nil
	}

	var events []Event
	if res := g.DB.Where("id IN ?", ids).Find(&events); res.Error != nil {
		log.Printf("error loading invited events: %s\n", res.Error)
		return nil, res.Error
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EpochTime < events[j].EpochTime
	})
	for _, event := range events {
		summaries = append(summaries, event.Summary(limits[event.ID]))
	}
	return summaries, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containing returns a LIKE pattern matching values that contain s literally
func containing(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
