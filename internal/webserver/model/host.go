package model

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Host is the account owning event lineups
type Host struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	Lineups      []EventLineup `gorm:"constraint:OnDelete:CASCADE"`
}

func (h *Host) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	h.Email = strings.ToLower(strings.TrimSpace(h.Email))
	return nil
}

// Validate checks host's fields, password being the plain one sent through the form
func (h Host) Validate(password string, minPasswordLength int) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(h.Name) == "" {
		errs["name"] = "Name cannot be empty"
	}

	if len(h.Name) > 50 {
		errs["name"] = "Name cannot be longer than 50 characters"
	}

	if _, err := mail.ParseAddress(h.Email); err != nil {
		errs["email"] = "Incorrect email address"
	}

	if len(h.Email) > 100 {
		errs["email"] = "Email cannot be longer than 100 characters"
	}

	if len(password) < minPasswordLength {
		errs["password"] = "Password is too short"
	}

	if len(password) > 72 {
		errs["password"] = "Password cannot be longer than 72 characters"
	}

	return errs
}

// SetPassword stores the bcrypt hash of password
func (h *Host) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h.PasswordHash = string(hash)
	return nil
}

func (h Host) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(password)) == nil
}

// Session holds the data carried by the session token
type Session struct {
	HostID string
	Email  string
}
