package model

import (
	"log"
	"strings"

	"gorm.io/gorm"
)

type HostRepository struct {
	DB *gorm.DB
}

func (h *HostRepository) Create(host *Host) error {
	if result := h.DB.Create(host); result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return ErrConflict
		}
		log.Printf("error creating host: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (h *HostRepository) FindByEmail(email string) (*Host, error) {
	var host Host

	result := h.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&host)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &host, nil
}

func (h *HostRepository) FindByID(id string) (*Host, error) {
	var host Host

	if result := h.DB.First(&host, "id = ?", id); result.Error != nil {
		return nil, translate(result.Error)
	}
	return &host, nil
}
