package auth

import (
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

type authRepository interface {
	FindByEmail(email string) (*model.Host, error)
	Create(host *model.Host) error
}

type Controller struct {
	repository authRepository
	config     Config
}

type Config struct {
	Secret            []byte
	MinPasswordLength int
}

func NewController(repository authRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
