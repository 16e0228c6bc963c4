package infrastructure

import (
	"context"
	"errors"

	"github.com/lineup-rsvp/lineup/internal/confirmation"
)

// ErrEmailNotConfigured is returned by NoEmail, used when no email transport has been set up
var ErrEmailNotConfigured = errors.New("email sending is not configured")

type NoEmail struct {
}

func (s *NoEmail) Send(ctx context.Context, msg confirmation.Message) (string, error) {
	return "", ErrEmailNotConfigured
}
