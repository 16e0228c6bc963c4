package infrastructure

import (
	"context"
	"sync"

	"github.com/lineup-rsvp/lineup/internal/confirmation"
)

// MailerMock records the messages it is asked to send. When Err is set every send fails with it.
type MailerMock struct {
	Err  error
	mu   sync.Mutex
	sent []confirmation.Message
}

func (m *MailerMock) Send(ctx context.Context, msg confirmation.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	m.sent = append(m.sent, msg)
	return "mock-message-id", nil
}

func (m *MailerMock) Sent() []confirmation.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]confirmation.Message(nil), m.sent...)
}
