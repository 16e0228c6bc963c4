package infrastructure

import (
	"context"
	"io"
	"log"

	"github.com/lineup-rsvp/lineup/internal/confirmation"
	"gopkg.in/gomail.v2"
)

type SMTP struct {
	Server   string
	Port     int
	User     string
	Password string
}

// Send delivers msg through the SMTP server. The message id is not known in
// this case, so an empty one is returned.
func (s *SMTP) Send(ctx context.Context, msg confirmation.Message) (string, error) {
	m := s.compose(msg)

	done := make(chan error, 1)
	go func() {
		done <- s.send(m)
	}()

	select {
	case err := <-done:
		return "", err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *SMTP) compose(msg confirmation.Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if msg.Attachment != nil {
		content := msg.Attachment.Content
		m.Attach(msg.Attachment.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"text/calendar; charset=utf-8"}}),
		)
	}

	return m
}

func (s *SMTP) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.Server, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		log.Println(err)
		return err
	}

	return nil
}
