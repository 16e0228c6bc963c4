package infrastructure

import (
	"context"

	"github.com/lineup-rsvp/lineup/internal/confirmation"
	"github.com/resend/resend-go/v2"
)

// Resend delivers emails through the Resend transactional email API
type Resend struct {
	client *resend.Client
}

func NewResend(apiKey string) *Resend {
	return &Resend{client: resend.NewClient(apiKey)}
}

func (r *Resend) Send(ctx context.Context, msg confirmation.Message) (string, error) {
	request := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.Attachment != nil {
		request.Attachments = []*resend.Attachment{
			{
				Filename: msg.Attachment.Filename,
				Content:  msg.Attachment.Content,
			},
		}
	}

	sent, err := r.client.Emails.SendWithContext(ctx, request)
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
