package commands

import (
	"context"

	reqdto "oceanview-backend/internal/handler/dto/request"
	"oceanview-backend/internal/pkg/errs"
)

type ContactCommands interface {
	SendInquiry(ctx context.Context, req reqdto.ContactRequest) error
}

type contactCommandsImpl struct {
	notifier Notifier
}

func NewContactCommands(notifier Notifier) ContactCommands {
	return &contactCommandsImpl{notifier: notifier}
}

// SendInquiry forwards the message to the admin mailbox. Unlike the
// reservation notifications, a delivery failure here is the whole point
// of the call, so it propagates.
func (c *contactCommandsImpl) SendInquiry(ctx context.Context, req reqdto.ContactRequest) error {
	inquiry := ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := c.notifier.SendContactInquiry(ctx, inquiry); err != nil {
		return errs.Mark(err, ErrMailDeliveryFailed)
	}
	return nil
}
