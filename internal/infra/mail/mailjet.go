package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"oceanview-backend/internal/pkg/config"
	"oceanview-backend/internal/pkg/errs"
	"oceanview-backend/internal/usecase/commands"

	mailjet "github.com/mailjet/mailjet-apiv3-go"
)

// MailjetNotifier is the production Notifier. Template rendering is kept
// deliberately plain; delivery policy (retry, fatality) belongs to the
// callers.
type MailjetNotifier struct {
	client *mailjet.Client
	cfg    config.MailConfig
}

func NewMailjetNotifier(cfg config.MailConfig) *MailjetNotifier {
	return &MailjetNotifier{
		client: mailjet.NewMailjetClient(cfg.APIKey, cfg.APISecret),
		cfg:    cfg,
	}
}

func (n *MailjetNotifier) SendReservationDecision(_ context.Context, email commands.ReservationDecisionEmail) error {
	subject := "Your reservation request was accepted"
	verdict := "accepted"
	if !email.Approved {
		subject = "Your reservation request was rejected"
		verdict = "rejected"
	}

	body := fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Your reservation for room <b>%s</b> from %s to %s has been <b>%s</b>.</p>"+
			"<p>Total: $%.2f</p>"+
			"<p>Ocean View Resort</p>",
		email.GuestName,
		email.RoomName,
		email.CheckIn.Format(time.DateOnly),
		email.CheckOut.Format(time.DateOnly),
		verdict,
		float64(email.TotalCents)/100.0,
	)

	return n.send(email.GuestEmail, email.GuestName, subject, body)
}

func (n *MailjetNotifier) SendPasswordReset(_ context.Context, recipient, resetToken string) error {
	body := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p>Your reset token: <b>%s</b></p>"+
			"<p>The token expires in one hour. If you did not request this, ignore this message.</p>",
		resetToken,
	)

	return n.send(recipient, "", "Password reset request", body)
}

func (n *MailjetNotifier) SendContactInquiry(_ context.Context, inquiry commands.ContactInquiry) error {
	body := fmt.Sprintf(
		"<p>From: %s &lt;%s&gt;</p><p>%s</p>",
		inquiry.Name, inquiry.Email, inquiry.Message,
	)

	return n.send(n.cfg.AdminAddress, "Front Desk", "Contact form: "+inquiry.Subject, body)
}

func (n *MailjetNotifier) send(toEmail, toName, subject, htmlBody string) error {
	// Without credentials (local dev, tests) delivery is disabled.
	if n.cfg.APIKey == "" {
		slog.Debug("mail delivery disabled, dropping message", "to", toEmail, "subject", subject)
		return nil
	}

	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: n.cfg.SenderAddress,
					Name:  n.cfg.SenderName,
				},
				To: &mailjet.RecipientsV31{
					{Email: toEmail, Name: toName},
				},
				Subject:  subject,
				HTMLPart: htmlBody,
			},
		},
	}

	if _, err := n.client.SendMailV31(&messages); err != nil {
		return errs.Wrap(err, "mailjet send failed")
	}
	return nil
}
