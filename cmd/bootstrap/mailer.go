package bootstrap

import (
	"oceanview-backend/internal/infra/mail"
	"oceanview-backend/internal/pkg/config"
	"oceanview-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewNotifier(cfg config.Config) *mail.MailjetNotifier {
	return mail.NewMailjetNotifier(cfg.Mail)
}
