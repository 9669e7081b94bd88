package bootstrap

import (
	"log/slog"

	"barber-booking/internal/mailer"
	"barber-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		func(cfg config.Config, logger *slog.Logger) mailer.Mailer {
			return mailer.NewFromConfig(cfg.Mail, logger)
		},
	),
)
