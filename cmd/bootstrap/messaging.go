package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-api/internal/infra/messaging"
	"restaurant-api/internal/pkg/config"
	"restaurant-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewBookingPublisher,
	),
)

func NewBookingPublisher(lc fx.Lifecycle, cfg config.Config) commands.BookingEventPublisher {
	if !cfg.AMQP.Enabled() {
		slog.Info("amqp disabled: booking events are not published")
		return messaging.NopPublisher{}
	}

	pub := messaging.NewAMQPPublisher(cfg.AMQP)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
