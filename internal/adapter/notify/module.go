package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/okatev/shopflow/internal/config"
	"github.com/okatev/shopflow/internal/notification"
)

// Module exposes the notification dispatcher implementation to the fx graph.
var Module = fx.Provide(newDispatcher)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newDispatcher(p clientParams) (notification.Dispatcher, error) {
	return NewHTTPClient(p.Config.NotificationAddress, p.Logger)
}
