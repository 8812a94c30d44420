package di

import (
	"go.uber.org/fx"

	"github.com/okatev/shopflow/internal/adapter/inventory"
	"github.com/okatev/shopflow/internal/adapter/notify"
	"github.com/okatev/shopflow/internal/app"
	"github.com/okatev/shopflow/internal/config"
	"github.com/okatev/shopflow/internal/logger"
	"github.com/okatev/shopflow/internal/notification"
	"github.com/okatev/shopflow/internal/server/http/handlers"
	"github.com/okatev/shopflow/internal/server/http/router"
	"github.com/okatev/shopflow/internal/storage/postgres"
	"github.com/okatev/shopflow/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		inventory.Module,
		notify.Module,
		notification.Module,
		usecase.Module,
		fx.Provide(
			func(client inventory.Client) usecase.InventoryService { return client },
			func(notifier *notification.StatusNotifier) usecase.Notifier { return notifier },
			func(facade *app.CommerceFacade) handlers.CommerceFacade { return facade },
			func(storage *postgres.Storage) handlers.Pinger { return storage },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
