package router

import (
	"github.com/agrofix/storefront-api/internal/application"
	"github.com/agrofix/storefront-api/internal/container"
	pginfra "github.com/agrofix/storefront-api/internal/infrastructure/postgres"
	handlers "github.com/agrofix/storefront-api/internal/interface/http"
	"github.com/agrofix/storefront-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	adminSvc := application.NewAdminService(pginfra.NewAdminRepository(pool), container.GetTokens(), logger)
	catalogSvc := application.NewCatalogService(pginfra.NewProductRepository(pool), container.GetBlobs(), cfg.MaxUploadSize, logger)
	orderSvc := application.NewOrderService(pginfra.NewOrderRepository(pool), cfg.OrderStrictFlow, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(adminSvc, logger)))
	r.Add(modules.NewCatalogModule(handlers.NewProductHandler(catalogSvc, logger), container.GetTokens()))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(orderSvc, logger), container.GetTokens()))
}
