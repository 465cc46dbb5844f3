package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/agrofix/storefront-api/internal/interface/http"
	"github.com/agrofix/storefront-api/internal/interface/middleware"
	"github.com/agrofix/storefront-api/pkg/helpers"
)

// OrderModule wires order routes.
// Public: POST /api/orders, GET /api/orders/:id
// Protected: GET /api/orders, PUT /api/orders/:id, PATCH /api/orders/:id/status
type OrderModule struct {
	Handler *handlers.OrderHandler
	Tokens  *helpers.TokenManager
}

func NewOrderModule(h *handlers.OrderHandler, tokens *helpers.TokenManager) *OrderModule {
	return &OrderModule{Handler: h, Tokens: tokens}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	rg.POST("/orders", m.Handler.Place)
	rg.GET("/orders/:id", m.Handler.Get)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.Tokens))
	{
		admin.GET("/orders", m.Handler.List)
		// two adapters, one operation
		admin.PUT("/orders/:id", m.Handler.UpdateStatus)
		admin.PATCH("/orders/:id/status", m.Handler.UpdateStatus)
	}
}
