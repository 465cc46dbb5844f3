package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/agrofix/storefront-api/internal/interface/http"
	"github.com/agrofix/storefront-api/internal/interface/middleware"
	"github.com/agrofix/storefront-api/pkg/helpers"
)

// CatalogModule wires product routes.
// Public: GET /api/products
// Protected: POST /api/products, DELETE /api/products/:id
type CatalogModule struct {
	Handler *handlers.ProductHandler
	Tokens  *helpers.TokenManager
}

func NewCatalogModule(h *handlers.ProductHandler, tokens *helpers.TokenManager) *CatalogModule {
	return &CatalogModule{Handler: h, Tokens: tokens}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Handler.List)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.Tokens))
	{
		admin.POST("/products", m.Handler.Create)
		admin.DELETE("/products/:id", m.Handler.Delete)
	}
}
