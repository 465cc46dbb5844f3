package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agrofix/storefront-api/internal/container"
	handlers "github.com/agrofix/storefront-api/internal/interface/http"
	"github.com/agrofix/storefront-api/internal/interface/middleware"
)

// AuthModule wires the admin login route.
// Public: POST /api/admin/login (rate limited per client IP)
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP()) // 10 req/min per IP

	rg.POST("/admin/login", loginLimiter, m.Handler.Login)
}
