package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/agrofix/storefront-api/internal/application"
	"github.com/agrofix/storefront-api/pkg/response"
	"github.com/agrofix/storefront-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AdminService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges admin credentials for a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, application.ErrAdminNotFound):
		response.Fail(c, http.StatusUnauthorized, "admin not found", nil)
		return
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusForbidden, "invalid credentials", nil)
		return
	case err != nil:
		h.Logger.WithError(err).Error("login failed")
		response.Fail(c, http.StatusInternalServerError, "error during login", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expires_at": exp})
}
