package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrofix/storefront-api/internal/application"
	"github.com/agrofix/storefront-api/internal/domain/entity"
	"github.com/agrofix/storefront-api/internal/domain/repository"
	"github.com/agrofix/storefront-api/internal/interface/middleware"
	"github.com/agrofix/storefront-api/pkg/helpers"
)

type fakeAdminRepo struct {
	admins map[string]*entity.Admin
	nextID int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*entity.Admin{}}
}

func (f *fakeAdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	f.nextID++
	a.ID = fmt.Sprintf("admin-%d", f.nextID)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	f.admins[a.Email] = &cp
	return nil
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	a, ok := f.admins[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

var _ repository.AdminRepository = (*fakeAdminRepo)(nil)

// scenarioRouter wires login, the auth gate, and the order routes the way
// the server does, against in-memory stores.
func scenarioRouter(t *testing.T) (*gin.Engine, *fakeOrderRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	tokens := helpers.NewTokenManager("scenario-secret", time.Hour)

	adminRepo := newFakeAdminRepo()
	adminSvc := application.NewAdminService(adminRepo, tokens, logger)
	require.NoError(t, adminSvc.EnsureSeedAdmin(context.Background(), "admin@agrofix.com", "admin123"))

	orderRepo := newFakeOrderRepo()
	oh := NewOrderHandler(application.NewOrderService(orderRepo, false, logger), logger)
	ah := NewAuthHandler(adminSvc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/admin/login", ah.Login)
	api.POST("/orders", oh.Place)
	api.GET("/orders/:id", oh.Get)

	admin := api.Group("/")
	admin.Use(middleware.Auth(tokens))
	admin.GET("/orders", oh.List)
	admin.PUT("/orders/:id", oh.UpdateStatus)
	admin.PATCH("/orders/:id/status", oh.UpdateStatus)
	return r, orderRepo
}

func jsonBody(v any) *bytes.Buffer {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(v)
	return &buf
}

func login(t *testing.T, r *gin.Engine, email, password string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/admin/login", gin.H{"email": email, "password": password})
	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp.Token
}

func TestScenario_LoginThenShipOrder(t *testing.T) {
	t.Parallel()

	r, repo := scenarioRouter(t)

	w, token := login(t, r, "admin@agrofix.com", "admin123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotEmpty(t, token)

	id := placeOrder(t, r)
	before := repo.orders[id].UpdatedAt

	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+id, jsonBody(gin.H{"status": "Shipped"}))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Order entity.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entity.StatusShipped, resp.Order.Status)
	assert.False(t, resp.Order.UpdatedAt.Before(before))
}

func TestScenario_LoginFailures(t *testing.T) {
	t.Parallel()

	r, _ := scenarioRouter(t)

	w, _ := login(t, r, "nobody@agrofix.com", "admin123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = login(t, r, "admin@agrofix.com", "wrong")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestScenario_ProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	r, _ := scenarioRouter(t)
	id := placeOrder(t, r)

	// no credential at all
	w := doJSON(r, http.MethodPut, "/api/orders/"+id, gin.H{"status": "Shipped"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// malformed credential
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// public order lookup stays open
	w = doJSON(r, http.MethodGet, "/api/orders/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
