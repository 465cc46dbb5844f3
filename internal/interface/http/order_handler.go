package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/agrofix/storefront-api/internal/application"
	"github.com/agrofix/storefront-api/internal/domain/entity"
	"github.com/agrofix/storefront-api/pkg/response"
	"github.com/agrofix/storefront-api/pkg/validation"
)

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type orderItemRequest struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"gte=0"`
}

type placeOrderRequest struct {
	BuyerName       string             `json:"buyer_name" binding:"required"`
	BuyerContact    string             `json:"buyer_contact" binding:"required"`
	DeliveryAddress string             `json:"delivery_address" binding:"required"`
	Items           []orderItemRequest `json:"items" binding:"dive"`
	// Status is accepted and discarded; orders always start Pending.
	Status string `json:"status"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Place creates a new order and returns its generated id only.
func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	items := make([]entity.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = entity.OrderItem{
			ProductID: it.Product,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}

	id, err := h.Svc.Place(c.Request.Context(), application.PlaceOrderInput{
		BuyerName:       req.BuyerName,
		BuyerContact:    req.BuyerContact,
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
	})
	if err != nil {
		h.Logger.WithError(err).Error("place order failed")
		response.Fail(c, http.StatusInternalServerError, "failed to place order", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Get returns the full order record.
func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	o, err := h.Svc.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, application.ErrOrderNotFound):
		response.Fail(c, http.StatusNotFound, "order not found", nil)
		return
	case err != nil:
		h.Logger.WithError(err).WithField("order_id", id).Error("fetch order failed")
		response.Fail(c, http.StatusInternalServerError, "error fetching order", nil)
		return
	}
	c.JSON(http.StatusOK, o)
}

// List returns all orders; admin only.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list orders failed")
		response.Fail(c, http.StatusInternalServerError, "failed to fetch orders", nil)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatus backs both the PUT and PATCH status routes; the two are
// thin adapters over this one operation.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "status is required", validation.ToDetails(err))
		return
	}

	o, err := h.Svc.UpdateStatus(c.Request.Context(), id, req.Status)
	var invalid *entity.InvalidStatusError
	switch {
	case errors.As(err, &invalid):
		response.Fail(c, http.StatusBadRequest, invalid.Error(), gin.H{"valid_statuses": entity.StatusNames()})
		return
	case errors.Is(err, application.ErrInvalidTransition):
		response.Fail(c, http.StatusBadRequest, "status transition not allowed", nil)
		return
	case errors.Is(err, application.ErrOrderNotFound):
		response.Fail(c, http.StatusNotFound, "order not found", nil)
		return
	case err != nil:
		h.Logger.WithError(err).WithField("order_id", id).Error("update order status failed")
		response.Fail(c, http.StatusInternalServerError, "failed to update order", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "order status updated successfully",
		"order":     o,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
