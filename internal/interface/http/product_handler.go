package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/agrofix/storefront-api/internal/application"
	"github.com/agrofix/storefront-api/pkg/response"
)

type ProductHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.CatalogService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

// List returns the whole catalog, no filtering, no pagination.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list products failed")
		response.Fail(c, http.StatusInternalServerError, "error fetching products", nil)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create accepts a multipart form with name, price, and an optional image.
func (h *ProductHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		response.Fail(c, http.StatusBadRequest, "invalid payload", map[string]string{"name": "is required"})
		return
	}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		response.Fail(c, http.StatusBadRequest, "invalid payload", map[string]string{"price": "must be a non-negative number"})
		return
	}

	var img *application.ImageUpload
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "could not read uploaded file", nil)
			return
		}
		defer f.Close()
		img = &application.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Reader:      f,
		}
	}

	p, err := h.Svc.Create(c.Request.Context(), name, price, img)
	switch {
	case errors.Is(err, application.ErrUploadTooLarge),
		errors.Is(err, application.ErrUnsupportedUpload):
		response.Fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	case err != nil:
		h.Logger.WithError(err).Error("add product failed")
		response.Fail(c, http.StatusInternalServerError, "failed to add product", nil)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Delete removes a product and, best-effort, its image blob.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	err := h.Svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, application.ErrProductNotFound):
		response.Fail(c, http.StatusNotFound, "product not found", nil)
		return
	case err != nil:
		h.Logger.WithError(err).WithField("product_id", id).Error("delete product failed")
		response.Fail(c, http.StatusInternalServerError, "failed to delete product", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
