package handlers

import (
	"net/http"
	"strconv"

	"salestrack/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category"`
	UnitCostPrice decimal.Decimal `json:"unitCostPrice"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}

type productResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	UnitCostPrice decimal.Decimal `json:"unitCostPrice"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}

func toProductResponse(p models.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		UnitCostPrice: p.UnitCostPrice,
		UnitPrice:     p.UnitPrice,
	}
}

// ListProducts returns the full catalog.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Store.ListProducts()
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	c.JSON(http.StatusOK, out)
}

// GetProduct returns one catalog item or 404.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := h.Store.GetProduct(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// CreateProduct adds a catalog item.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product := models.Product{
		Name:          req.Name,
		Category:      req.Category,
		UnitCostPrice: req.UnitCostPrice,
		UnitPrice:     req.UnitPrice,
	}
	if err := h.Store.CreateProduct(actor(c), &product); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(product))
}
