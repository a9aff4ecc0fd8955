package handlers

import (
	"net/http"
	"strconv"

	"salestrack/internal/models"
	"salestrack/internal/reports"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type inventoryRequest struct {
	RetailPartnerID  uint            `json:"retailPartnerId" binding:"required"`
	ProductID        uint            `json:"productId" binding:"required"`
	Quantity         int             `json:"quantity"`
	UnitSellingPrice decimal.Decimal `json:"unitSellingPrice"`
}

type inventoryResponse struct {
	ID               uint             `json:"id"`
	RetailPartnerID  uint             `json:"retailPartnerId"`
	Product          *productResponse `json:"product,omitempty"`
	Quantity         int              `json:"quantity"`
	UnitSellingPrice decimal.Decimal  `json:"unitSellingPrice"`
}

func toInventoryResponse(inv models.Inventory) inventoryResponse {
	resp := inventoryResponse{
		ID:               inv.ID,
		RetailPartnerID:  inv.RetailPartnerID,
		Quantity:         inv.Quantity,
		UnitSellingPrice: inv.UnitSellingPrice,
	}
	if inv.Product != nil {
		p := toProductResponse(*inv.Product)
		resp.Product = &p
	}
	return resp
}

// CreateInventory stocks one product at one store. A second row for the same
// pair comes back as 409.
func (h *Handler) CreateInventory(c *gin.Context) {
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	inv := models.Inventory{
		RetailPartnerID:  req.RetailPartnerID,
		ProductID:        req.ProductID,
		Quantity:         req.Quantity,
		UnitSellingPrice: req.UnitSellingPrice,
	}
	if err := h.Store.CreateInventory(actor(c), &inv); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toInventoryResponse(inv))
}

// ListInventory returns all stock rows flat, products embedded.
func (h *Handler) ListInventory(c *gin.Context) {
	rows, err := h.Store.ListInventory()
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]inventoryResponse, len(rows))
	for i, inv := range rows {
		out[i] = toInventoryResponse(inv)
	}
	c.JSON(http.StatusOK, out)
}

// InventorySummary returns the per-store rollup, ordered by store name.
func (h *Handler) InventorySummary(c *gin.Context) {
	rows, err := h.Store.ListInventoryDetailed(0)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reports.SummarizeInventory(rows))
}

// InventoryDetailsByStore returns the grouped product breakdown for every
// store.
func (h *Handler) InventoryDetailsByStore(c *gin.Context) {
	h.inventoryDetails(c, 0)
}

// InventoryDetailsForStore returns the breakdown for one store.
func (h *Handler) InventoryDetailsForStore(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store ID"})
		return
	}
	h.inventoryDetails(c, uint(id))
}

func (h *Handler) inventoryDetails(c *gin.Context, storeID uint) {
	rows, err := h.Store.ListInventoryDetailed(storeID)
	if err != nil {
		fail(c, err)
		return
	}
	grouped := reports.GroupInventoryByStore(rows)
	if grouped == nil {
		grouped = []reports.StoreInventory{}
	}
	c.JSON(http.StatusOK, grouped)
}
