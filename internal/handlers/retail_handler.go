package handlers

import (
	"net/http"

	"salestrack/internal/models"

	"github.com/gin-gonic/gin"
)

type retailPartnerRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

type merchandiserName struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// retailPartnerResponse exposes the partner's name under "store", the alias
// the frontend expects.
type retailPartnerResponse struct {
	ID            uint               `json:"id"`
	Store         string             `json:"store"`
	Location      string             `json:"location"`
	Merchandisers []merchandiserName `json:"merchandisers"`
}

func toRetailPartnerResponse(rp models.RetailPartner) retailPartnerResponse {
	resp := retailPartnerResponse{
		ID:            rp.ID,
		Store:         rp.Name,
		Location:      rp.Location,
		Merchandisers: make([]merchandiserName, 0, len(rp.Merchandisers)),
	}
	for _, m := range rp.Merchandisers {
		resp.Merchandisers = append(resp.Merchandisers, merchandiserName{ID: m.ID, Name: m.Name})
	}
	return resp
}

// ListRetailPartners returns all stores with their assigned merchandisers.
func (h *Handler) ListRetailPartners(c *gin.Context) {
	partners, err := h.Store.ListRetailPartners()
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]retailPartnerResponse, len(partners))
	for i, rp := range partners {
		out[i] = toRetailPartnerResponse(rp)
	}
	c.JSON(http.StatusOK, out)
}

// CreateRetailPartner adds a store.
func (h *Handler) CreateRetailPartner(c *gin.Context) {
	var req retailPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	partner := models.RetailPartner{Name: req.Name, Location: req.Location}
	if err := h.Store.CreateRetailPartner(actor(c), &partner); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRetailPartnerResponse(partner))
}
