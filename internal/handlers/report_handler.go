package handlers

import (
	"net/http"
	"strconv"
	"time"

	"salestrack/internal/models"
	"salestrack/internal/reports"
	"salestrack/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type reportItemRequest struct {
	ProductID       uint             `json:"productId" binding:"required"`
	QuantitySold    int              `json:"quantitySold"`
	SalesPrice      decimal.Decimal  `json:"salesPrice"`
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
}

type reportRequest struct {
	MerchandiserID  uint                `json:"merchandiserId" binding:"required"`
	RetailPartnerID uint                `json:"retailPartnerId" binding:"required"`
	ReportDate      string              `json:"reportDate" binding:"required"`
	Data            []reportItemRequest `json:"data" binding:"required"`
	Status          string              `json:"status"`
	Notes           string              `json:"notes"`
}

// ListReports returns reports most recent first, with derived totals and
// denormalized names. Filters (merchandiserId, retailPartnerId, reportDate)
// are optional and combine with AND.
func (h *Handler) ListReports(c *gin.Context) {
	var filter store.ReportFilter

	if v := c.Query("merchandiserId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid merchandiserId"})
			return
		}
		filter.MerchandiserID = uint(id)
	}
	if v := c.Query("retailPartnerId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid retailPartnerId"})
			return
		}
		filter.RetailPartnerID = uint(id)
	}
	if v := c.Query("reportDate"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reportDate must be YYYY-MM-DD"})
			return
		}
		filter.ReportDate = &date
	}

	rs, err := h.Store.ListReports(filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reports.BuildReportViews(rs))
}

// CreateReport stores a daily sales report and its items as one atomic unit
// and returns the derived view.
func (h *Handler) CreateReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	date, err := time.Parse("2006-01-02", req.ReportDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reportDate must be YYYY-MM-DD"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	report := models.DailySalesReport{
		MerchandiserID:  req.MerchandiserID,
		RetailPartnerID: req.RetailPartnerID,
		ReportDate:      date,
		Status:          status,
		Notes:           req.Notes,
		SubmittedAt:     time.Now().UTC(),
		Items:           make([]models.DailySalesItem, len(req.Data)),
	}
	for i, item := range req.Data {
		report.Items[i] = models.DailySalesItem{
			ProductID:       item.ProductID,
			QuantitySold:    item.QuantitySold,
			UnitPrice:       item.SalesPrice,
			DiscountPercent: item.DiscountPercent,
		}
	}

	if err := h.Store.CreateReport(actor(c), &report); err != nil {
		fail(c, err)
		return
	}

	// Reload so the view sees products and the merchandiser name.
	stored, err := h.Store.GetReport(report.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, reports.BuildReportView(*stored))
}

// DeleteReport removes a report and, with it, all of its items.
func (h *Handler) DeleteReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	if err := h.Store.DeleteReport(actor(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report deleted"})
}
