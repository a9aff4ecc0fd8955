package store

import (
	"fmt"
	"time"

	"salestrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportFilter narrows ListReports. Set fields combine with AND.
type ReportFilter struct {
	MerchandiserID  uint
	RetailPartnerID uint
	ReportDate      *time.Time
}

var hundred = decimal.NewFromInt(100)

// CreateReport persists a report together with its items as one transaction:
// either everything lands or nothing does. The uix_merch_report_date index
// rejects a second report for the same merchandiser and date.
func (s *Store) CreateReport(actor *uint, report *models.DailySalesReport) error {
	if err := validateReport(report); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Create inserts the items alongside the report header.
		return tx.Create(report).Error
	})
	if err != nil {
		return translate(err)
	}
	s.audit(actor, "create", "daily_sales_report", report.ID,
		fmt.Sprintf("report for merchandiser %d on %s", report.MerchandiserID, report.ReportDate.Format("2006-01-02")))
	return nil
}

func validateReport(report *models.DailySalesReport) error {
	if !models.ValidStatus(report.Status) {
		return fmt.Errorf("%w: status must be submitted, pending, approved or rejected", ErrValidation)
	}
	if len(report.Items) == 0 {
		return fmt.Errorf("%w: a report needs at least one item", ErrValidation)
	}
	for _, item := range report.Items {
		if item.QuantitySold < 0 {
			return fmt.Errorf("%w: quantity_sold must be non-negative", ErrValidation)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: sales_price must be non-negative", ErrValidation)
		}
		if d := item.DiscountPercent; d != nil && (d.IsNegative() || d.GreaterThan(hundred)) {
			return fmt.Errorf("%w: discount_percent must be between 0 and 100", ErrValidation)
		}
	}
	return nil
}

// GetReport returns one report with items, products and merchandiser loaded.
func (s *Store) GetReport(id uint) (*models.DailySalesReport, error) {
	var report models.DailySalesReport
	err := s.db.Preload("Merchandiser").Preload("Items.Product").First(&report, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &report, nil
}

// ListReports returns reports most recent first (report_date desc, id desc as
// the stable tie-break), with everything the report views need eagerly loaded.
func (s *Store) ListReports(filter ReportFilter) ([]models.DailySalesReport, error) {
	q := s.db.Preload("Merchandiser").Preload("Items.Product").
		Order("report_date DESC, id DESC")
	if filter.MerchandiserID != 0 {
		q = q.Where("merchandiser_id = ?", filter.MerchandiserID)
	}
	if filter.RetailPartnerID != 0 {
		q = q.Where("retail_partner_id = ?", filter.RetailPartnerID)
	}
	if filter.ReportDate != nil {
		q = q.Where("report_date = ?", *filter.ReportDate)
	}

	var reports []models.DailySalesReport
	if err := q.Find(&reports).Error; err != nil {
		return nil, translate(err)
	}
	return reports, nil
}

// DeleteReport removes a report and all of its items.
func (s *Store) DeleteReport(actor *uint, id uint) error {
	report, err := s.GetReport(id)
	if err != nil {
		return err
	}
	if err := s.db.Select("Items").Delete(report).Error; err != nil {
		return translate(err)
	}
	s.audit(actor, "delete", "daily_sales_report", id, "report deleted with items")
	return nil
}
