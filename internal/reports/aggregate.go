// Package reports derives read-only views from stored rows: per-item final
// prices, per-report totals and per-store inventory rollups. Nothing here is
// ever persisted and nothing here mutates its inputs.
package reports

import (
	"sort"
	"time"

	"salestrack/internal/models"

	"github.com/shopspring/decimal"
)

// Placeholders used when a linked row has gone missing. Listings degrade to
// these instead of failing.
const (
	UnknownMerchandiser = "Unknown Merchandiser"
	UnknownProduct      = "N/A"
)

var hundred = decimal.NewFromInt(100)

// FinalPrice is the realized value of one sold line:
// quantity × price × (1 − discount/100), rounded to cents. A nil discount
// counts as zero.
func FinalPrice(quantitySold int, salesPrice decimal.Decimal, discountPercent *decimal.Decimal) decimal.Decimal {
	value := salesPrice.Mul(decimal.NewFromInt(int64(quantitySold)))
	if discountPercent != nil && !discountPercent.IsZero() {
		value = value.Sub(value.Mul(discountPercent.Div(hundred)))
	}
	return value.Round(2)
}

// ItemView is one product line of a report as the API exposes it.
type ItemView struct {
	ProductID       uint            `json:"productId"`
	ProductName     string          `json:"productName"`
	QuantitySold    int             `json:"quantitySold"`
	SalesPrice      decimal.Decimal `json:"salesPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	FinalPrice      decimal.Decimal `json:"finalPrice"`
}

// ReportView is a full daily sales report with its derived totals.
type ReportView struct {
	SalesID          uint       `json:"salesId"`
	Data             []ItemView `json:"data"`
	MerchandiserID   uint       `json:"merchandiserId"`
	MerchandiserName string     `json:"merchandiserName"`
	RetailPartnerID  uint       `json:"retailPartnerId"`
	ReportDate       string     `json:"reportDate"`
	Status           string     `json:"status"`
	Notes            string     `json:"notes"`
	SubmittedAt      time.Time  `json:"submittedAt"`

	TotalQuantity int             `json:"totalQuantity"`
	TotalSales    decimal.Decimal `json:"totalSales"`
	FinalValue    decimal.Decimal `json:"finalValue"`
}

// BuildReportView computes the derived fields for one report. TotalSales is
// rounded once on the aggregate; FinalValue sums the per-item rounded final
// prices and rounds again. The order matters: item-wise and aggregate-wise
// rounding can diverge by cents, and callers depend on this exact behavior.
func BuildReportView(r models.DailySalesReport) ReportView {
	view := ReportView{
		SalesID:          r.ID,
		Data:             make([]ItemView, 0, len(r.Items)),
		MerchandiserID:   r.MerchandiserID,
		MerchandiserName: UnknownMerchandiser,
		RetailPartnerID:  r.RetailPartnerID,
		ReportDate:       r.ReportDate.Format("2006-01-02"),
		Status:           r.Status,
		Notes:            r.Notes,
		SubmittedAt:      r.SubmittedAt,
	}
	if r.Merchandiser != nil {
		view.MerchandiserName = r.Merchandiser.Name
	}

	totalSales := decimal.Zero
	finalValue := decimal.Zero
	for _, item := range r.Items {
		name := UnknownProduct
		if item.Product != nil {
			name = item.Product.Name
		}
		discount := decimal.Zero
		if item.DiscountPercent != nil {
			discount = *item.DiscountPercent
		}
		final := FinalPrice(item.QuantitySold, item.UnitPrice, item.DiscountPercent)

		view.Data = append(view.Data, ItemView{
			ProductID:       item.ProductID,
			ProductName:     name,
			QuantitySold:    item.QuantitySold,
			SalesPrice:      item.UnitPrice,
			DiscountPercent: discount,
			FinalPrice:      final,
		})

		view.TotalQuantity += item.QuantitySold
		totalSales = totalSales.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.QuantitySold))))
		finalValue = finalValue.Add(final)
	}
	view.TotalSales = totalSales.Round(2)
	view.FinalValue = finalValue.Round(2)
	return view
}

// BuildReportViews maps BuildReportView over a slice, preserving order.
func BuildReportViews(rs []models.DailySalesReport) []ReportView {
	views := make([]ReportView, len(rs))
	for i, r := range rs {
		views[i] = BuildReportView(r)
	}
	return views
}

// StoreSummary is the per-store inventory rollup.
type StoreSummary struct {
	RetailPartnerID uint            `json:"retailPartnerId"`
	StoreName       string          `json:"storeName"`
	TotalQuantity   int             `json:"totalQuantity"`
	TotalValue      decimal.Decimal `json:"totalValue"`
}

// SummarizeInventory rolls stock rows up per store, ordered by store name
// ascending. Rows whose partner has gone missing are skipped.
func SummarizeInventory(rows []models.Inventory) []StoreSummary {
	byStore := make(map[uint]*StoreSummary)
	for _, row := range rows {
		if row.RetailPartner == nil {
			continue
		}
		sum, ok := byStore[row.RetailPartnerID]
		if !ok {
			sum = &StoreSummary{
				RetailPartnerID: row.RetailPartnerID,
				StoreName:       row.RetailPartner.Name,
				TotalValue:      decimal.Zero,
			}
			byStore[row.RetailPartnerID] = sum
		}
		sum.TotalQuantity += row.Quantity
		sum.TotalValue = sum.TotalValue.Add(row.UnitSellingPrice.Mul(decimal.NewFromInt(int64(row.Quantity))))
	}

	out := make([]StoreSummary, 0, len(byStore))
	for _, sum := range byStore {
		sum.TotalValue = sum.TotalValue.Round(2)
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StoreName != out[j].StoreName {
			return out[i].StoreName < out[j].StoreName
		}
		return out[i].RetailPartnerID < out[j].RetailPartnerID
	})
	return out
}

// ProductLine is one product's stock position within a store breakdown.
type ProductLine struct {
	ProductID        uint            `json:"productId"`
	ProductName      string          `json:"productName"`
	Category         string          `json:"category"`
	Quantity         int             `json:"quantity"`
	UnitSellingPrice decimal.Decimal `json:"unitSellingPrice"`
	TotalValue       decimal.Decimal `json:"totalValue"`
}

// StoreInventory is the detailed per-store breakdown.
type StoreInventory struct {
	RetailPartnerID uint          `json:"retailPartnerId"`
	StoreName       string        `json:"storeName"`
	Products        []ProductLine `json:"products"`
}

// GroupInventoryByStore builds the detailed breakdown: stores ordered by id,
// product lines within each store ordered by product id. Rows missing either
// linked entity are skipped rather than reported as errors.
func GroupInventoryByStore(rows []models.Inventory) []StoreInventory {
	sorted := make([]models.Inventory, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].RetailPartnerID != sorted[j].RetailPartnerID {
			return sorted[i].RetailPartnerID < sorted[j].RetailPartnerID
		}
		return sorted[i].ProductID < sorted[j].ProductID
	})

	var (
		out     []StoreInventory
		current *StoreInventory
	)
	for _, row := range sorted {
		if row.RetailPartner == nil || row.Product == nil {
			continue
		}
		if current == nil || current.RetailPartnerID != row.RetailPartnerID {
			out = append(out, StoreInventory{
				RetailPartnerID: row.RetailPartnerID,
				StoreName:       row.RetailPartner.Name,
			})
			current = &out[len(out)-1]
		}
		current.Products = append(current.Products, ProductLine{
			ProductID:        row.ProductID,
			ProductName:      row.Product.Name,
			Category:         row.Product.Category,
			Quantity:         row.Quantity,
			UnitSellingPrice: row.UnitSellingPrice,
			TotalValue:       row.UnitSellingPrice.Mul(decimal.NewFromInt(int64(row.Quantity))).Round(2),
		})
	}
	return out
}
