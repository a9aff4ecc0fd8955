package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role values accepted for User.Role.
const (
	RoleAdmin        = "admin"
	RoleMerchandiser = "merchandiser"
)

// Status values accepted for DailySalesReport.Status.
const (
	StatusSubmitted = "submitted"
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// ValidRole reports whether role is one of the allowed literals.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMerchandiser
}

// ValidStatus reports whether status is one of the allowed literals.
func ValidStatus(status string) bool {
	switch status {
	case StatusSubmitted, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// User - an admin or a field merchandiser assigned to one store
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	PasswordHash    string    `gorm:"not null" json:"-"` // Never return this in JSON
	Role            string    `gorm:"size:50;not null;check:chk_users_role,role IN ('admin','merchandiser')" json:"role"`
	RetailPartnerID *uint     `json:"retail_partner_id"` // nil for admins
	CreatedAt       time.Time `json:"created_at"`
}

// RetailPartner - a store that stocks inventory and receives merchandiser visits
type RetailPartner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Location  string    `gorm:"type:text" json:"location"`
	CreatedAt time.Time `json:"created_at"`

	Merchandisers []User `gorm:"foreignKey:RetailPartnerID" json:"merchandisers,omitempty"`
}

// Product - catalog item with cost and default selling price
type Product struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:100;not null" json:"name"`
	Category      string          `gorm:"size:50" json:"category"`
	UnitCostPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_cost_price"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Inventory - on-hand stock of one product at one retail partner.
// At most one row per (retail_partner_id, product_id).
type Inventory struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	RetailPartnerID  uint            `gorm:"not null;uniqueIndex:uix_inventory_partner_product" json:"retail_partner_id"`
	ProductID        uint            `gorm:"not null;uniqueIndex:uix_inventory_partner_product" json:"product_id"`
	Quantity         int             `gorm:"not null;default:0" json:"quantity"`
	UnitSellingPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_selling_price"`
	LastUpdated      time.Time       `gorm:"autoUpdateTime" json:"last_updated"`

	RetailPartner *RetailPartner `gorm:"foreignKey:RetailPartnerID" json:"retail_partner,omitempty"`
	Product       *Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// DailySalesReport - one merchandiser's submission for one store on one date.
// At most one row per (merchandiser_id, report_date). Items are owned by the
// report and removed with it.
type DailySalesReport struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	MerchandiserID  uint      `gorm:"not null;uniqueIndex:uix_merch_report_date" json:"merchandiser_id"`
	RetailPartnerID uint      `gorm:"not null" json:"retail_partner_id"`
	ReportDate      time.Time `gorm:"type:date;not null;uniqueIndex:uix_merch_report_date" json:"report_date"`
	Status          string    `gorm:"size:50;default:'submitted';check:chk_report_status,status IN ('submitted','pending','approved','rejected')" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes"`
	SubmittedAt     time.Time `json:"submitted_at"`

	Merchandiser *User            `gorm:"foreignKey:MerchandiserID" json:"merchandiser,omitempty"`
	Items        []DailySalesItem `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"items"`
}

// DailySalesItem - one product line within a daily report. UnitPrice is the
// realized sale price, which may differ from the product's default price.
type DailySalesItem struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	ReportID        uint             `gorm:"not null" json:"report_id"`
	ProductID       uint             `gorm:"not null" json:"product_id"`
	QuantitySold    int              `gorm:"not null" json:"quantity_sold"`
	UnitPrice       decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	DiscountPercent *decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount_percent"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// AuditLog - trail of write operations, best-effort
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `json:"user_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	TableName string    `gorm:"size:100" json:"table_name"`
	RowID     uint      `json:"row_id"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
