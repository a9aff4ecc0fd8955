package store

import (
	"fmt"

	"salestrack/internal/models"
)

// CreateInventory persists one (store, product) stock row. Duplicates are
// rejected by the uix_inventory_partner_product index, not by a pre-check, so
// two concurrent requests can never both succeed.
func (s *Store) CreateInventory(actor *uint, inv *models.Inventory) error {
	if inv.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
	}
	if inv.UnitSellingPrice.IsNegative() {
		return fmt.Errorf("%w: unit_selling_price must be non-negative", ErrValidation)
	}
	if err := translate(s.db.Create(inv).Error); err != nil {
		return err
	}
	s.audit(actor, "create", "inventory", inv.ID,
		fmt.Sprintf("inventory row for partner %d product %d", inv.RetailPartnerID, inv.ProductID))
	// Reload with the product embedded for the response.
	return translate(s.db.Preload("Product").First(inv, inv.ID).Error)
}

// ListInventory returns all stock rows with products embedded.
func (s *Store) ListInventory() ([]models.Inventory, error) {
	var rows []models.Inventory
	if err := s.db.Preload("Product").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// ListInventoryDetailed returns stock rows with both linked entities loaded,
// ordered by (retail_partner_id, product_id) for grouping. Pass storeID 0 for
// all stores.
func (s *Store) ListInventoryDetailed(storeID uint) ([]models.Inventory, error) {
	q := s.db.Preload("Product").Preload("RetailPartner").
		Order("retail_partner_id, product_id")
	if storeID != 0 {
		q = q.Where("retail_partner_id = ?", storeID)
	}
	var rows []models.Inventory
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
