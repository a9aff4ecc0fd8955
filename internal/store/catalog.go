package store

import (
	"fmt"

	"salestrack/internal/models"
)

// CreateRetailPartner persists a new store.
func (s *Store) CreateRetailPartner(actor *uint, rp *models.RetailPartner) error {
	if rp.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := translate(s.db.Create(rp).Error); err != nil {
		return err
	}
	s.audit(actor, "create", "retail_partners", rp.ID, "retail partner "+rp.Name+" created")
	return nil
}

// ListRetailPartners returns all stores with their assigned merchandisers.
func (s *Store) ListRetailPartners() ([]models.RetailPartner, error) {
	var partners []models.RetailPartner
	if err := s.db.Preload("Merchandisers").Find(&partners).Error; err != nil {
		return nil, translate(err)
	}
	return partners, nil
}

// CreateProduct persists a new catalog item.
func (s *Store) CreateProduct(actor *uint, p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.UnitCostPrice.IsNegative() || p.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: prices must be non-negative", ErrValidation)
	}
	if err := translate(s.db.Create(p).Error); err != nil {
		return err
	}
	s.audit(actor, "create", "products", p.ID, "product "+p.Name+" created")
	return nil
}

// GetProduct returns one catalog item by id.
func (s *Store) GetProduct(id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// ListProducts returns the whole catalog.
func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}
