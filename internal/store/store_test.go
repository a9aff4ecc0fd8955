package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"salestrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedMerchandiser(t *testing.T, s *Store, name string) *models.User {
	t.Helper()
	u := &models.User{Name: name, PasswordHash: "x", Role: models.RoleMerchandiser}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return u
}

func seedPartner(t *testing.T, s *Store, name string) *models.RetailPartner {
	t.Helper()
	rp := &models.RetailPartner{Name: name, Location: "Dhaka"}
	if err := s.CreateRetailPartner(nil, rp); err != nil {
		t.Fatalf("seed partner %s: %v", name, err)
	}
	return rp
}

func seedProduct(t *testing.T, s *Store, name string) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Category: "Grocery", UnitCostPrice: dec("1.00"), UnitPrice: dec("2.00")}
	if err := s.CreateProduct(nil, p); err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return p
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	s := testStore(t)
	err := s.CreateUser(&models.User{Name: "eve", PasswordHash: "x", Role: "superuser"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestCreateUserDuplicateNameConflicts(t *testing.T) {
	s := testStore(t)
	seedMerchandiser(t, s, "karim")
	err := s.CreateUser(&models.User{Name: "karim", PasswordHash: "x", Role: models.RoleMerchandiser})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestGetUserByIDAndNameFailsClosed(t *testing.T) {
	s := testStore(t)
	u := seedMerchandiser(t, s, "karim")

	if _, err := s.GetUserByIDAndName(u.ID, "karim"); err != nil {
		t.Fatalf("matching lookup: %v", err)
	}
	if _, err := s.GetUserByIDAndName(u.ID, "someone-else"); !errors.Is(err, ErrNotFound) {
		t.Errorf("mismatched name: err = %v, want ErrNotFound", err)
	}
}

func TestInventoryUniquePerStoreAndProduct(t *testing.T) {
	s := testStore(t)
	rp := seedPartner(t, s, "Alpha Mart")
	p := seedProduct(t, s, "Soap")

	first := &models.Inventory{RetailPartnerID: rp.ID, ProductID: p.ID, Quantity: 4, UnitSellingPrice: dec("2.50")}
	if err := s.CreateInventory(nil, first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	dup := &models.Inventory{RetailPartnerID: rp.ID, ProductID: p.ID, Quantity: 9, UnitSellingPrice: dec("3.00")}
	if err := s.CreateInventory(nil, dup); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate create: err = %v, want ErrConflict", err)
	}

	// The original row must be untouched.
	rows, err := s.ListInventory()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].Quantity != 4 {
		t.Errorf("rows = %+v, want the single original row with quantity 4", rows)
	}
}

func TestCreateInventoryRejectsNegatives(t *testing.T) {
	s := testStore(t)
	rp := seedPartner(t, s, "Alpha Mart")
	p := seedProduct(t, s, "Soap")

	err := s.CreateInventory(nil, &models.Inventory{RetailPartnerID: rp.ID, ProductID: p.ID, Quantity: -1, UnitSellingPrice: dec("1.00")})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("negative quantity: err = %v, want ErrValidation", err)
	}
}

func reportFor(merchID, partnerID uint, day time.Time, items ...models.DailySalesItem) *models.DailySalesReport {
	return &models.DailySalesReport{
		MerchandiserID:  merchID,
		RetailPartnerID: partnerID,
		ReportDate:      day,
		Status:          models.StatusPending,
		SubmittedAt:     time.Now().UTC(),
		Items:           items,
	}
}

func TestReportUniquePerMerchandiserAndDate(t *testing.T) {
	s := testStore(t)
	m := seedMerchandiser(t, s, "karim")
	rp := seedPartner(t, s, "Alpha Mart")
	p := seedProduct(t, s, "Soap")
	day := time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC)

	item := models.DailySalesItem{ProductID: p.ID, QuantitySold: 1, UnitPrice: dec("2.00")}
	if err := s.CreateReport(nil, reportFor(m.ID, rp.ID, day, item)); err != nil {
		t.Fatalf("first report: %v", err)
	}

	err := s.CreateReport(nil, reportFor(m.ID, rp.ID, day, item))
	if !errors.Is(err, ErrConflict) {
		t.Errorf("same merchandiser and date: err = %v, want ErrConflict", err)
	}

	// Same date, different merchandiser is fine.
	other := seedMerchandiser(t, s, "rahim")
	if err := s.CreateReport(nil, reportFor(other.ID, rp.ID, day, item)); err != nil {
		t.Errorf("other merchandiser same date: %v", err)
	}
}

func TestCreateReportValidation(t *testing.T) {
	s := testStore(t)
	m := seedMerchandiser(t, s, "karim")
	rp := seedPartner(t, s, "Alpha Mart")
	p := seedProduct(t, s, "Soap")
	day := time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC)

	bad := reportFor(m.ID, rp.ID, day, models.DailySalesItem{ProductID: p.ID, QuantitySold: 1, UnitPrice: dec("2.00")})
	bad.Status = "archived"
	if err := s.CreateReport(nil, bad); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown status: err = %v, want ErrValidation", err)
	}

	over := dec("101")
	item := models.DailySalesItem{ProductID: p.ID, QuantitySold: 1, UnitPrice: dec("2.00"), DiscountPercent: &over}
	if err := s.CreateReport(nil, reportFor(m.ID, rp.ID, day, item)); !errors.Is(err, ErrValidation) {
		t.Errorf("discount over 100: err = %v, want ErrValidation", err)
	}

	if err := s.CreateReport(nil, reportFor(m.ID, rp.ID, day)); !errors.Is(err, ErrValidation) {
		t.Errorf("no items: err = %v, want ErrValidation", err)
	}

	// Nothing should have been written along the way.
	rs, err := s.ListReports(ReportFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rs) != 0 {
		t.Errorf("got %d reports after failed creates, want 0", len(rs))
	}
}

func TestReportAtomicityOnItemFailure(t *testing.T) {
	s := testStore(t)
	m := seedMerchandiser(t, s, "karim")
	rp := seedPartner(t, s, "Alpha Mart")
	p := seedProduct(t, s, "Soap")
	day := time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC)

	// Second item references a product that does not exist, so the whole
	// report must roll back.
	err := s.CreateReport(nil, reportFor(m.ID, rp.ID, day,
		models.DailySalesItem{ProductID: p.ID, QuantitySold: 1, UnitPrice: dec("2.00")},
		models.DailySalesItem{ProductID: 9999, QuantitySold: 1, UnitPrice: dec("2.00")},
	))
	if err == nil {
		t.Fatal("report with dangling product id created, want failure")
	}

	rs, err := s.ListReports(ReportFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rs) != 0 {
		t.Errorf("got %d reports, want 0 (rollback)", len(rs))
	}
	var count int64
	if err := s.db.Model(&models.DailySalesItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d orphan items, want 0 (rollback)", count)
	}
}

func TestListReportsFiltersAndOrder(t *testing.T) {
	s := testStore(t)
	karim := seedMerchandiser(t, s, "karim")
	rahim := seedMerchandiser(t, s, "rahim")
	rp := seedPartner(t, s, "Alpha Mart")
	p := seedProduct(t, s, "Soap")
	item := models.DailySalesItem{ProductID: p.ID, QuantitySold: 1, UnitPrice: dec("2.00")}

	day1 := time.Date(2025, 6, 26, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC)
	for _, r := range []*models.DailySalesReport{
		reportFor(karim.ID, rp.ID, day1, item),
		reportFor(karim.ID, rp.ID, day2, item),
		reportFor(rahim.ID, rp.ID, day2, item),
	} {
		if err := s.CreateReport(nil, r); err != nil {
			t.Fatalf("seed report: %v", err)
		}
	}

	all, err := s.ListReports(ReportFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d reports, want 3", len(all))
	}
	// report_date desc, then id desc.
	if !all[0].ReportDate.After(all[2].ReportDate) {
		t.Errorf("reports not ordered most recent first: %v then %v", all[0].ReportDate, all[2].ReportDate)
	}
	if all[0].ReportDate.Equal(all[1].ReportDate) && all[0].ID < all[1].ID {
		t.Errorf("tie not broken by id desc: %d before %d", all[0].ID, all[1].ID)
	}

	byMerch, err := s.ListReports(ReportFilter{MerchandiserID: karim.ID})
	if err != nil {
		t.Fatalf("filter by merchandiser: %v", err)
	}
	if len(byMerch) != 2 {
		t.Errorf("karim has %d reports, want 2", len(byMerch))
	}

	combined, err := s.ListReports(ReportFilter{MerchandiserID: karim.ID, ReportDate: &day2})
	if err != nil {
		t.Fatalf("combined filter: %v", err)
	}
	if len(combined) != 1 {
		t.Errorf("combined filter matched %d, want 1", len(combined))
	}

	// Eager loading must be in place for the views.
	if combined[0].Merchandiser == nil || combined[0].Merchandiser.Name != "karim" {
		t.Error("merchandiser not eagerly loaded")
	}
	if len(combined[0].Items) != 1 || combined[0].Items[0].Product == nil {
		t.Error("items or products not eagerly loaded")
	}
}

func TestDeleteReportCascadesToItems(t *testing.T) {
	s := testStore(t)
	m := seedMerchandiser(t, s, "karim")
	rp := seedPartner(t, s, "Alpha Mart")
	p := seedProduct(t, s, "Soap")
	day := time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC)

	report := reportFor(m.ID, rp.ID, day,
		models.DailySalesItem{ProductID: p.ID, QuantitySold: 1, UnitPrice: dec("2.00")},
		models.DailySalesItem{ProductID: p.ID, QuantitySold: 2, UnitPrice: dec("3.00")},
	)
	if err := s.CreateReport(nil, report); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.DeleteReport(nil, report.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := s.GetReport(report.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("report still readable after delete: %v", err)
	}
	var count int64
	if err := s.db.Model(&models.DailySalesItem{}).Where("report_id = ?", report.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Errorf("%d items survived the delete, want 0", count)
	}
}

func TestGetProductNotFound(t *testing.T) {
	s := testStore(t)
	if _, err := s.GetProduct(12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAuditTrailWrittenOnCreate(t *testing.T) {
	s := testStore(t)
	seedProduct(t, s, "Soap")

	var count int64
	if err := s.db.Model(&models.AuditLog{}).Count(&count).Error; err != nil {
		t.Fatalf("count audit rows: %v", err)
	}
	if count == 0 {
		t.Error("no audit row written for product creation")
	}
}
