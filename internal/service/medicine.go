// ABOUTME: Medicine service: catalog operations with name normalization.
// ABOUTME: Upper-cased trimmed names are the system's only normalization rule.
package service

import (
	"strings"

	"github.com/hamzakhoso/clinic/internal/models"
	"github.com/hamzakhoso/clinic/internal/pharmacydb"
)

// MedicineService wraps catalog access on the pharmacy store.
type MedicineService struct {
	db *pharmacydb.DB
}

// NewMedicineService wraps a pharmacy store.
func NewMedicineService(db *pharmacydb.DB) *MedicineService {
	return &MedicineService{db: db}
}

// CreateMedicine trims and upper-cases the name for display consistency,
// then creates the catalog entry. Returns the new id on success.
func (s *MedicineService) CreateMedicine(name string, category models.Category, manufacturer string, restricted bool, notes string) (int64, Result) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return 0, invalid("name is required")
	}
	if !models.IsValidCategory(string(category)) {
		return 0, invalid("unknown category: " + string(category))
	}

	m := &models.MedicineMaster{
		Name:         name,
		Category:     category,
		Manufacturer: manufacturer,
		Active:       true,
		Restricted:   restricted,
		Notes:        notes,
	}
	if err := s.db.CreateMedicine(m); err != nil {
		return 0, classify(err, "", "failed to create medicine")
	}
	return m.ID, ok("medicine created")
}

// AddVariant creates a sellable form for a catalog medicine. The store
// guarantees the paired zero stock row.
func (s *MedicineService) AddVariant(v *models.Variant) Result {
	if v.MedicineID == 0 {
		return invalid("medicine id is required")
	}
	if v.MinStockLevel < 0 {
		return invalid("minimum stock level cannot be negative")
	}
	err := s.db.CreateVariant(v)
	return classify(err, "variant added", "failed to add variant")
}

// MedicineDetails is a catalog entry with all its variants and stock.
type MedicineDetails struct {
	models.MedicineMaster
	Variants []models.VariantWithStock `json:"variants"`
}

// GetMedicineDetails assembles a full catalog view for one medicine.
func (s *MedicineService) GetMedicineDetails(id int64) (*MedicineDetails, Result) {
	master, err := s.db.GetMedicineMaster(id)
	if err != nil {
		return nil, classify(err, "", "failed to load medicine")
	}
	variants, err := s.db.VariantsForMedicine(id)
	if err != nil {
		return nil, classify(err, "", "failed to load variants")
	}
	return &MedicineDetails{MedicineMaster: *master, Variants: variants}, ok("")
}

// SearchMedicines passes through to the catalog substring search.
func (s *MedicineService) SearchMedicines(query string) ([]models.MedicineMaster, error) {
	return s.db.SearchMedicines(query)
}
