// ABOUTME: Pharmacy catalog, stock, movement ledger, and globule models.
// ABOUTME: Defines category, movement, and reference enums with validators.
package models

import (
	"time"
)

// Category classifies a catalog medicine.
type Category string

const (
	CategoryQ         Category = "Q"
	CategoryDilution  Category = "DILUTION"
	CategoryBiochemic Category = "BIOCHEMIC"
	CategoryComplex   Category = "COMPLEX"
	CategoryNosode    Category = "NOSODE"
	CategoryGlobule   Category = "GLOBULE"
	CategoryOther     Category = "OTHER"
)

// AllCategories lists every valid catalog category.
var AllCategories = []Category{
	CategoryQ, CategoryDilution, CategoryBiochemic,
	CategoryComplex, CategoryNosode, CategoryGlobule, CategoryOther,
}

// IsValidCategory checks if a string is a valid medicine category.
func IsValidCategory(s string) bool {
	for _, c := range AllCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// MovementType tags a stock movement with its direction.
type MovementType string

const (
	MovementIn      MovementType = "IN"
	MovementOut     MovementType = "OUT"
	MovementExpired MovementType = "EXPIRED"
	MovementAdjust  MovementType = "ADJUST"
	MovementReturn  MovementType = "RETURN"
)

// Sign returns +1 for movements that raise stock and -1 for movements that
// lower it. ADJUST rows carry their own sign in the quantity.
func (m MovementType) Sign() int {
	switch m {
	case MovementIn, MovementReturn:
		return 1
	case MovementOut, MovementExpired:
		return -1
	}
	return 1
}

// ReferenceType is the reason-code tag on a stock movement.
type ReferenceType string

const (
	RefPurchase     ReferenceType = "PURCHASE"
	RefPrescription ReferenceType = "PRESCRIPTION"
	RefDisposal     ReferenceType = "DISPOSAL"
	RefAdjustment   ReferenceType = "ADJUSTMENT"
)

// MedicineMaster is a catalog entry: what exists, independent of the form
// it is sold in.
type MedicineMaster struct {
	ID           int64    `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	Category     Category `db:"category" json:"category"`
	Manufacturer string   `db:"manufacturer" json:"manufacturer,omitempty"`
	Active       bool     `db:"is_active" json:"is_active"`
	Restricted   bool     `db:"is_restricted" json:"is_restricted"`
	Notes        string   `db:"notes" json:"notes,omitempty"`
}

// Variant is one concrete sellable form of a catalog medicine, e.g.
// Arnica 30C 30ml liquid.
type Variant struct {
	ID            int64  `db:"id" json:"id"`
	MedicineID    int64  `db:"medicine_id" json:"medicine_id"`
	Potency       string `db:"potency" json:"potency,omitempty"`
	Form          string `db:"form" json:"form,omitempty"`
	BottleSize    string `db:"bottle_size" json:"bottle_size,omitempty"`
	UnitType      string `db:"unit_type" json:"unit_type,omitempty"`
	MinStockLevel int    `db:"min_stock_level" json:"min_stock_level"`
	ExpiryDate    string `db:"expiry_date" json:"expiry_date,omitempty"`
}

// VariantWithStock is a variant joined with its current quantity.
type VariantWithStock struct {
	Variant
	Quantity int `db:"quantity_available" json:"quantity_available"`
}

// Stock is the single mutable current-state cell per variant. Everything
// else in the pharmacy store is descriptive or historical.
type Stock struct {
	ID          int64     `db:"id" json:"id"`
	VariantID   int64     `db:"variant_id" json:"variant_id"`
	Quantity    int       `db:"quantity_available" json:"quantity_available"`
	LastUpdated time.Time `db:"last_updated" json:"last_updated"`
}

// Movement is one append-only ledger row recording a single stock change.
// Movements are never updated or deleted by application logic.
type Movement struct {
	ID            int64         `db:"id" json:"id"`
	VariantID     int64         `db:"variant_id" json:"variant_id"`
	MovementType  MovementType  `db:"movement_type" json:"movement_type"`
	Quantity      int           `db:"quantity" json:"quantity"`
	ReferenceType ReferenceType `db:"reference_type" json:"reference_type"`
	ReferenceID   string        `db:"reference_id" json:"reference_id,omitempty"`
	Timestamp     time.Time     `db:"timestamp" json:"timestamp"`
	Notes         string        `db:"notes" json:"notes,omitempty"`
}

// LowStockItem is one row of the low-stock threshold scan.
type LowStockItem struct {
	Name          string `db:"name" json:"name"`
	Potency       string `db:"potency" json:"potency,omitempty"`
	Form          string `db:"form" json:"form,omitempty"`
	Quantity      int    `db:"quantity_available" json:"quantity_available"`
	MinStockLevel int    `db:"min_stock_level" json:"min_stock_level"`
}

// GlobuleStock tracks raw globule pellet stock by numeric size class,
// independent of the master/variant hierarchy.
type GlobuleStock struct {
	ID       int64 `db:"id" json:"id"`
	Size     int   `db:"size" json:"size"`
	Quantity int   `db:"quantity_available" json:"quantity_available"`
	MinLevel int   `db:"min_level" json:"min_level"`
}

// MedicineTally is the denormalized popularity counter per medicine name
// seen in visit medicine text. It is not a source of truth for stock.
type MedicineTally struct {
	ID          int64      `db:"medicine_id" json:"id" yaml:"id"`
	Name        string     `db:"name" json:"name" yaml:"name"`
	Description string     `db:"description" json:"description,omitempty" yaml:"description,omitempty"`
	TimesUsed   int        `db:"times_used" json:"times_used" yaml:"times_used"`
	LastUsed    *time.Time `db:"last_used" json:"last_used,omitempty" yaml:"last_used,omitempty"`
}

// Drift is one reconciliation finding: a variant whose cached quantity does
// not match the net of its movement ledger.
type Drift struct {
	VariantID int64 `db:"variant_id" json:"variant_id"`
	Cached    int   `db:"cached" json:"cached"`
	LedgerNet int   `db:"ledger_net" json:"ledger_net"`
}
