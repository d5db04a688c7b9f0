package forms

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"cardtrove/internal/core"
	"cardtrove/pkg/domain"
)

// MaterialForm collects the editable fields of a stock item. The material
// name must be present and quantity/reorder level/cost per unit must
// parse. Expiration and last-used dates carry an explicit toggle because
// an untouched date picker is indistinguishable from a chosen one.
type MaterialForm struct {
	MaterialName      string
	Category          string
	Quantity          string
	UnitType          string
	ReorderLevel      string
	Supplier          string
	CostPerUnit       string
	LastRestocked     time.Time
	HasExpiration     bool
	ExpirationDate    time.Time
	StorageLocation   string
	IsCritical        bool
	HasLastUsed       bool
	LastUsedDate      time.Time
	DamageReported    bool
	Barcode           string
	PurchaseReference string
	QualityRating     string
	Notes             string
}

// MaterialFormFrom populates a form from an existing stock item for
// editing.
func MaterialFormFrom(m domain.MaterialStock) MaterialForm {
	f := MaterialForm{
		MaterialName:      m.MaterialName,
		Category:          m.Category,
		Quantity:          strconv.Itoa(m.Quantity),
		UnitType:          m.UnitType,
		ReorderLevel:      strconv.Itoa(m.ReorderLevel),
		Supplier:          m.Supplier,
		CostPerUnit:       m.CostPerUnit.String(),
		LastRestocked:     m.LastRestocked,
		StorageLocation:   m.StorageLocation,
		IsCritical:        m.IsCritical,
		DamageReported:    m.DamageReported,
		Barcode:           fromPtr(m.Barcode),
		PurchaseReference: fromPtr(m.PurchaseReference),
		QualityRating:     intString(m.QualityRating),
		Notes:             fromPtr(m.Notes),
	}
	if m.ExpirationDate != nil {
		f.HasExpiration = true
		f.ExpirationDate = *m.ExpirationDate
	}
	if m.LastUsedDate != nil {
		f.HasLastUsed = true
		f.LastUsedDate = *m.LastUsedDate
	}
	return f
}

// Build validates the form and constructs the stock item, preserving the
// identity of existing when editing.
func (f MaterialForm) Build(existing *domain.MaterialStock) (domain.MaterialStock, error) {
	qty, qtyOK := parseInt(f.Quantity)
	reorder, reorderOK := parseInt(f.ReorderLevel)
	cost, costOK := parseDecimal(f.CostPerUnit)
	if blank(f.MaterialName) || !qtyOK || !reorderOK || !costOK {
		return domain.MaterialStock{}, ErrInvalidForm
	}
	id := uuid.NewString()
	if existing != nil {
		id = existing.ID
	}
	m := domain.MaterialStock{
		ID:                id,
		MaterialName:      f.MaterialName,
		Category:          f.Category,
		Quantity:          qty,
		UnitType:          f.UnitType,
		ReorderLevel:      reorder,
		Supplier:          f.Supplier,
		CostPerUnit:       cost,
		LastRestocked:     f.LastRestocked,
		StorageLocation:   f.StorageLocation,
		IsCritical:        f.IsCritical,
		DamageReported:    f.DamageReported,
		Barcode:           domain.StringPtr(f.Barcode),
		PurchaseReference: domain.StringPtr(f.PurchaseReference),
		QualityRating:     optionalInt(f.QualityRating),
		Notes:             domain.StringPtr(f.Notes),
	}
	if f.HasExpiration {
		exp := f.ExpirationDate
		m.ExpirationDate = &exp
	}
	if f.HasLastUsed {
		used := f.LastUsedDate
		m.LastUsedDate = &used
	}
	return m, nil
}

// Submit builds the stock item and hands it to the store.
func (f MaterialForm) Submit(ctx context.Context, store *core.Store[domain.MaterialStock], existing *domain.MaterialStock) error {
	material, err := f.Build(existing)
	if err != nil {
		return err
	}
	if existing == nil {
		store.Add(ctx, material)
	} else {
		store.Update(ctx, material)
	}
	return nil
}
