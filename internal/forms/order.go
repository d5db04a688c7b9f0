package forms

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"cardtrove/internal/core"
	"cardtrove/pkg/domain"
)

// OrderForm collects the editable fields of an order entry. Product type
// must be present and quantity/unit cost/total cost must parse.
//
// The client identifier is generated fresh on every save and never
// resolved against the client store. The link is a known gap: orders
// cannot be traced back to a stored profile.
type OrderForm struct {
	ProductType          string
	Size                 string
	Quantity             string
	UnitCost             string
	TotalCost            string
	DeliveryDate         time.Time
	UrgencyLevel         string
	PaymentStatus        string
	PaymentMethod        string
	OrderStatus          string
	IncludesDesign       bool
	RequiresInstallation bool
	DiscountCode         string
	InvoiceNumber        string
	DeliveryAddress      string
	Notes                string
}

// OrderFormFrom populates a form from an existing order for editing.
func OrderFormFrom(o domain.OrderEntry) OrderForm {
	return OrderForm{
		ProductType:          o.ProductType,
		Size:                 o.Size,
		Quantity:             strconv.Itoa(o.Quantity),
		UnitCost:             o.UnitCost.String(),
		TotalCost:            o.TotalCost.String(),
		DeliveryDate:         o.DeliveryDate,
		UrgencyLevel:         o.UrgencyLevel,
		PaymentStatus:        o.PaymentStatus,
		PaymentMethod:        o.PaymentMethod,
		OrderStatus:          o.OrderStatus,
		IncludesDesign:       o.IncludesDesign,
		RequiresInstallation: o.RequiresInstallation,
		DiscountCode:         fromPtr(o.DiscountCode),
		InvoiceNumber:        fromPtr(o.InvoiceNumber),
		DeliveryAddress:      fromPtr(o.DeliveryAddress),
		Notes:                fromPtr(o.Notes),
	}
}

// Build validates the form and constructs the order, preserving the
// identity of existing when editing. The order date is stamped at save
// time.
func (f OrderForm) Build(existing *domain.OrderEntry) (domain.OrderEntry, error) {
	qty, qtyOK := parseInt(f.Quantity)
	unit, unitOK := parseDecimal(f.UnitCost)
	total, totalOK := parseDecimal(f.TotalCost)
	if f.ProductType == "" || !qtyOK || !unitOK || !totalOK {
		return domain.OrderEntry{}, ErrInvalidForm
	}
	id := uuid.NewString()
	if existing != nil {
		id = existing.ID
	}
	return domain.OrderEntry{
		ID:                   id,
		ClientID:             uuid.NewString(),
		OrderDate:            time.Now(),
		ProductType:          f.ProductType,
		Size:                 f.Size,
		Quantity:             qty,
		UnitCost:             unit,
		TotalCost:            total,
		DeliveryDate:         f.DeliveryDate,
		UrgencyLevel:         f.UrgencyLevel,
		PaymentStatus:        f.PaymentStatus,
		PaymentMethod:        f.PaymentMethod,
		OrderStatus:          f.OrderStatus,
		IncludesDesign:       f.IncludesDesign,
		RequiresInstallation: f.RequiresInstallation,
		DiscountCode:         domain.StringPtr(f.DiscountCode),
		InvoiceNumber:        domain.StringPtr(f.InvoiceNumber),
		DeliveryAddress:      domain.StringPtr(f.DeliveryAddress),
		Notes:                domain.StringPtr(f.Notes),
	}, nil
}

// Submit builds the order and hands it to the store.
func (f OrderForm) Submit(ctx context.Context, store *core.Store[domain.OrderEntry], existing *domain.OrderEntry) error {
	order, err := f.Build(existing)
	if err != nil {
		return err
	}
	if existing == nil {
		store.Add(ctx, order)
	} else {
		store.Update(ctx, order)
	}
	return nil
}
