package forms

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"cardtrove/internal/core"
	"cardtrove/internal/infra/persistence/memory"
	"cardtrove/pkg/domain"
)

func testConfig() core.Config {
	return core.Config{
		Snapshots: memory.NewStore(),
		Logger:    log.New(io.Discard, "", 0),
	}
}

func TestClientFormCreateWithBlankEmail(t *testing.T) {
	ctx := context.Background()
	store := core.OpenStore[domain.ClientProfile](ctx, domain.EntityClientProfile, nil, testConfig())

	form := ClientForm{
		BusinessName: "Acme Prints",
		PhoneNumber:  "5550001",
	}
	if err := form.Submit(ctx, store, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := store.Len(); got != 1 {
		t.Fatalf("store length = %d, want 1", got)
	}
	saved := store.List()[0]
	if saved.BusinessName != "Acme Prints" || saved.PhoneNumber != "5550001" {
		t.Fatalf("unexpected record: %+v", saved)
	}
	if saved.Email != nil {
		t.Fatalf("blank email should resolve to nil, got %q", *saved.Email)
	}
	if saved.TotalOrdersPlaced != 0 {
		t.Fatalf("total orders should default to 0, got %d", saved.TotalOrdersPlaced)
	}
	if saved.ID == "" {
		t.Fatal("expected a generated identity")
	}
}

func TestClientFormRequiresNameAndPhone(t *testing.T) {
	cases := []struct {
		name string
		form ClientForm
	}{
		{"blank name", ClientForm{BusinessName: "   ", PhoneNumber: "5550001"}},
		{"blank phone", ClientForm{BusinessName: "Acme Prints", PhoneNumber: ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.form.Build(nil); !errors.Is(err, ErrInvalidForm) {
				t.Fatalf("expected ErrInvalidForm, got %v", err)
			}
		})
	}
}

func TestClientFormOptionalNumericLeniency(t *testing.T) {
	form := ClientForm{
		BusinessName:      "Acme Prints",
		PhoneNumber:       "5550001",
		TotalOrdersPlaced: "not a number",
		FeedbackRating:    "also not",
		Tags:              "vip, wholesale , ",
	}
	client, err := form.Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if client.TotalOrdersPlaced != 0 {
		t.Fatalf("unparseable total orders should default to 0, got %d", client.TotalOrdersPlaced)
	}
	if client.FeedbackRating != nil {
		t.Fatalf("unparseable rating should be dropped, got %d", *client.FeedbackRating)
	}
	want := []string{"vip", "wholesale"}
	if len(client.Tags) != len(want) || client.Tags[0] != want[0] || client.Tags[1] != want[1] {
		t.Fatalf("tags = %v, want %v", client.Tags, want)
	}
}

func TestClientFormEditPreservesIdentity(t *testing.T) {
	ctx := context.Background()
	store := core.OpenStore[domain.ClientProfile](ctx, domain.EntityClientProfile, nil, testConfig())

	create := ClientForm{BusinessName: "Acme Prints", PhoneNumber: "5550001"}
	if err := create.Submit(ctx, store, nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	existing := store.List()[0]

	edit := ClientFormFrom(existing)
	edit.BusinessName = "Acme Prints & Signs"
	if err := edit.Submit(ctx, store, &existing); err != nil {
		t.Fatalf("edit: %v", err)
	}

	if got := store.Len(); got != 1 {
		t.Fatalf("edit should not grow the store, length = %d", got)
	}
	updated := store.List()[0]
	if updated.ID != existing.ID {
		t.Fatalf("identity changed on edit: %s -> %s", existing.ID, updated.ID)
	}
	if updated.BusinessName != "Acme Prints & Signs" {
		t.Fatalf("edit not applied: %+v", updated)
	}
}

func TestOrderFormValidation(t *testing.T) {
	valid := OrderForm{
		ProductType: "Business Cards",
		Quantity:    "500",
		UnitCost:    "1.50",
		TotalCost:   "750.00",
	}
	order, err := valid.Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if order.Quantity != 500 || order.UnitCost.String() != "1.5" {
		t.Fatalf("parsed values wrong: %+v", order)
	}
	if order.ClientID == "" {
		t.Fatal("expected a generated client id")
	}

	bad := valid
	bad.Quantity = "many"
	if _, err := bad.Build(nil); !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("expected ErrInvalidForm for non-numeric quantity, got %v", err)
	}
	bad = valid
	bad.ProductType = ""
	if _, err := bad.Build(nil); !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("expected ErrInvalidForm for empty product type, got %v", err)
	}
}

func TestMaterialFormRejectsNonNumericQuantity(t *testing.T) {
	ctx := context.Background()
	store := core.OpenStore(ctx, domain.EntityMaterialStock, domain.SampleMaterialStock, testConfig())
	before := store.Len()

	form := MaterialForm{
		MaterialName: "Vinyl Sheet",
		Quantity:     "abc",
		ReorderLevel: "5",
		CostPerUnit:  "12.00",
	}
	err := form.Submit(ctx, store, nil)
	if !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("expected ErrInvalidForm, got %v", err)
	}
	if got := store.Len(); got != before {
		t.Fatalf("failed submit mutated the store: %d -> %d", before, got)
	}
}

func TestMaterialFormOptionalDates(t *testing.T) {
	form := MaterialForm{
		MaterialName: "Glossy Paper",
		Quantity:     "40",
		ReorderLevel: "10",
		CostPerUnit:  "3.25",
	}
	m, err := form.Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.ExpirationDate != nil || m.LastUsedDate != nil {
		t.Fatalf("untoggled dates should stay nil: %+v", m)
	}

	roundTrip := MaterialFormFrom(m)
	if roundTrip.HasExpiration || roundTrip.HasLastUsed {
		t.Fatalf("toggles should reflect absent dates: %+v", roundTrip)
	}
}

func TestDesignFormValidation(t *testing.T) {
	valid := DesignForm{
		TextContent:          "Grand Opening Banner",
		EstimatedDesignHours: "4.5",
	}
	design, err := valid.Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if design.EstimatedDesignHours.String() != "4.5" {
		t.Fatalf("hours = %s, want 4.5", design.EstimatedDesignHours)
	}

	bad := valid
	bad.TextContent = ""
	if _, err := bad.Build(nil); !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("expected ErrInvalidForm for empty text, got %v", err)
	}
	bad = valid
	bad.EstimatedDesignHours = "a few"
	if _, err := bad.Build(nil); !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("expected ErrInvalidForm for non-numeric hours, got %v", err)
	}
}

func TestDesignFormEditPreservesReferenceFile(t *testing.T) {
	ref := "references/abc/sketch.pdf"
	existing := domain.DesignRequest{
		ID:            "abc",
		TextContent:   "Banner",
		ReferenceFile: &ref,
	}
	form := DesignFormFrom(existing)
	form.EstimatedDesignHours = "2"
	design, err := form.Build(&existing)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if design.ID != "abc" {
		t.Fatalf("identity changed: %s", design.ID)
	}
	if design.ReferenceFile == nil || *design.ReferenceFile != ref {
		t.Fatalf("reference file not preserved: %+v", design.ReferenceFile)
	}
}
