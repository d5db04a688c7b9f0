package core

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"cardtrove/internal/blob"
	"cardtrove/internal/infra/persistence/memory"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := Config{
		Snapshots: memory.NewStore(),
		Logger:    log.New(io.Discard, "", 0),
	}
	return NewApp(context.Background(), cfg, blob.NewMemory())
}

func TestNewAppSeedsEveryStore(t *testing.T) {
	app := newTestApp(t)
	if got := app.Clients.Len(); got != 2 {
		t.Fatalf("clients seeded %d, want 2", got)
	}
	if got := app.Orders.Len(); got != 2 {
		t.Fatalf("orders seeded %d, want 2", got)
	}
	if got := app.Materials.Len(); got != 2 {
		t.Fatalf("materials seeded %d, want 2", got)
	}
	if got := app.Designs.Len(); got != 2 {
		t.Fatalf("designs seeded %d, want 2", got)
	}
}

func TestDeleteSecondOrderByOffset(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	orders := app.Orders.List()

	if got := app.Orders.DeleteAt(ctx, 1); got != 1 {
		t.Fatalf("removed %d orders, want 1", got)
	}
	remaining := app.Orders.List()
	if len(remaining) != 1 || remaining[0].ID != orders[0].ID {
		t.Fatalf("wrong survivor after index delete: %+v", remaining)
	}
}

func TestAttachClientLogo(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	client := app.Clients.List()[0]

	info, err := app.AttachClientLogo(ctx, client.ID, "logo.png", strings.NewReader("png bytes"), "image/png")
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	wantKey := "logos/" + client.ID + "/logo.png"
	if info.Key != wantKey {
		t.Fatalf("stored key = %q, want %q", info.Key, wantKey)
	}

	updated, ok := app.Clients.Get(client.ID)
	if !ok || updated.LogoReference == nil || *updated.LogoReference != wantKey {
		t.Fatalf("logo reference not stamped: %+v", updated.LogoReference)
	}
	if _, _, err := app.Attachments().Get(ctx, wantKey); err != nil {
		t.Fatalf("attachment not retrievable: %v", err)
	}
}

func TestAttachDesignReference(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	design := app.Designs.List()[0]

	info, err := app.AttachDesignReference(ctx, design.ID, "sketch.pdf", strings.NewReader("pdf bytes"), "application/pdf")
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	wantKey := "references/" + design.ID + "/sketch.pdf"
	if info.Key != wantKey {
		t.Fatalf("stored key = %q, want %q", info.Key, wantKey)
	}
	updated, _ := app.Designs.Get(design.ID)
	if updated.ReferenceFile == nil || *updated.ReferenceFile != wantKey {
		t.Fatalf("reference file not stamped: %+v", updated.ReferenceFile)
	}
}

func TestAttachUnknownRecordFails(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	if _, err := app.AttachClientLogo(ctx, "missing", "logo.png", strings.NewReader("x"), ""); err == nil {
		t.Fatal("expected error for unknown client")
	}
	if _, err := app.AttachDesignReference(ctx, "missing", "ref.png", strings.NewReader("x"), ""); err == nil {
		t.Fatal("expected error for unknown design request")
	}
}
