// Command cardtrove opens the shop's record stores against the configured
// backends and prints the business overview. It is the operational entry
// point for inspecting a data directory or verifying a storage backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"cardtrove/internal/analytics"
	"cardtrove/internal/blob"
	"cardtrove/internal/core"
	"cardtrove/internal/metrics"
)

func main() {
	envFile := flag.String("env-file", ".env", "environment file to load before opening stores")
	flag.Parse()

	// Missing env file is fine; real environment variables still apply.
	_ = godotenv.Load(*envFile)

	logger := log.New(os.Stderr, "cardtrove: ", log.LstdFlags)
	ctx := context.Background()

	snapshots, err := core.OpenSnapshotter(ctx)
	if err != nil {
		logger.Fatalf("open snapshot backend: %v", err)
	}
	attachments, err := blob.Open(ctx)
	if err != nil {
		logger.Fatalf("open attachment store: %v", err)
	}

	app := core.NewApp(ctx, core.Config{
		Snapshots: snapshots,
		Logger:    logger,
		Metrics:   metrics.New(),
	}, attachments)

	clients := analytics.SummarizeClients(app.Clients.List())
	orders := analytics.SummarizeOrders(app.Orders.List())
	materials := analytics.SummarizeMaterials(app.Materials.List())
	designs := analytics.SummarizeDesigns(app.Designs.List())
	business := analytics.SummarizeBusiness(
		app.Clients.List(), app.Orders.List(), app.Materials.List(), app.Designs.List())

	fmt.Printf("storage driver: %s\n\n", snapshots.Driver())
	fmt.Println("Business Overview")
	fmt.Printf("  clients:          %d (%d repeat, avg rating %.1f)\n",
		clients.TotalClients, clients.RepeatClients, clients.AverageRating)
	fmt.Printf("  orders:           %d (%d pending, %d urgent)\n",
		orders.TotalOrders, orders.PendingOrders, orders.UrgentOrders)
	fmt.Printf("  revenue:          %s\n", orders.TotalRevenue.StringFixed(2))
	fmt.Printf("  pending payments: %d\n", business.PendingPayments)
	fmt.Printf("  materials:        %d (%d low stock, %d critical), value %s\n",
		materials.TotalItems, materials.LowStockItems, materials.CriticalItems,
		materials.InventoryValue.StringFixed(2))
	fmt.Printf("  designs:          %d (%d pending approval, %d urgent), %s hours\n",
		designs.TotalRequests, designs.PendingApproval, designs.UrgentRequests,
		designs.TotalHours.String())
}
