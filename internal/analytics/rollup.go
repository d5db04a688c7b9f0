// Package analytics computes derived summaries over store snapshots. Every
// summary is recomputed from scratch on each call and tolerates empty input
// by reporting zeroes.
package analytics

import (
	"github.com/shopspring/decimal"

	"cardtrove/pkg/domain"
)

// ClientSummary aggregates the client roster.
type ClientSummary struct {
	TotalClients  int
	RepeatClients int
	AverageRating float64
}

// SummarizeClients computes the client rollup. The average covers only
// profiles that carry a feedback rating and is 0 when none do.
func SummarizeClients(profiles []domain.ClientProfile) ClientSummary {
	s := ClientSummary{TotalClients: len(profiles)}
	rated := 0
	sum := 0
	for _, p := range profiles {
		if p.RepeatClient {
			s.RepeatClients++
		}
		if p.FeedbackRating != nil {
			rated++
			sum += *p.FeedbackRating
		}
	}
	if rated > 0 {
		s.AverageRating = float64(sum) / float64(rated)
	}
	return s
}

// OrderSummary aggregates the order book. Pending counts every order whose
// status is neither Delivered nor Completed; urgent counts the Urgent and
// Same Day urgency levels.
type OrderSummary struct {
	TotalOrders   int
	PendingOrders int
	UrgentOrders  int
	TotalRevenue  decimal.Decimal
}

// SummarizeOrders computes the order rollup.
func SummarizeOrders(orders []domain.OrderEntry) OrderSummary {
	s := OrderSummary{TotalOrders: len(orders)}
	for _, o := range orders {
		if o.OrderStatus != "Delivered" && o.OrderStatus != "Completed" {
			s.PendingOrders++
		}
		if o.UrgencyLevel == "Urgent" || o.UrgencyLevel == "Same Day" {
			s.UrgentOrders++
		}
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalCost)
	}
	return s
}

// MaterialSummary aggregates the inventory. Inventory value is
// Σ quantity × cost per unit; low stock counts items at or below their
// reorder level.
type MaterialSummary struct {
	TotalItems     int
	CriticalItems  int
	LowStockItems  int
	InventoryValue decimal.Decimal
}

// SummarizeMaterials computes the inventory rollup.
func SummarizeMaterials(materials []domain.MaterialStock) MaterialSummary {
	s := MaterialSummary{TotalItems: len(materials)}
	for _, m := range materials {
		if m.IsCritical {
			s.CriticalItems++
		}
		if m.Quantity <= m.ReorderLevel {
			s.LowStockItems++
		}
		s.InventoryValue = s.InventoryValue.Add(m.CostPerUnit.Mul(decimal.NewFromInt(int64(m.Quantity))))
	}
	return s
}

// DesignSummary aggregates the design queue.
type DesignSummary struct {
	TotalRequests   int
	PendingApproval int
	UrgentRequests  int
	TotalHours      decimal.Decimal
}

// SummarizeDesigns computes the design rollup. Pending approval matches the
// literal "Pending" status only.
func SummarizeDesigns(requests []domain.DesignRequest) DesignSummary {
	s := DesignSummary{TotalRequests: len(requests)}
	for _, r := range requests {
		if r.ApprovalStatus == "Pending" {
			s.PendingApproval++
		}
		if r.IsUrgent {
			s.UrgentRequests++
		}
		s.TotalHours = s.TotalHours.Add(r.EstimatedDesignHours)
	}
	return s
}

// BusinessSummary is the cross-store overview shown on the dashboard.
type BusinessSummary struct {
	TotalClients    int
	TotalOrders     int
	TotalRevenue    decimal.Decimal
	PendingPayments int
	LowStockItems   int
	UrgentDesigns   int
}

// SummarizeBusiness rolls up all four collections. Pending payments counts
// orders whose payment status is the literal "Pending".
func SummarizeBusiness(
	profiles []domain.ClientProfile,
	orders []domain.OrderEntry,
	materials []domain.MaterialStock,
	requests []domain.DesignRequest,
) BusinessSummary {
	s := BusinessSummary{
		TotalClients: len(profiles),
		TotalOrders:  len(orders),
	}
	for _, o := range orders {
		if o.PaymentStatus == "Pending" {
			s.PendingPayments++
		}
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalCost)
	}
	for _, m := range materials {
		if m.Quantity <= m.ReorderLevel {
			s.LowStockItems++
		}
	}
	for _, r := range requests {
		if r.IsUrgent {
			s.UrgentDesigns++
		}
	}
	return s
}
