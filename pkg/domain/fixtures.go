package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// fixtureTime anchors all sample timestamps so a freshly seeded store
// serializes identically on every run.
var fixtureTime = time.Date(2024, time.April, 15, 9, 0, 0, 0, time.UTC)

func daysFrom(days int) time.Time { return fixtureTime.AddDate(0, 0, days) }

func timePtr(t time.Time) *time.Time { return &t }

func intPtr(v int) *int { return &v }

// SampleClientProfiles returns the two onboarding client records seeded
// into an empty client store.
func SampleClientProfiles() []ClientProfile {
	return []ClientProfile{
		{
			ID:                      "8f2b8e0a-5d1c-4f7a-9be1-24a65d1a0001",
			BusinessName:            "Elegant Touch Salon",
			ContactPerson:           "Priya Sharma",
			PhoneNumber:             "9876543210",
			Email:                   StringPtr("contact@elegantsalon.in"),
			Address:                 StringPtr("Sector 17, Chandigarh"),
			LogoReference:           StringPtr("elegant_logo"),
			IndustryType:            "Salon",
			RepeatClient:            true,
			PreferredDesignStyle:    "Minimal",
			LastOrderDate:           timePtr(daysFrom(-12)),
			GSTNumber:               StringPtr("27AAACB1234F1Z2"),
			SocialMediaHandle:       StringPtr("@eleganttouchsalon"),
			CommunicationPreference: "WhatsApp",
			TotalOrdersPlaced:       5,
			FeedbackRating:          intPtr(4),
			SpecialInstructions:     StringPtr("Prefer soft pastel tones"),
			Tags:                    []string{"Salon", "Luxury", "Regular"},
		},
		{
			ID:                      "8f2b8e0a-5d1c-4f7a-9be1-24a65d1a0002",
			BusinessName:            "TechWave Innovations",
			ContactPerson:           "Rahul Mehta",
			PhoneNumber:             "9988776655",
			Email:                   StringPtr("info@techwave.io"),
			Address:                 StringPtr("Koramangala, Bengaluru"),
			IndustryType:            "Tech",
			RepeatClient:            false,
			PreferredDesignStyle:    "Bold",
			SocialMediaHandle:       StringPtr("@techwaveio"),
			CommunicationPreference: "Email",
			TotalOrdersPlaced:       1,
			SpecialInstructions:     StringPtr("Use futuristic fonts and gradients"),
			Tags:                    []string{"Tech", "Startup"},
		},
	}
}

// SampleOrderEntries returns the two onboarding order records seeded into
// an empty order store. Client identifiers are placeholders with no linked
// profile, matching the original data.
func SampleOrderEntries() []OrderEntry {
	return []OrderEntry{
		{
			ID:                   "c4a1f6d2-7e3b-48c5-a2d9-51b08e2b0001",
			ClientID:             "c4a1f6d2-7e3b-48c5-a2d9-51b08e2bffff",
			OrderDate:            fixtureTime,
			ProductType:          "Visiting Card",
			Size:                 "Standard 3.5x2 in",
			Quantity:             500,
			UnitCost:             decimal.RequireFromString("1.2"),
			TotalCost:            decimal.RequireFromString("600.0"),
			DeliveryDate:         daysFrom(3),
			UrgencyLevel:         "Normal",
			PaymentStatus:        "Paid",
			PaymentMethod:        "UPI",
			OrderStatus:          "In Progress",
			IncludesDesign:       true,
			RequiresInstallation: false,
			DiscountCode:         StringPtr("VCARD10"),
			InvoiceNumber:        StringPtr("INV-2024-001"),
			DeliveryAddress:      StringPtr("Shop No. 4, Sector 22 Market"),
			Notes:                StringPtr("Add QR on the back"),
		},
		{
			ID:                   "c4a1f6d2-7e3b-48c5-a2d9-51b08e2b0002",
			ClientID:             "c4a1f6d2-7e3b-48c5-a2d9-51b08e2bfffe",
			OrderDate:            daysFrom(-2),
			ProductType:          "Flex Banner",
			Size:                 "6x3 ft",
			Quantity:             2,
			UnitCost:             decimal.RequireFromString("350.0"),
			TotalCost:            decimal.RequireFromString("700.0"),
			DeliveryDate:         daysFrom(1),
			UrgencyLevel:         "Urgent",
			PaymentStatus:        "Pending",
			PaymentMethod:        "Cash",
			OrderStatus:          "In Progress",
			IncludesDesign:       false,
			RequiresInstallation: true,
			InvoiceNumber:        StringPtr("INV-2024-002"),
			DeliveryAddress:      StringPtr("Main Chowk, Model Town"),
			Notes:                StringPtr("Install by 11 AM sharp"),
		},
	}
}

// SampleMaterialStock returns the two onboarding inventory records seeded
// into an empty material store.
func SampleMaterialStock() []MaterialStock {
	return []MaterialStock{
		{
			ID:                "e9d30c7b-1a44-4b62-8c17-9f5a3d6c0001",
			MaterialName:      "HP 678 Ink (Black)",
			Category:          "Ink",
			Quantity:          3,
			UnitType:          "Cartridges",
			ReorderLevel:      2,
			Supplier:          "PrintSupplies Co.",
			CostPerUnit:       decimal.RequireFromString("750.0"),
			LastRestocked:     fixtureTime,
			ExpirationDate:    timePtr(fixtureTime.AddDate(0, 6, 0)),
			StorageLocation:   "Drawer A1",
			IsCritical:        true,
			LastUsedDate:      timePtr(daysFrom(-2)),
			DamageReported:    false,
			Barcode:           StringPtr("INK678-BLACK"),
			PurchaseReference: StringPtr("PO-8723"),
			QualityRating:     intPtr(5),
			Notes:             StringPtr("Only for HP Deskjet printers"),
		},
		{
			ID:                "e9d30c7b-1a44-4b62-8c17-9f5a3d6c0002",
			MaterialName:      "Glossy Card Paper A4",
			Category:          "Card Paper",
			Quantity:          150,
			UnitType:          "Sheets",
			ReorderLevel:      50,
			Supplier:          "PaperWorld",
			CostPerUnit:       decimal.RequireFromString("3.5"),
			LastRestocked:     daysFrom(-10),
			StorageLocation:   "Shelf B2",
			IsCritical:        false,
			LastUsedDate:      timePtr(daysFrom(-1)),
			DamageReported:    true,
			Barcode:           StringPtr("CARD-A4-GLS"),
			PurchaseReference: StringPtr("PO-8651"),
			QualityRating:     intPtr(4),
			Notes:             StringPtr("Some sheets have corner bends"),
		},
	}
}

// SampleDesignRequests returns the two onboarding design records seeded
// into an empty design store.
func SampleDesignRequests() []DesignRequest {
	return []DesignRequest{
		{
			ID:                       "a7c5e1f8-3b9d-4d20-b6a4-7e2f1c8d0001",
			ClientID:                 "a7c5e1f8-3b9d-4d20-b6a4-7e2f1c8dffff",
			RequestDate:              fixtureTime,
			TextContent:              "Elegant Beauty Salon | Call Us Today",
			FontPreference:           "Playfair Display",
			ColorTheme:               "Soft Pink & Gold",
			ReferenceFile:            StringPtr("beauty_banner_sketch.png"),
			ApprovalStatus:           "Pending",
			DesignStage:              "Draft",
			IsUrgent:                 true,
			AssignedDesigner:         StringPtr("Riya"),
			RequestedDimensions:      StringPtr("3x2 ft"),
			DeliveryFormat:           "PDF",
			RequiresMultipleVersions: true,
			EstimatedDesignHours:     decimal.RequireFromString("4.5"),
			Notes:                    StringPtr("Client wants vintage floral elements."),
		},
		{
			ID:                       "a7c5e1f8-3b9d-4d20-b6a4-7e2f1c8d0002",
			ClientID:                 "a7c5e1f8-3b9d-4d20-b6a4-7e2f1c8dfffe",
			RequestDate:              daysFrom(-2),
			TextContent:              "TechWave Innovations | Smart IT Solutions",
			FontPreference:           "Roboto Bold",
			ColorTheme:               "Blue Gradient",
			ApprovalStatus:           "Approved",
			DesignStage:              "Final",
			IsUrgent:                 false,
			AssignedDesigner:         StringPtr("Karan"),
			RequestedDimensions:      StringPtr("A5"),
			DeliveryFormat:           "AI",
			RequiresMultipleVersions: false,
			EstimatedDesignHours:     decimal.RequireFromString("2.0"),
			Notes:                    StringPtr("Minimal layout with QR code on the back."),
		},
	}
}
