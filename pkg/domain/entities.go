// Package domain defines the persistent record kinds tracked by cardtrove:
// client profiles, order entries, material stock, and design requests.
// Each kind is owned by exactly one store and serialized as a JSON array
// in that store's snapshot bucket.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntityType identifies the kind of record carried by a Change and the
// snapshot bucket it lives in.
type EntityType string

// Bucket names match the original persisted file names, one per entity kind.
const (
	// EntityClientProfile identifies a client profile record.
	EntityClientProfile EntityType = "clientProfiles"
	// EntityOrderEntry identifies an order entry record.
	EntityOrderEntry EntityType = "orderEntries"
	// EntityMaterialStock identifies a material stock record.
	EntityMaterialStock EntityType = "materialStock"
	// EntityDesignRequest identifies a design request record.
	EntityDesignRequest EntityType = "designRequests"
)

// Record is the identity contract every stored entity satisfies.
type Record interface {
	RecordID() string
}

// ClientProfile describes one business customer of the shop.
type ClientProfile struct {
	ID                      string     `json:"id"`
	BusinessName            string     `json:"businessName"`
	ContactPerson           string     `json:"contactPerson"`
	PhoneNumber             string     `json:"phoneNumber"`
	Email                   *string    `json:"email,omitempty"`
	Address                 *string    `json:"address,omitempty"`
	LogoReference           *string    `json:"logoReference,omitempty"`
	IndustryType            string     `json:"industryType"`
	RepeatClient            bool       `json:"repeatClient"`
	PreferredDesignStyle    string     `json:"preferredDesignStyle"`
	LastOrderDate           *time.Time `json:"lastOrderDate,omitempty"`
	GSTNumber               *string    `json:"gstNumber,omitempty"`
	SocialMediaHandle       *string    `json:"socialMediaHandle,omitempty"`
	CommunicationPreference string     `json:"communicationPreference"`
	TotalOrdersPlaced       int        `json:"totalOrdersPlaced"`
	FeedbackRating          *int       `json:"feedbackRating,omitempty"`
	SpecialInstructions     *string    `json:"specialInstructions,omitempty"`
	Tags                    []string   `json:"tags,omitempty"`
}

// RecordID returns the profile identity.
func (c ClientProfile) RecordID() string { return c.ID }

// OrderEntry describes one print/signage order. ClientID is a plain copied
// identifier with no referential link to a ClientProfile record.
type OrderEntry struct {
	ID                   string          `json:"id"`
	ClientID             string          `json:"clientId"`
	OrderDate            time.Time       `json:"orderDate"`
	ProductType          string          `json:"productType"`
	Size                 string          `json:"size"`
	Quantity             int             `json:"quantity"`
	UnitCost             decimal.Decimal `json:"unitCost"`
	TotalCost            decimal.Decimal `json:"totalCost"`
	DeliveryDate         time.Time       `json:"deliveryDate"`
	UrgencyLevel         string          `json:"urgencyLevel"`
	PaymentStatus        string          `json:"paymentStatus"`
	PaymentMethod        string          `json:"paymentMethod"`
	OrderStatus          string          `json:"orderStatus"`
	IncludesDesign       bool            `json:"includesDesign"`
	RequiresInstallation bool            `json:"requiresInstallation"`
	DiscountCode         *string         `json:"discountCode,omitempty"`
	InvoiceNumber        *string         `json:"invoiceNumber,omitempty"`
	DeliveryAddress      *string         `json:"deliveryAddress,omitempty"`
	Notes                *string         `json:"notes,omitempty"`
}

// RecordID returns the order identity.
func (o OrderEntry) RecordID() string { return o.ID }

// MaterialStock describes one consumable held in the shop inventory.
type MaterialStock struct {
	ID                string          `json:"id"`
	MaterialName      string          `json:"materialName"`
	Category          string          `json:"category"`
	Quantity          int             `json:"quantity"`
	UnitType          string          `json:"unitType"`
	ReorderLevel      int             `json:"reorderLevel"`
	Supplier          string          `json:"supplier"`
	CostPerUnit       decimal.Decimal `json:"costPerUnit"`
	LastRestocked     time.Time       `json:"lastRestocked"`
	ExpirationDate    *time.Time      `json:"expirationDate,omitempty"`
	StorageLocation   string          `json:"storageLocation"`
	IsCritical        bool            `json:"isCritical"`
	LastUsedDate      *time.Time      `json:"lastUsedDate,omitempty"`
	DamageReported    bool            `json:"damageReported"`
	Barcode           *string         `json:"barcode,omitempty"`
	PurchaseReference *string         `json:"purchaseReference,omitempty"`
	QualityRating     *int            `json:"qualityRating,omitempty"`
	Notes             *string         `json:"notes,omitempty"`
}

// RecordID returns the stock item identity.
func (m MaterialStock) RecordID() string { return m.ID }

// DesignRequest describes one design job requested by a client. ClientID is
// a plain copied identifier, never resolved against the client store.
type DesignRequest struct {
	ID                       string          `json:"id"`
	ClientID                 string          `json:"clientId"`
	RequestDate              time.Time       `json:"requestDate"`
	TextContent              string          `json:"textContent"`
	FontPreference           string          `json:"fontPreference"`
	ColorTheme               string          `json:"colorTheme"`
	ReferenceFile            *string         `json:"referenceFile,omitempty"`
	ApprovalStatus           string          `json:"approvalStatus"`
	DesignStage              string          `json:"designStage"`
	IsUrgent                 bool            `json:"isUrgent"`
	AssignedDesigner         *string         `json:"assignedDesigner,omitempty"`
	RequestedDimensions      *string         `json:"requestedDimensions,omitempty"`
	DeliveryFormat           string          `json:"deliveryFormat"`
	RequiresMultipleVersions bool            `json:"requiresMultipleVersions"`
	EstimatedDesignHours     decimal.Decimal `json:"estimatedDesignHours"`
	Notes                    *string         `json:"notes,omitempty"`
}

// RecordID returns the request identity.
func (d DesignRequest) RecordID() string { return d.ID }

// StringPtr returns a pointer to s, or nil when s is empty. Editors use it
// to collapse blank optional inputs to "no value provided".
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
