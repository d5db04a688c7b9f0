package forms

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cardtrove/internal/core"
	"cardtrove/pkg/domain"
)

// DesignForm collects the editable fields of a design request. Text
// content must be present and the estimated design hours must parse.
//
// Like orders, the client identifier is generated fresh on every save
// and never linked to a stored profile. The reference file is not
// editable here; it is preserved from the existing record so an
// uploaded attachment survives edits.
type DesignForm struct {
	TextContent              string
	FontPreference           string
	ColorTheme               string
	ApprovalStatus           string
	DesignStage              string
	IsUrgent                 bool
	AssignedDesigner         string
	RequestedDimensions      string
	DeliveryFormat           string
	RequiresMultipleVersions bool
	EstimatedDesignHours     string
	Notes                    string
}

// DesignFormFrom populates a form from an existing request for editing.
func DesignFormFrom(d domain.DesignRequest) DesignForm {
	return DesignForm{
		TextContent:              d.TextContent,
		FontPreference:           d.FontPreference,
		ColorTheme:               d.ColorTheme,
		ApprovalStatus:           d.ApprovalStatus,
		DesignStage:              d.DesignStage,
		IsUrgent:                 d.IsUrgent,
		AssignedDesigner:         fromPtr(d.AssignedDesigner),
		RequestedDimensions:      fromPtr(d.RequestedDimensions),
		DeliveryFormat:           d.DeliveryFormat,
		RequiresMultipleVersions: d.RequiresMultipleVersions,
		EstimatedDesignHours:     d.EstimatedDesignHours.String(),
		Notes:                    fromPtr(d.Notes),
	}
}

// Build validates the form and constructs the request, preserving the
// identity (and reference file) of existing when editing. The request
// date is stamped at save time.
func (f DesignForm) Build(existing *domain.DesignRequest) (domain.DesignRequest, error) {
	hours, hoursOK := parseDecimal(f.EstimatedDesignHours)
	if f.TextContent == "" || !hoursOK {
		return domain.DesignRequest{}, ErrInvalidForm
	}
	id := uuid.NewString()
	var referenceFile *string
	if existing != nil {
		id = existing.ID
		referenceFile = existing.ReferenceFile
	}
	return domain.DesignRequest{
		ID:                       id,
		ClientID:                 uuid.NewString(),
		RequestDate:              time.Now(),
		TextContent:              f.TextContent,
		FontPreference:           f.FontPreference,
		ColorTheme:               f.ColorTheme,
		ReferenceFile:            referenceFile,
		ApprovalStatus:           f.ApprovalStatus,
		DesignStage:              f.DesignStage,
		IsUrgent:                 f.IsUrgent,
		AssignedDesigner:         domain.StringPtr(f.AssignedDesigner),
		RequestedDimensions:      domain.StringPtr(f.RequestedDimensions),
		DeliveryFormat:           f.DeliveryFormat,
		RequiresMultipleVersions: f.RequiresMultipleVersions,
		EstimatedDesignHours:     hours,
		Notes:                    domain.StringPtr(f.Notes),
	}, nil
}

// Submit builds the request and hands it to the store.
func (f DesignForm) Submit(ctx context.Context, store *core.Store[domain.DesignRequest], existing *domain.DesignRequest) error {
	design, err := f.Build(existing)
	if err != nil {
		return err
	}
	if existing == nil {
		store.Add(ctx, design)
	} else {
		store.Update(ctx, design)
	}
	return nil
}
