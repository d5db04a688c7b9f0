package forms

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"cardtrove/internal/core"
	"cardtrove/pkg/domain"
)

// ClientForm collects the editable fields of a client profile as raw
// input. Business name and phone number are required; total orders
// defaults to zero and the feedback rating is dropped when unparseable.
type ClientForm struct {
	BusinessName            string
	ContactPerson           string
	PhoneNumber             string
	Email                   string
	Address                 string
	LogoReference           string
	IndustryType            string
	PreferredDesignStyle    string
	CommunicationPreference string
	GSTNumber               string
	SocialMediaHandle       string
	SpecialInstructions     string
	Tags                    string
	TotalOrdersPlaced       string
	FeedbackRating          string
	RepeatClient            bool
}

// ClientFormFrom populates a form from an existing profile for editing.
func ClientFormFrom(p domain.ClientProfile) ClientForm {
	return ClientForm{
		BusinessName:            p.BusinessName,
		ContactPerson:           p.ContactPerson,
		PhoneNumber:             p.PhoneNumber,
		Email:                   fromPtr(p.Email),
		Address:                 fromPtr(p.Address),
		LogoReference:           fromPtr(p.LogoReference),
		IndustryType:            p.IndustryType,
		PreferredDesignStyle:    p.PreferredDesignStyle,
		CommunicationPreference: p.CommunicationPreference,
		GSTNumber:               fromPtr(p.GSTNumber),
		SocialMediaHandle:       fromPtr(p.SocialMediaHandle),
		SpecialInstructions:     fromPtr(p.SpecialInstructions),
		Tags:                    joinTags(p.Tags),
		TotalOrdersPlaced:       strconv.Itoa(p.TotalOrdersPlaced),
		FeedbackRating:          intString(p.FeedbackRating),
		RepeatClient:            p.RepeatClient,
	}
}

// Build validates the form and constructs the profile, preserving the
// identity of existing when editing. The last order date is stamped at
// save time.
func (f ClientForm) Build(existing *domain.ClientProfile) (domain.ClientProfile, error) {
	if blank(f.BusinessName) || blank(f.PhoneNumber) {
		return domain.ClientProfile{}, ErrInvalidForm
	}
	id := uuid.NewString()
	if existing != nil {
		id = existing.ID
	}
	now := time.Now()
	return domain.ClientProfile{
		ID:                      id,
		BusinessName:            f.BusinessName,
		ContactPerson:           f.ContactPerson,
		PhoneNumber:             f.PhoneNumber,
		Email:                   domain.StringPtr(f.Email),
		Address:                 domain.StringPtr(f.Address),
		LogoReference:           domain.StringPtr(f.LogoReference),
		IndustryType:            f.IndustryType,
		RepeatClient:            f.RepeatClient,
		PreferredDesignStyle:    f.PreferredDesignStyle,
		LastOrderDate:           &now,
		GSTNumber:               domain.StringPtr(f.GSTNumber),
		SocialMediaHandle:       domain.StringPtr(f.SocialMediaHandle),
		CommunicationPreference: f.CommunicationPreference,
		TotalOrdersPlaced:       intOrZero(f.TotalOrdersPlaced),
		FeedbackRating:          optionalInt(f.FeedbackRating),
		SpecialInstructions:     domain.StringPtr(f.SpecialInstructions),
		Tags:                    splitTags(f.Tags),
	}, nil
}

// Submit builds the profile and hands it to the store: add when creating,
// update when editing. The store's persistence outcome is invisible here.
func (f ClientForm) Submit(ctx context.Context, store *core.Store[domain.ClientProfile], existing *domain.ClientProfile) error {
	profile, err := f.Build(existing)
	if err != nil {
		return err
	}
	if existing == nil {
		store.Add(ctx, profile)
	} else {
		store.Update(ctx, profile)
	}
	return nil
}
