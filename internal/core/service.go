package core

import (
	"context"
	"fmt"
	"io"
	"path"

	"cardtrove/internal/blob"
	"cardtrove/pkg/domain"
)

// App bundles the four entity stores and the attachment store for one
// process lifetime. One App instance is constructed at startup and every
// consumer receives it by handle; there are no ambient singletons.
type App struct {
	Clients   *Store[domain.ClientProfile]
	Orders    *Store[domain.OrderEntry]
	Materials *Store[domain.MaterialStock]
	Designs   *Store[domain.DesignRequest]

	attachments blob.Store
}

// NewApp opens the four stores against the configured snapshot backend.
// Each store loads (or seeds) its collection immediately.
func NewApp(ctx context.Context, cfg Config, attachments blob.Store) *App {
	return &App{
		Clients:     OpenStore(ctx, domain.EntityClientProfile, domain.SampleClientProfiles, cfg),
		Orders:      OpenStore(ctx, domain.EntityOrderEntry, domain.SampleOrderEntries, cfg),
		Materials:   OpenStore(ctx, domain.EntityMaterialStock, domain.SampleMaterialStock, cfg),
		Designs:     OpenStore(ctx, domain.EntityDesignRequest, domain.SampleDesignRequests, cfg),
		attachments: attachments,
	}
}

// Attachments exposes the blob store holding logos and reference files.
func (a *App) Attachments() blob.Store { return a.attachments }

// AttachClientLogo stores a logo image for the given client and stamps the
// client's logo reference with the stored blob key.
func (a *App) AttachClientLogo(ctx context.Context, clientID, filename string, r io.Reader, contentType string) (blob.Info, error) {
	if a.attachments == nil {
		return blob.Info{}, fmt.Errorf("attachment store not configured")
	}
	client, ok := a.Clients.Get(clientID)
	if !ok {
		return blob.Info{}, fmt.Errorf("client %s not found", clientID)
	}
	key := path.Join("logos", clientID, filename)
	info, err := a.attachments.Put(ctx, key, r, blob.PutOptions{ContentType: contentType})
	if err != nil {
		return blob.Info{}, err
	}
	client.LogoReference = &key
	a.Clients.Update(ctx, client)
	return info, nil
}

// AttachDesignReference stores a sketch or reference image for the given
// design request and stamps the request's reference file field.
func (a *App) AttachDesignReference(ctx context.Context, designID, filename string, r io.Reader, contentType string) (blob.Info, error) {
	if a.attachments == nil {
		return blob.Info{}, fmt.Errorf("attachment store not configured")
	}
	design, ok := a.Designs.Get(designID)
	if !ok {
		return blob.Info{}, fmt.Errorf("design request %s not found", designID)
	}
	key := path.Join("references", designID, filename)
	info, err := a.attachments.Put(ctx, key, r, blob.PutOptions{ContentType: contentType})
	if err != nil {
		return blob.Info{}, err
	}
	design.ReferenceFile = &key
	a.Designs.Update(ctx, design)
	return info, nil
}
