package catalog

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/DocFacilBR/doc-scheduler/internal/audit"
	"github.com/DocFacilBR/doc-scheduler/internal/bizerr"
	"github.com/DocFacilBR/doc-scheduler/internal/models"
	"github.com/DocFacilBR/doc-scheduler/internal/storage"
)

// Collection é o namespace dos serviços no record store.
const Collection = "booking_services"

// Catalog mantém o catálogo de serviços sobre o record store.
// Cada operação lê a coleção inteira, altera em memória e regrava.
type Catalog struct {
	store storage.Store
	audit *audit.Dispatcher
}

func New(store storage.Store, audit *audit.Dispatcher) *Catalog {
	return &Catalog{
		store: store,
		audit: audit,
	}
}

type AddInput struct {
	Name        string
	Description string
	Duration    int
	Price       float64
	Active      bool
}

// UpdateInput carrega uma atualização parcial: campos nil não mudam.
type UpdateInput struct {
	Name        *string
	Description *string
	Duration    *int
	Price       *float64
	Active      *bool
}

// List devolve todos os serviços na ordem de inserção.
// Store vazio ou ilegível degrada para catálogo vazio.
func (c *Catalog) List(ctx context.Context) []models.Service {
	raw, err := c.store.Load(ctx, Collection)
	if err != nil || len(raw) == 0 {
		return nil
	}

	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil
	}
	return services
}

// ListActive devolve a visão do cliente: só serviços ativos.
// O filtro é aplicado na leitura, nunca na gravação.
func (c *Catalog) ListActive(ctx context.Context) []models.Service {
	var active []models.Service
	for _, s := range c.List(ctx) {
		if s.Active {
			active = append(active, s)
		}
	}
	return active
}

// GetByID localiza um serviço pelo id.
func (c *Catalog) GetByID(ctx context.Context, id string) (*models.Service, error) {
	for _, s := range c.List(ctx) {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, bizerr.ErrBusiness("service_not_found")
}

// Add gera um id novo, anexa o serviço e persiste.
func (c *Catalog) Add(ctx context.Context, in AddInput) (*models.Service, error) {
	services := c.List(ctx)

	svc := models.Service{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
		Active:      in.Active,
	}

	services = append(services, svc)
	if err := c.save(ctx, services); err != nil {
		return nil, err
	}

	c.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: svc.ID,
		Metadata: map[string]string{"name": svc.Name},
	})

	return &svc, nil
}

// Update mescla os campos informados no registro existente.
func (c *Catalog) Update(ctx context.Context, id string, in UpdateInput) error {
	services := c.List(ctx)

	idx := -1
	for i := range services {
		if services[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return bizerr.ErrBusiness("service_not_found")
	}

	if in.Name != nil {
		services[idx].Name = *in.Name
	}
	if in.Description != nil {
		services[idx].Description = *in.Description
	}
	if in.Duration != nil {
		services[idx].Duration = *in.Duration
	}
	if in.Price != nil {
		services[idx].Price = *in.Price
	}
	if in.Active != nil {
		services[idx].Active = *in.Active
	}

	if err := c.save(ctx, services); err != nil {
		return err
	}

	c.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: id,
	})

	return nil
}

// Delete remove o serviço do catálogo.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	services := c.List(ctx)

	filtered := services[:0]
	found := false
	for _, s := range services {
		if s.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, s)
	}
	if !found {
		return bizerr.ErrBusiness("service_not_found")
	}

	if err := c.save(ctx, filtered); err != nil {
		return err
	}

	c.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: id,
	})

	return nil
}

func (c *Catalog) save(ctx context.Context, services []models.Service) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return err
	}
	return c.store.Save(ctx, Collection, raw)
}
