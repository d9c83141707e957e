package ledger

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/DocFacilBR/doc-scheduler/internal/audit"
	"github.com/DocFacilBR/doc-scheduler/internal/bizerr"
	"github.com/DocFacilBR/doc-scheduler/internal/domain/order"
	"github.com/DocFacilBR/doc-scheduler/internal/models"
	"github.com/DocFacilBR/doc-scheduler/internal/storage"
	"github.com/DocFacilBR/doc-scheduler/internal/timezone"
)

// Collection é o namespace dos pedidos no record store.
const Collection = "orders"

// Ledger mantém os pedidos de serviço sobre o record store, com a
// mesma disciplina do catálogo: coleção inteira a cada operação.
type Ledger struct {
	store storage.Store
	audit *audit.Dispatcher
}

func New(store storage.Store, audit *audit.Dispatcher) *Ledger {
	return &Ledger{
		store: store,
		audit: audit,
	}
}

// AddInput reúne os dados do formulário do cliente mais o snapshot
// do serviço escolhido.
type AddInput struct {
	ServiceID   string
	ServiceName string

	ClientName        string
	ClientBirthDate   string
	ClientCPF         string
	ClientMotherName  string
	ClientFatherName  string
	PreferredLocation string
	ClientWhatsApp    string
	Observations      string
}

// List devolve todos os pedidos na ordem de inserção.
// Store vazio ou ilegível degrada para lista vazia.
func (l *Ledger) List(ctx context.Context) []models.Order {
	raw, err := l.store.Load(ctx, Collection)
	if err != nil || len(raw) == 0 {
		return nil
	}

	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil
	}
	return orders
}

func (l *Ledger) GetByID(ctx context.Context, id string) (*models.Order, error) {
	for _, o := range l.List(ctx) {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, bizerr.ErrBusiness("order_not_found")
}

// Add cria o pedido com status inicial awaiting e timestamps de agora.
func (l *Ledger) Add(ctx context.Context, in AddInput) (*models.Order, error) {
	orders := l.List(ctx)

	now := timezone.Now()
	o := models.Order{
		ID:          uuid.NewString(),
		ServiceID:   in.ServiceID,
		ServiceName: in.ServiceName,

		ClientName:        in.ClientName,
		ClientBirthDate:   in.ClientBirthDate,
		ClientCPF:         in.ClientCPF,
		ClientMotherName:  in.ClientMotherName,
		ClientFatherName:  in.ClientFatherName,
		PreferredLocation: in.PreferredLocation,
		ClientWhatsApp:    in.ClientWhatsApp,
		Observations:      in.Observations,

		Status:    string(order.InitialStatus()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	orders = append(orders, o)
	if err := l.save(ctx, orders); err != nil {
		return nil, err
	}

	return &o, nil
}

// SetStatus grava o novo status e renova updatedAt. Qualquer valor é
// aceito: não existe guarda de transição (o admin pode voltar um
// pedido concluído para aguardando).
func (l *Ledger) SetStatus(ctx context.Context, id string, status order.Status) error {
	err := l.mutate(ctx, id, func(o *models.Order) {
		o.Status = string(status)
	})
	if err != nil {
		return err
	}

	l.audit.Dispatch(audit.Event{
		Action:   "order_status_changed",
		Entity:   "order",
		EntityID: id,
		Metadata: map[string]string{"status": string(status)},
	})

	return nil
}

// SetAdminNotes grava as observações internas e renova updatedAt.
func (l *Ledger) SetAdminNotes(ctx context.Context, id string, notes string) error {
	err := l.mutate(ctx, id, func(o *models.Order) {
		o.AdminNotes = notes
	})
	if err != nil {
		return err
	}

	l.audit.Dispatch(audit.Event{
		Action:   "order_notes_updated",
		Entity:   "order",
		EntityID: id,
	})

	return nil
}

// Delete remove o pedido. Nenhum fluxo de tela usa isso hoje, mas a
// primitiva existe para manutenção.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	orders := l.List(ctx)

	filtered := orders[:0]
	found := false
	for _, o := range orders {
		if o.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, o)
	}
	if !found {
		return bizerr.ErrBusiness("order_not_found")
	}

	if err := l.save(ctx, filtered); err != nil {
		return err
	}

	l.audit.Dispatch(audit.Event{
		Action:   "order_deleted",
		Entity:   "order",
		EntityID: id,
	})

	return nil
}

func (l *Ledger) mutate(ctx context.Context, id string, fn func(*models.Order)) error {
	orders := l.List(ctx)

	idx := -1
	for i := range orders {
		if orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return bizerr.ErrBusiness("order_not_found")
	}

	fn(&orders[idx])
	orders[idx].UpdatedAt = timezone.Now()

	return l.save(ctx, orders)
}

func (l *Ledger) save(ctx context.Context, orders []models.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, Collection, raw)
}
