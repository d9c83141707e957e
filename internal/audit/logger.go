package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/DocFacilBR/doc-scheduler/internal/storage"
	"github.com/DocFacilBR/doc-scheduler/internal/timezone"
)

// Collection é o namespace das entradas de auditoria no record store.
const Collection = "audit_logs"

// Entry registra uma ação administrativa (mudança de status, notas,
// manutenção do catálogo).
type Entry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entityId"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Logger struct {
	store storage.Store
}

func NewLogger(store storage.Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(
	ctx context.Context,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entries := l.List(ctx)
	entries = append(entries, Entry{
		ID:        uuid.NewString(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: timezone.Now(),
	})

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, Collection, raw)
}

// List devolve as entradas registradas; store vazio ou ilegível
// degrada para lista vazia.
func (l *Logger) List(ctx context.Context) []Entry {
	raw, err := l.store.Load(ctx, Collection)
	if err != nil || len(raw) == 0 {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}
