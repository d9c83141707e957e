package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DocFacilBR/doc-scheduler/internal/audit"
	"github.com/DocFacilBR/doc-scheduler/internal/bizerr"
	"github.com/DocFacilBR/doc-scheduler/internal/domain/order"
	"github.com/DocFacilBR/doc-scheduler/internal/infra/storage/memory"
)

func newTestLedger(t *testing.T) (*Ledger, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	disp := audit.NewDispatcher(audit.NewLogger(store))
	t.Cleanup(disp.Close)

	return New(store, disp), store
}

func sampleInput() AddInput {
	return AddInput{
		ServiceID:   "svc-1",
		ServiceName: "2ª via de certidão",

		ClientName:        "Maria da Silva",
		ClientBirthDate:   "12/03/1990",
		ClientCPF:         "12345678901",
		ClientMotherName:  "Ana da Silva",
		PreferredLocation: "PAC Centro",
		ClientWhatsApp:    "11999998888",
	}
}

func TestLedger_AddRoundTrip(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	o, err := l.Add(ctx, sampleInput())
	require.NoError(t, err)

	require.NotEmpty(t, o.ID)
	assert.Equal(t, string(order.StatusAwaiting), o.Status)
	assert.Equal(t, o.CreatedAt, o.UpdatedAt)

	orders := l.List(ctx)
	require.Len(t, orders, 1)

	assert.Equal(t, o.ID, orders[0].ID)
	assert.Equal(t, "svc-1", orders[0].ServiceID)
	assert.Equal(t, "2ª via de certidão", orders[0].ServiceName)
	assert.Equal(t, "Maria da Silva", orders[0].ClientName)
	assert.Equal(t, "12345678901", orders[0].ClientCPF)
	assert.Equal(t, "PAC Centro", orders[0].PreferredLocation)
}

func TestLedger_AddGeneratesUniqueIDs(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		o, err := l.Add(ctx, sampleInput())
		require.NoError(t, err)
		assert.False(t, seen[o.ID], "id repetido: %s", o.ID)
		seen[o.ID] = true
	}
}

func TestLedger_GetByID(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	o, err := l.Add(ctx, sampleInput())
	require.NoError(t, err)

	got, err := l.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)

	_, err = l.GetByID(ctx, "inexistente")
	assert.True(t, bizerr.IsBusiness(err, "order_not_found"))
}

// Não existe guarda de transição: o admin pode voltar um pedido
// concluído para aguardando, e isso precisa continuar funcionando.
func TestLedger_SetStatusHasNoTransitionGuard(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	o, err := l.Add(ctx, sampleInput())
	require.NoError(t, err)

	require.NoError(t, l.SetStatus(ctx, o.ID, order.StatusCompleted))
	require.NoError(t, l.SetStatus(ctx, o.ID, order.StatusAwaiting))

	got, err := l.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, string(order.StatusAwaiting), got.Status)
}

func TestLedger_SetStatusAdvancesUpdatedAt(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	o, err := l.Add(ctx, sampleInput())
	require.NoError(t, err)

	require.NoError(t, l.SetStatus(ctx, o.ID, order.StatusInProgress))

	got, err := l.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, got.UpdatedAt.Before(o.UpdatedAt))
	assert.True(t, got.CreatedAt.Equal(o.CreatedAt)) // createdAt não muda
}

func TestLedger_SetAdminNotes(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	o, err := l.Add(ctx, sampleInput())
	require.NoError(t, err)

	require.NoError(t, l.SetAdminNotes(ctx, o.ID, "documentos conferidos"))

	got, err := l.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "documentos conferidos", got.AdminNotes)
	assert.False(t, got.UpdatedAt.Before(o.UpdatedAt))
}

func TestLedger_MutationsOnMissingID(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	assert.True(t, bizerr.IsBusiness(l.SetStatus(ctx, "x", order.StatusCompleted), "order_not_found"))
	assert.True(t, bizerr.IsBusiness(l.SetAdminNotes(ctx, "x", "nota"), "order_not_found"))
	assert.True(t, bizerr.IsBusiness(l.Delete(ctx, "x"), "order_not_found"))
}

func TestLedger_Delete(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	o, err := l.Add(ctx, sampleInput())
	require.NoError(t, err)

	require.NoError(t, l.Delete(ctx, o.ID))
	assert.Empty(t, l.List(ctx))
}

func TestLedger_CorruptStoreDegradesToEmpty(t *testing.T) {
	l, store := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Collection, []byte("não é json")))
	assert.Empty(t, l.List(ctx))
}
