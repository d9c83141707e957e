package order

import (
	"sort"
	"strings"

	"github.com/DocFacilBR/doc-scheduler/internal/models"
)

// All desliga um filtro de igualdade (equivalente a não filtrar).
const All = "all"

// Filter combina os filtros do painel administrativo.
// Todos os critérios são AND; termo vazio ou "all" casa com tudo.
type Filter struct {
	Term      string // busca em nome, CPF e WhatsApp
	ServiceID string
	Status    string
}

// Apply filtra e devolve os pedidos ordenados do mais recente
// para o mais antigo (createdAt decrescente).
func (f Filter) Apply(orders []models.Order) []models.Order {
	term := strings.ToLower(strings.TrimSpace(f.Term))

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if term != "" &&
			!strings.Contains(strings.ToLower(o.ClientName), term) &&
			!strings.Contains(o.ClientCPF, term) &&
			!strings.Contains(o.ClientWhatsApp, term) {
			continue
		}
		if f.ServiceID != "" && f.ServiceID != All && o.ServiceID != f.ServiceID {
			continue
		}
		if f.Status != "" && f.Status != All && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
