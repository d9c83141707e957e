package order

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusAwaiting   Status = "awaiting"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// InitialStatus é o status de todo pedido recém-criado.
func InitialStatus() Status {
	return StatusAwaiting
}

// IsKnown informa se o valor é um dos status conhecidos.
// O ledger em si não valida transições (o admin pode corrigir
// um pedido em qualquer direção); a checagem fica na borda da CLI.
func IsKnown(s Status) bool {
	switch s {
	case StatusAwaiting, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label devolve o rótulo de exibição do status.
func Label(s Status) string {
	switch s {
	case StatusAwaiting:
		return "Aguardando agendamento"
	case StatusInProgress:
		return "Em andamento"
	case StatusCompleted:
		return "Concluído"
	}
	return string(s)
}

// Color devolve a cor de exibição (hex) do status.
func Color(s Status) string {
	switch s {
	case StatusAwaiting:
		return "#ca8a04" // amarelo
	case StatusInProgress:
		return "#2563eb" // azul
	case StatusCompleted:
		return "#16a34a" // verde
	}
	return "#6b7280"
}
