package models

import "time"

// BusinessHours define o expediente semanal recorrente.
// No máximo um registro por dia da semana (0=domingo .. 6=sábado).
type BusinessHours struct {
	DayOfWeek int    `json:"dayOfWeek" toml:"dayOfWeek"`
	StartTime string `json:"startTime" toml:"startTime"`
	EndTime   string `json:"endTime" toml:"endTime"`
	Active    bool   `json:"active" toml:"active"`
}

// TimeSlot é um horário candidato derivado pelo gerador de slots.
// Não é persistido.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

const BookingCancelled = "cancelled"

// Booking é uma reserva de horário. Nesta versão é apenas entrada do
// gerador de slots — nenhum fluxo grava reservas.
type Booking struct {
	ID             string    `json:"id"`
	ServiceID      string    `json:"serviceId"`
	ServiceName    string    `json:"serviceName"`
	Date           string    `json:"date"` // YYYY-MM-DD
	Time           string    `json:"time"` // HH:MM
	ClientName     string    `json:"clientName"`
	ClientWhatsApp string    `json:"clientWhatsApp"`
	Status         string    `json:"status"` // pending | confirmed | cancelled
	CreatedAt      time.Time `json:"createdAt"`
}

// BlockedSlot bloqueia um horário específico (feriado, compromisso).
type BlockedSlot struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason,omitempty"`
}
