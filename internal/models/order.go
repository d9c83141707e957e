package models

import "time"

// Order é um pedido de serviço enviado pelo cliente.
// ServiceID/ServiceName são um snapshot do serviço no momento do envio;
// mudanças posteriores no catálogo não são propagadas.
type Order struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`

	// Dados do cliente
	ClientName        string `json:"clientName"`
	ClientBirthDate   string `json:"clientBirthDate"`
	ClientCPF         string `json:"clientCPF"`
	ClientMotherName  string `json:"clientMotherName"`
	ClientFatherName  string `json:"clientFatherName,omitempty"`
	PreferredLocation string `json:"preferredLocation"`
	ClientWhatsApp    string `json:"clientWhatsApp"`
	Observations      string `json:"observations,omitempty"`

	// Dados administrativos
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
