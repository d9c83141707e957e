package order

import (
	"fmt"
	"strings"

	"github.com/DocFacilBR/doc-scheduler/internal/models"
)

// ExportText monta o texto de exportação do pedido, no layout fixo
// usado pela área de transferência (legível, não parseável).
func ExportText(o *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DADOS DO PEDIDO #%s\n\n", o.ID)
	fmt.Fprintf(&b, "Serviço: %s\n", o.ServiceName)
	fmt.Fprintf(&b, "Status: %s\n", Label(Status(o.Status)))
	fmt.Fprintf(&b, "Data do pedido: %s\n\n", FormatDate(o.CreatedAt))

	b.WriteString("DADOS DO CLIENTE:\n")
	fmt.Fprintf(&b, "Nome: %s\n", o.ClientName)
	fmt.Fprintf(&b, "Data de Nascimento: %s\n", o.ClientBirthDate)
	fmt.Fprintf(&b, "CPF: %s\n", FormatCPF(o.ClientCPF))
	fmt.Fprintf(&b, "Nome da Mãe: %s\n", o.ClientMotherName)
	if o.ClientFatherName != "" {
		fmt.Fprintf(&b, "Nome do Pai: %s\n", o.ClientFatherName)
	}
	fmt.Fprintf(&b, "PAC/Local: %s\n", o.PreferredLocation)
	fmt.Fprintf(&b, "WhatsApp: %s\n", FormatPhone(o.ClientWhatsApp))

	if o.Observations != "" {
		fmt.Fprintf(&b, "\nObservações do cliente:\n%s\n", o.Observations)
	}
	if o.AdminNotes != "" {
		fmt.Fprintf(&b, "\nObservações internas:\n%s\n", o.AdminNotes)
	}

	return strings.TrimSpace(b.String())
}
