package order

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DocFacilBR/doc-scheduler/internal/models"
)

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-01", FormatCPF("12345678901"))

	// fora do padrão de 11 dígitos, devolve intacto
	assert.Equal(t, "1234567890", FormatCPF("1234567890"))
	assert.Equal(t, "123.456.789-01", FormatCPF("123.456.789-01"))
	assert.Equal(t, "", FormatCPF(""))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 99999-8888", FormatPhone("11999998888"))
	assert.Equal(t, "(11) 99999-8888", FormatPhone("(11) 99999-8888"))

	// fixo com 10 dígitos não tem máscara definida: devolve intacto
	assert.Equal(t, "1133334444", FormatPhone("1133334444"))
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("55", "(11) 99999-8888", "Olá Maria")

	expected := fmt.Sprintf("https://wa.me/5511999998888?text=%s", url.QueryEscape("Olá Maria"))
	assert.Equal(t, expected, link)
}

func TestWhatsAppLink_DefaultCountryCode(t *testing.T) {
	link := WhatsAppLink("", "11999998888", "oi")
	assert.Contains(t, link, "https://wa.me/5511999998888?text=")
}

func TestOutreachMessage(t *testing.T) {
	o := &models.Order{ClientName: "Maria", ServiceName: "2ª via de certidão"}
	msg := OutreachMessage(o)

	assert.Equal(t,
		"Olá Maria, estou com o seu pedido de 2ª via de certidão. Já estamos processando. Aguarde nosso retorno!",
		msg)
}

func TestFormatDate(t *testing.T) {
	// 15:00 UTC = 12:00 em São Paulo (UTC-3)
	ts := time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "04/03/2026 12:00", FormatDate(ts))
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Aguardando agendamento", Label(StatusAwaiting))
	assert.Equal(t, "Em andamento", Label(StatusInProgress))
	assert.Equal(t, "Concluído", Label(StatusCompleted))

	// status desconhecido exibe o valor cru
	assert.Equal(t, "outro", Label(Status("outro")))
}

func TestStatusColors(t *testing.T) {
	assert.Equal(t, "#ca8a04", Color(StatusAwaiting))
	assert.Equal(t, "#2563eb", Color(StatusInProgress))
	assert.Equal(t, "#16a34a", Color(StatusCompleted))
	assert.Equal(t, "#6b7280", Color(Status("outro")))
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown(StatusAwaiting))
	assert.True(t, IsKnown(StatusInProgress))
	assert.True(t, IsKnown(StatusCompleted))
	assert.False(t, IsKnown(Status("cancelled")))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusAwaiting, InitialStatus())
}
