package order

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/DocFacilBR/doc-scheduler/internal/models"
	"github.com/DocFacilBR/doc-scheduler/internal/timezone"
)

// DefaultCountryCode é o DDI usado nos links de WhatsApp (Brasil).
const DefaultCountryCode = "55"

var (
	nonDigits = regexp.MustCompile(`\D`)
	cpfDigits = regexp.MustCompile(`^(\d{3})(\d{3})(\d{3})(\d{2})$`)
)

func OnlyDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// FormatCPF aplica a máscara xxx.xxx.xxx-xx quando o valor tem os
// 11 dígitos esperados; fora disso devolve o valor intacto.
// Não há validação de dígito verificador.
func FormatCPF(cpf string) string {
	return cpfDigits.ReplaceAllString(cpf, "$1.$2.$3-$4")
}

// FormatPhone aplica a máscara (xx) xxxxx-xxxx para celulares com DDD.
func FormatPhone(phone string) string {
	cleaned := OnlyDigits(phone)
	if len(cleaned) == 11 {
		return fmt.Sprintf("(%s) %s-%s", cleaned[:2], cleaned[2:7], cleaned[7:])
	}
	return phone
}

// WhatsAppLink monta o link de mensagem direta (wa.me).
func WhatsAppLink(countryCode, phone, message string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	return fmt.Sprintf("https://wa.me/%s%s?text=%s",
		countryCode, OnlyDigits(phone), url.QueryEscape(message))
}

// OutreachMessage é a mensagem padrão de contato com o cliente.
func OutreachMessage(o *models.Order) string {
	return fmt.Sprintf(
		"Olá %s, estou com o seu pedido de %s. Já estamos processando. Aguarde nosso retorno!",
		o.ClientName, o.ServiceName)
}

// FormatDate exibe o instante no padrão brasileiro (dd/mm/aaaa hh:mm).
func FormatDate(t time.Time) string {
	return t.In(timezone.Location("")).Format("02/01/2006 15:04")
}
