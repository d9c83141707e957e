package validators

import (
	"strings"

	"github.com/DocFacilBR/doc-scheduler/internal/domain/order"
)

// Validações da borda (formulário/CLI). A camada de armazenamento
// não valida nada: quem chamar por fora da borda consegue persistir
// um pedido incompleto — comportamento herdado do sistema original.

func NonEmpty(v string) bool {
	return strings.TrimSpace(v) != ""
}

// IsCPF aceita CPF com ou sem máscara: o que importa são os 11
// dígitos. Não há validação de dígito verificador.
func IsCPF(cpf string) bool {
	return len(order.OnlyDigits(cpf)) == 11
}

// IsPhone exige DDD + número (10 ou 11 dígitos).
func IsPhone(phone string) bool {
	d := len(order.OnlyDigits(phone))
	return d == 10 || d == 11
}
