package models

// Service é um serviço de documento oferecido no catálogo
// (ex: emissão de 2ª via de certidão, antecedentes criminais).
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // em minutos
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
}
