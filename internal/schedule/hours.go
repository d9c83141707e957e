package schedule

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/DocFacilBR/doc-scheduler/internal/models"
)

// DefaultBusinessHours é a grade semanal padrão do atendimento:
// segunda a sexta 09:00–18:00, sábado 09:00–14:00, domingo fechado.
func DefaultBusinessHours() []models.BusinessHours {
	return []models.BusinessHours{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", Active: true},
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00", Active: true},
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00", Active: true},
		{DayOfWeek: 4, StartTime: "09:00", EndTime: "18:00", Active: true},
		{DayOfWeek: 5, StartTime: "09:00", EndTime: "18:00", Active: true},
		{DayOfWeek: 6, StartTime: "09:00", EndTime: "14:00", Active: true},
		{DayOfWeek: 0, StartTime: "00:00", EndTime: "00:00", Active: false},
	}
}

type hoursFile struct {
	Hours []models.BusinessHours `toml:"hours"`
}

// LoadBusinessHours lê a grade semanal de um arquivo TOML.
// Caminho vazio ou arquivo ausente caem na grade padrão.
func LoadBusinessHours(path string) ([]models.BusinessHours, error) {
	if path == "" {
		return DefaultBusinessHours(), nil
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultBusinessHours(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("lendo grade de horários: %w", err)
	}

	var f hoursFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("interpretando grade de horários: %w", err)
	}
	if len(f.Hours) == 0 {
		return DefaultBusinessHours(), nil
	}

	return f.Hours, nil
}
