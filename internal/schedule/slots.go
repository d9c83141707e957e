package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DocFacilBR/doc-scheduler/internal/models"
)

// Passo fixo entre horários candidatos. Independe da duração do
// serviço: um serviço de 60min ainda gera candidatos a cada 30min,
// então janelas sobrepostas podem ser oferecidas. Comportamento
// herdado do sistema original; não mudar sem decisão explícita.
const slotStepMinutes = 30

// GenerateTimeSlots calcula os horários do dia para a duração pedida.
// Horários ocupados entram na lista com available=false — quem exibe
// decide entre esconder ou acinzentar.
//
// Expediente que cruza a meia-noite (endTime < startTime) não é
// suportado e resulta em lista vazia.
func GenerateTimeSlots(
	date time.Time,
	serviceDuration int,
	businessHours []models.BusinessHours,
	bookings []models.Booking,
	blockedSlots []models.BlockedSlot,
) []models.TimeSlot {

	weekday := int(date.Weekday())
	dateStr := date.Format("2006-01-02")

	var hours *models.BusinessHours
	for i := range businessHours {
		if businessHours[i].DayOfWeek == weekday {
			hours = &businessHours[i]
			break
		}
	}
	if hours == nil || !hours.Active {
		return []models.TimeSlot{}
	}

	start, okStart := parseMinutes(hours.StartTime)
	end, okEnd := parseMinutes(hours.EndTime)
	if !okStart || !okEnd {
		return []models.TimeSlot{}
	}

	slots := []models.TimeSlot{}
	for current := start; current+serviceDuration <= end; current += slotStepMinutes {
		timeStr := fmt.Sprintf("%02d:%02d", current/60, current%60)

		booked := false
		for _, b := range bookings {
			if b.Date == dateStr && b.Time == timeStr && b.Status != models.BookingCancelled {
				booked = true
				break
			}
		}

		blocked := false
		for _, b := range blockedSlots {
			if b.Date == dateStr && b.Time == timeStr {
				blocked = true
				break
			}
		}

		slots = append(slots, models.TimeSlot{
			Time:      timeStr,
			Available: !booked && !blocked,
		})
	}

	return slots
}

// parseMinutes converte "HH:MM" em minutos desde a meia-noite.
func parseMinutes(hm string) (int, bool) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || m < 0 || m > 59 {
		return 0, false
	}

	return h*60 + m, true
}
