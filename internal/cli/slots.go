package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/DocFacilBR/doc-scheduler/internal/bizerr"
	"github.com/DocFacilBR/doc-scheduler/internal/schedule"
	"github.com/DocFacilBR/doc-scheduler/internal/timezone"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Mostra os horários do dia para um serviço",
	Args:  cobra.NoArgs,
	RunE:  runSlots,
}

var (
	slotsDate     string
	slotsService  string
	slotsDuration int
)

var (
	slotFreeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
	slotBusyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
)

func init() {
	slotsCmd.Flags().StringVar(&slotsDate, "date", "", "Data no formato AAAA-MM-DD (padrão: hoje)")
	slotsCmd.Flags().StringVar(&slotsService, "service", "", "ID do serviço (usa a duração cadastrada)")
	slotsCmd.Flags().IntVar(&slotsDuration, "duration", 30, "Duração em minutos (ignorada com --service)")
	rootCmd.AddCommand(slotsCmd)
}

func runSlots(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	date := timezone.NowIn(cfg.Timezone)
	if slotsDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", slotsDate, timezone.Location(cfg.Timezone))
		if err != nil {
			return fmt.Errorf("data inválida %q (use AAAA-MM-DD)", slotsDate)
		}
		date = parsed
	}

	duration := slotsDuration
	if slotsService != "" {
		svc, err := catalogSvc.GetByID(ctx, slotsService)
		if bizerr.IsBusiness(err, "service_not_found") {
			return fmt.Errorf("serviço não encontrado: %s", slotsService)
		}
		if err != nil {
			return err
		}
		duration = svc.Duration
	}
	if duration <= 0 {
		return fmt.Errorf("duração deve ser maior que zero")
	}

	hours, err := schedule.LoadBusinessHours(cfg.HoursFile)
	if err != nil {
		return err
	}

	// A agenda real (reservas e bloqueios) ainda não tem fonte de
	// dados nesta versão: o gerador recebe listas vazias.
	slots := schedule.GenerateTimeSlots(date, duration, hours, nil, nil)
	if len(slots) == 0 {
		cmd.Println("Sem expediente nesse dia.")
		return nil
	}

	cmd.Printf("Horários em %s (%d min):\n", date.Format("02/01/2006"), duration)
	for _, s := range slots {
		if s.Available {
			cmd.Printf("  %s %s\n", slotFreeStyle.Render("●"), s.Time)
		} else {
			cmd.Printf("  %s %s (ocupado)\n", slotBusyStyle.Render("●"), s.Time)
		}
	}

	return nil
}
