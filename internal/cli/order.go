package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/DocFacilBR/doc-scheduler/internal/bizerr"
	"github.com/DocFacilBR/doc-scheduler/internal/domain/order"
	"github.com/DocFacilBR/doc-scheduler/internal/ledger"
	"github.com/DocFacilBR/doc-scheduler/internal/models"
	"github.com/DocFacilBR/doc-scheduler/internal/validators"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Gerencia os pedidos dos clientes",
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista pedidos (mais recentes primeiro)",
	Args:  cobra.NoArgs,
	RunE:  runOrderList,
}

var orderGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Mostra um pedido completo",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderGet,
}

var orderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Registra um pedido de cliente",
	Args:  cobra.NoArgs,
	RunE:  runOrderAdd,
}

var orderStatusCmd = &cobra.Command{
	Use:   "status [id] [awaiting|in_progress|completed]",
	Short: "Altera o status de um pedido",
	Args:  cobra.ExactArgs(2),
	RunE:  runOrderStatus,
}

var orderNotesCmd = &cobra.Command{
	Use:   "notes [id] [texto...]",
	Short: "Grava as observações internas do pedido",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runOrderNotes,
}

var orderDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Apaga um pedido",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderDelete,
}

var orderCopyCmd = &cobra.Command{
	Use:   "copy [id]",
	Short: "Copia os dados do pedido para a área de transferência",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderCopy,
}

var orderWhatsAppCmd = &cobra.Command{
	Use:   "whatsapp [id]",
	Short: "Gera o link de WhatsApp para contatar o cliente",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderWhatsApp,
}

var (
	orderSearch  string
	orderService string
	orderStatusF string

	ordServiceID string
	ordName      string
	ordBirthDate string
	ordCPF       string
	ordMother    string
	ordFather    string
	ordLocation  string
	ordWhatsApp  string
	ordObs       string
)

func init() {
	orderListCmd.Flags().StringVar(&orderSearch, "search", "", "Busca por nome, CPF ou WhatsApp")
	orderListCmd.Flags().StringVar(&orderService, "service", order.All, "Filtra por serviço (id)")
	orderListCmd.Flags().StringVar(&orderStatusF, "status", order.All, "Filtra por status")

	orderAddCmd.Flags().StringVar(&ordServiceID, "service", "", "ID do serviço pedido")
	orderAddCmd.Flags().StringVar(&ordName, "name", "", "Nome completo do cliente")
	orderAddCmd.Flags().StringVar(&ordBirthDate, "birth-date", "", "Data de nascimento")
	orderAddCmd.Flags().StringVar(&ordCPF, "cpf", "", "CPF do cliente")
	orderAddCmd.Flags().StringVar(&ordMother, "mother", "", "Nome da mãe")
	orderAddCmd.Flags().StringVar(&ordFather, "father", "", "Nome do pai (opcional)")
	orderAddCmd.Flags().StringVar(&ordLocation, "location", "", "PAC/local de preferência")
	orderAddCmd.Flags().StringVar(&ordWhatsApp, "whatsapp", "", "WhatsApp com DDD")
	orderAddCmd.Flags().StringVar(&ordObs, "observations", "", "Observações do cliente (opcional)")

	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderGetCmd)
	orderCmd.AddCommand(orderAddCmd)
	orderCmd.AddCommand(orderStatusCmd)
	orderCmd.AddCommand(orderNotesCmd)
	orderCmd.AddCommand(orderDeleteCmd)
	orderCmd.AddCommand(orderCopyCmd)
	orderCmd.AddCommand(orderWhatsAppCmd)
	rootCmd.AddCommand(orderCmd)
}

func statusBadge(status string) string {
	s := order.Status(status)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(order.Color(s))).
		Render(order.Label(s))
}

func runOrderList(cmd *cobra.Command, args []string) error {
	orders := order.Filter{
		Term:      orderSearch,
		ServiceID: orderService,
		Status:    orderStatusF,
	}.Apply(ledgerSvc.List(context.Background()))

	if len(orders) == 0 {
		cmd.Println("Nenhum pedido encontrado.")
		return nil
	}

	for _, o := range orders {
		cmd.Printf("%s  %s — %s\n", o.ID, o.ClientName, o.ServiceName)
		cmd.Printf("    %s · %s\n\n", statusBadge(o.Status), order.FormatDate(o.CreatedAt))
	}

	cmd.Printf("Total: %d\n", len(orders))
	return nil
}

func loadOrder(ctx context.Context, id string) (*models.Order, error) {
	o, err := ledgerSvc.GetByID(ctx, id)
	if bizerr.IsBusiness(err, "order_not_found") {
		return nil, fmt.Errorf("pedido não encontrado: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func runOrderGet(cmd *cobra.Command, args []string) error {
	o, err := loadOrder(context.Background(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Pedido %s\n\n", o.ID)
	cmd.Printf("  Serviço:    %s\n", o.ServiceName)
	cmd.Printf("  Status:     %s\n", statusBadge(o.Status))
	cmd.Printf("  Criado:     %s\n", order.FormatDate(o.CreatedAt))
	cmd.Printf("  Atualizado: %s\n\n", order.FormatDate(o.UpdatedAt))

	cmd.Printf("  Cliente:    %s\n", o.ClientName)
	cmd.Printf("  Nascimento: %s\n", o.ClientBirthDate)
	cmd.Printf("  CPF:        %s\n", order.FormatCPF(o.ClientCPF))
	cmd.Printf("  Mãe:        %s\n", o.ClientMotherName)
	if o.ClientFatherName != "" {
		cmd.Printf("  Pai:        %s\n", o.ClientFatherName)
	}
	cmd.Printf("  PAC/Local:  %s\n", o.PreferredLocation)
	cmd.Printf("  WhatsApp:   %s\n", order.FormatPhone(o.ClientWhatsApp))

	if o.Observations != "" {
		cmd.Printf("\n  Observações do cliente:\n  %s\n", o.Observations)
	}
	if o.AdminNotes != "" {
		cmd.Printf("\n  Observações internas:\n  %s\n", o.AdminNotes)
	}

	return nil
}

func runOrderAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	switch {
	case !validators.NonEmpty(ordServiceID):
		return fmt.Errorf("--service é obrigatório")
	case !validators.NonEmpty(ordName):
		return fmt.Errorf("--name é obrigatório")
	case !validators.NonEmpty(ordBirthDate):
		return fmt.Errorf("--birth-date é obrigatório")
	case !validators.IsCPF(ordCPF):
		return fmt.Errorf("--cpf deve ter 11 dígitos")
	case !validators.NonEmpty(ordMother):
		return fmt.Errorf("--mother é obrigatório")
	case !validators.NonEmpty(ordLocation):
		return fmt.Errorf("--location é obrigatório")
	case !validators.IsPhone(ordWhatsApp):
		return fmt.Errorf("--whatsapp deve ter DDD + número")
	}

	svc, err := catalogSvc.GetByID(ctx, ordServiceID)
	if bizerr.IsBusiness(err, "service_not_found") {
		return fmt.Errorf("serviço não encontrado: %s", ordServiceID)
	}
	if err != nil {
		return err
	}
	if !svc.Active {
		return fmt.Errorf("serviço indisponível: %s", svc.Name)
	}

	o, err := ledgerSvc.Add(ctx, ledger.AddInput{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,

		ClientName:        ordName,
		ClientBirthDate:   ordBirthDate,
		ClientCPF:         ordCPF,
		ClientMotherName:  ordMother,
		ClientFatherName:  ordFather,
		PreferredLocation: ordLocation,
		ClientWhatsApp:    ordWhatsApp,
		Observations:      ordObs,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Pedido registrado: %s\n", o.ID)
	return nil
}

func runOrderStatus(cmd *cobra.Command, args []string) error {
	status := order.Status(args[1])
	if !order.IsKnown(status) {
		return fmt.Errorf("status inválido %q (use awaiting, in_progress ou completed)", args[1])
	}

	err := ledgerSvc.SetStatus(context.Background(), args[0], status)
	if bizerr.IsBusiness(err, "order_not_found") {
		return fmt.Errorf("pedido não encontrado: %s", args[0])
	}
	if err != nil {
		return err
	}

	cmd.Printf("Status atualizado: %s\n", statusBadge(string(status)))
	return nil
}

func runOrderNotes(cmd *cobra.Command, args []string) error {
	notes := strings.Join(args[1:], " ")

	err := ledgerSvc.SetAdminNotes(context.Background(), args[0], notes)
	if bizerr.IsBusiness(err, "order_not_found") {
		return fmt.Errorf("pedido não encontrado: %s", args[0])
	}
	if err != nil {
		return err
	}

	cmd.Println("Observações internas gravadas.")
	return nil
}

func runOrderDelete(cmd *cobra.Command, args []string) error {
	err := ledgerSvc.Delete(context.Background(), args[0])
	if bizerr.IsBusiness(err, "order_not_found") {
		return fmt.Errorf("pedido não encontrado: %s", args[0])
	}
	if err != nil {
		return err
	}

	cmd.Println("Pedido apagado.")
	return nil
}

func runOrderCopy(cmd *cobra.Command, args []string) error {
	o, err := loadOrder(context.Background(), args[0])
	if err != nil {
		return err
	}

	if err := clipboard.WriteAll(order.ExportText(o)); err != nil {
		return fmt.Errorf("copiando para a área de transferência: %w", err)
	}

	cmd.Println("Dados copiados para a área de transferência.")
	return nil
}

func runOrderWhatsApp(cmd *cobra.Command, args []string) error {
	o, err := loadOrder(context.Background(), args[0])
	if err != nil {
		return err
	}

	link := order.WhatsAppLink(cfg.CountryCode, o.ClientWhatsApp, order.OutreachMessage(o))
	cmd.Println(link)
	return nil
}
