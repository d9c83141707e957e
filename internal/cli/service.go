package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DocFacilBR/doc-scheduler/internal/bizerr"
	"github.com/DocFacilBR/doc-scheduler/internal/catalog"
	"github.com/DocFacilBR/doc-scheduler/internal/models"
	"github.com/DocFacilBR/doc-scheduler/internal/validators"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Gerencia o catálogo de serviços",
}

var serviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista os serviços oferecidos",
	Long:  `Por padrão mostra só os serviços ativos (visão do cliente); use --all para incluir os inativos.`,
	Args:  cobra.NoArgs,
	RunE:  runServiceList,
}

var serviceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Cadastra um serviço",
	Args:  cobra.NoArgs,
	RunE:  runServiceAdd,
}

var serviceUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Altera campos de um serviço",
	Args:  cobra.ExactArgs(1),
	RunE:  runServiceUpdate,
}

var serviceDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Remove um serviço do catálogo",
	Args:  cobra.ExactArgs(1),
	RunE:  runServiceDelete,
}

var (
	serviceAll         bool
	svcName            string
	svcDescription     string
	svcDurationMinutes int
	svcPrice           float64
	svcActive          bool
)

func init() {
	serviceListCmd.Flags().BoolVar(&serviceAll, "all", false, "Inclui serviços inativos")

	for _, c := range []*cobra.Command{serviceAddCmd, serviceUpdateCmd} {
		c.Flags().StringVar(&svcName, "name", "", "Nome do serviço")
		c.Flags().StringVar(&svcDescription, "description", "", "Descrição")
		c.Flags().IntVar(&svcDurationMinutes, "duration", 30, "Duração em minutos")
		c.Flags().Float64Var(&svcPrice, "price", 0, "Preço em reais")
		c.Flags().BoolVar(&svcActive, "active", true, "Serviço disponível para clientes")
	}

	serviceCmd.AddCommand(serviceListCmd)
	serviceCmd.AddCommand(serviceAddCmd)
	serviceCmd.AddCommand(serviceUpdateCmd)
	serviceCmd.AddCommand(serviceDeleteCmd)
	rootCmd.AddCommand(serviceCmd)
}

func runServiceList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var services []models.Service
	if serviceAll {
		services = catalogSvc.List(ctx)
	} else {
		services = catalogSvc.ListActive(ctx)
	}

	if len(services) == 0 {
		cmd.Println("Nenhum serviço cadastrado.")
		return nil
	}

	for _, s := range services {
		cmd.Printf("%s  %s", s.ID, s.Name)
		if !s.Active {
			cmd.Printf("  (inativo)")
		}
		cmd.Println()
		if s.Description != "" {
			cmd.Printf("    %s\n", s.Description)
		}
		cmd.Printf("    %d min — R$ %.2f\n\n", s.Duration, s.Price)
	}

	cmd.Printf("Total: %d\n", len(services))
	return nil
}

func runServiceAdd(cmd *cobra.Command, args []string) error {
	if !validators.NonEmpty(svcName) {
		return fmt.Errorf("--name é obrigatório")
	}
	if svcDurationMinutes <= 0 {
		return fmt.Errorf("--duration deve ser maior que zero")
	}
	if svcPrice < 0 {
		return fmt.Errorf("--price não pode ser negativo")
	}

	svc, err := catalogSvc.Add(context.Background(), catalog.AddInput{
		Name:        svcName,
		Description: svcDescription,
		Duration:    svcDurationMinutes,
		Price:       svcPrice,
		Active:      svcActive,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Serviço cadastrado: %s (%s)\n", svc.Name, svc.ID)
	return nil
}

func runServiceUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	in := catalog.UpdateInput{}

	if flags.Changed("name") {
		if !validators.NonEmpty(svcName) {
			return fmt.Errorf("--name não pode ser vazio")
		}
		in.Name = &svcName
	}
	if flags.Changed("description") {
		in.Description = &svcDescription
	}
	if flags.Changed("duration") {
		if svcDurationMinutes <= 0 {
			return fmt.Errorf("--duration deve ser maior que zero")
		}
		in.Duration = &svcDurationMinutes
	}
	if flags.Changed("price") {
		if svcPrice < 0 {
			return fmt.Errorf("--price não pode ser negativo")
		}
		in.Price = &svcPrice
	}
	if flags.Changed("active") {
		in.Active = &svcActive
	}

	err := catalogSvc.Update(context.Background(), args[0], in)
	if bizerr.IsBusiness(err, "service_not_found") {
		return fmt.Errorf("serviço não encontrado: %s", args[0])
	}
	if err != nil {
		return err
	}

	cmd.Println("Serviço atualizado.")
	return nil
}

func runServiceDelete(cmd *cobra.Command, args []string) error {
	err := catalogSvc.Delete(context.Background(), args[0])
	if bizerr.IsBusiness(err, "service_not_found") {
		return fmt.Errorf("serviço não encontrado: %s", args[0])
	}
	if err != nil {
		return err
	}

	cmd.Println("Serviço removido.")
	return nil
}
