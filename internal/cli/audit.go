package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DocFacilBR/doc-scheduler/internal/domain/order"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Consulta o registro de ações administrativas",
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista as ações registradas (mais recentes primeiro)",
	Args:  cobra.NoArgs,
	RunE:  runAuditList,
}

func init() {
	auditCmd.AddCommand(auditListCmd)
	rootCmd.AddCommand(auditCmd)
}

func runAuditList(cmd *cobra.Command, args []string) error {
	entries := auditLog.List(context.Background())
	if len(entries) == 0 {
		cmd.Println("Nenhuma ação registrada.")
		return nil
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		cmd.Printf("%s  %s %s/%s", order.FormatDate(e.CreatedAt), e.Action, e.Entity, e.EntityID)
		if e.Metadata != "" {
			cmd.Printf("  %s", e.Metadata)
		}
		cmd.Println()
	}

	cmd.Printf("\nTotal: %d\n", len(entries))
	return nil
}
