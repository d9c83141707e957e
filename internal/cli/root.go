package cli

import (
	"github.com/spf13/cobra"

	"github.com/DocFacilBR/doc-scheduler/internal/audit"
	"github.com/DocFacilBR/doc-scheduler/internal/catalog"
	"github.com/DocFacilBR/doc-scheduler/internal/config"
	"github.com/DocFacilBR/doc-scheduler/internal/infra/storage/sqlite"
	"github.com/DocFacilBR/doc-scheduler/internal/ledger"
)

var (
	cfg        *config.Config
	store      *sqlite.Store
	catalogSvc *catalog.Catalog
	ledgerSvc  *ledger.Ledger
	auditLog   *audit.Logger
	auditDisp  *audit.Dispatcher
)

var rootCmd = &cobra.Command{
	Use:   "docfacil",
	Short: "Agendamento de serviços de documentos",
	Long: `docfacil gerencia o catálogo de serviços de documentos e os pedidos
enviados pelos clientes. Todos os dados ficam em um banco local embutido;
não existe servidor nem sincronização entre máquinas.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

func setup() error {
	cfg = config.Load()

	s, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}
	store = s

	auditLog = audit.NewLogger(store)
	auditDisp = audit.NewDispatcher(auditLog)

	catalogSvc = catalog.New(store, auditDisp)
	ledgerSvc = ledger.New(store, auditDisp)

	return nil
}

func teardown() {
	if auditDisp != nil {
		auditDisp.Close()
	}
	if store != nil {
		store.Close()
	}
}

// Execute roda a CLI.
func Execute() error {
	return rootCmd.Execute()
}
