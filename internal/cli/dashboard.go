package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/DocFacilBR/doc-scheduler/internal/domain/order"
	"github.com/DocFacilBR/doc-scheduler/internal/models"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Painel interativo de pedidos",
	Long: `Abre o painel administrativo: busca por nome/CPF/WhatsApp, filtro por
status e lista dos pedidos mais recentes primeiro.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := tea.NewProgram(newDashboard(), tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

var (
	dashTitleStyle = lipgloss.NewStyle().Bold(true)
	dashHelpStyle  = lipgloss.NewStyle().Faint(true)
)

// Ciclo do filtro de status acionado pela tecla "s".
var statusCycle = []string{
	order.All,
	string(order.StatusAwaiting),
	string(order.StatusInProgress),
	string(order.StatusCompleted),
}

type dashboardModel struct {
	search    textinput.Model
	table     table.Model
	orders    []models.Order
	statusIdx int
	searching bool
}

func newDashboard() dashboardModel {
	ti := textinput.New()
	ti.Placeholder = "nome, CPF ou WhatsApp"
	ti.CharLimit = 64
	ti.Width = 32

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Pedido", Width: 10},
			{Title: "Cliente", Width: 24},
			{Title: "Serviço", Width: 24},
			{Title: "Status", Width: 24},
			{Title: "Criado", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	m := dashboardModel{
		search: ti,
		table:  t,
		orders: ledgerSvc.List(context.Background()),
	}
	m.refreshRows()
	return m
}

func (m *dashboardModel) refreshRows() {
	filtered := order.Filter{
		Term:   m.search.Value(),
		Status: statusCycle[m.statusIdx],
	}.Apply(m.orders)

	rows := make([]table.Row, 0, len(filtered))
	for _, o := range filtered {
		rows = append(rows, table.Row{
			shortID(o.ID),
			o.ClientName,
			o.ServiceName,
			order.Label(order.Status(o.Status)),
			order.FormatDate(o.CreatedAt),
		})
	}
	m.table.SetRows(rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if !m.searching {
				return m, tea.Quit
			}

		case "/":
			if !m.searching {
				m.searching = true
				m.table.Blur()
				m.search.Focus()
				return m, textinput.Blink
			}

		case "esc", "enter":
			if m.searching {
				m.searching = false
				m.search.Blur()
				m.table.Focus()
				m.refreshRows()
				return m, nil
			}

		case "s":
			if !m.searching {
				m.statusIdx = (m.statusIdx + 1) % len(statusCycle)
				m.refreshRows()
				return m, nil
			}

		case "r":
			if !m.searching {
				m.orders = ledgerSvc.List(context.Background())
				m.refreshRows()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.searching {
		m.search, cmd = m.search.Update(msg)
		m.refreshRows()
	} else {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(dashTitleStyle.Render("Painel de Pedidos"))
	b.WriteString("\n\n")

	total := len(m.orders)
	awaiting, completed := 0, 0
	for _, o := range m.orders {
		switch order.Status(o.Status) {
		case order.StatusAwaiting:
			awaiting++
		case order.StatusCompleted:
			completed++
		}
	}

	b.WriteString(fmt.Sprintf("Total: %d   %s   %s\n\n",
		total,
		statusCountBadge(order.StatusAwaiting, awaiting),
		statusCountBadge(order.StatusCompleted, completed),
	))

	b.WriteString("Busca: " + m.search.View() + "\n")
	b.WriteString("Status: " + statusFilterLabel(statusCycle[m.statusIdx]) + "\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(dashHelpStyle.Render("/: buscar   s: status   r: recarregar   q: sair"))
	b.WriteString("\n")

	return b.String()
}

func statusCountBadge(s order.Status, n int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(order.Color(s))).
		Render(fmt.Sprintf("%s: %d", order.Label(s), n))
}

func statusFilterLabel(filter string) string {
	if filter == order.All {
		return "todos"
	}
	return order.Label(order.Status(filter))
}
