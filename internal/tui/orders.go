package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/nekmart-admin/internal/app"
	"github.com/MKhiriev/nekmart-admin/internal/service"
	"github.com/MKhiriev/nekmart-admin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTableHeight = models.OrdersPageSize
	// chromeHeight is the room taken by the title, dividers, pager and help.
	chromeHeight = 12
)

var orderColumns = []table.Column{
	{Title: "Order", Width: 14},
	{Title: "Customer", Width: 22},
	{Title: "Total", Width: 12},
	{Title: "Payment", Width: 12},
	{Title: "Date", Width: 12},
}

// ordersModel is the orders screen: a table of one page of orders with
// pagination, clipboard copy of the selected order id and a toast.
type ordersModel struct {
	ctx      context.Context
	orders   service.OrderService
	notifier service.Notifier
	copyText func(string) error

	buildInfo     models.AppBuildInfo
	serverVersion string

	table   table.Model
	spinner spinner.Model

	page    int
	current models.OrdersPage
	// pending is the page being loaded; zero when idle.
	pending int
	loaded  bool

	detail        bool
	showBuildInfo bool
}

func newOrdersModel(ctx context.Context, orders service.OrderService, notifier service.Notifier, page int) ordersModel {
	if page < 1 {
		page = 1
	}

	t := table.New(
		table.WithColumns(orderColumns),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return ordersModel{
		ctx:      ctx,
		orders:   orders,
		notifier: notifier,
		copyText: clipboard.WriteAll,
		table:    t,
		spinner:  s,
		page:     page,
		pending:  page,
	}
}

func (m ordersModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPage(m.page), m.spinner.Tick)
}

func (m ordersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		return m.onPageLoaded(msg), nil
	case toastChangedMsg:
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil
	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m ordersModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		if m.detail {
			m.detail = false
		} else {
			m.notifier.Close()
		}
		return m, nil
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.details):
		if _, ok := m.selected(); ok {
			m.detail = !m.detail
		}
		return m, nil
	case key.Matches(msg, keys.copy):
		m.copySelected()
		return m, nil
	case key.Matches(msg, keys.prevPage):
		if m.pending != 0 || !m.current.HasPrev(m.page) {
			return m, nil
		}
		return m.load(m.page - 1)
	case key.Matches(msg, keys.nextPage):
		if m.pending != 0 || !m.current.HasNext(m.page) {
			return m, nil
		}
		return m.load(m.page + 1)
	case key.Matches(msg, keys.reload):
		if m.pending != 0 {
			return m, nil
		}
		return m.load(m.page)
	}

	if m.detail {
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ordersModel) load(page int) (tea.Model, tea.Cmd) {
	m.pending = page
	m.detail = false
	return m, tea.Batch(m.cmdLoadPage(page), m.spinner.Tick)
}

func (m ordersModel) onPageLoaded(msg pageLoadedMsg) ordersModel {
	if msg.page != m.pending {
		return m
	}
	m.pending = 0

	if msg.err != nil {
		m.notifier.Show(models.SeverityError, humanizeError(msg.err))
		return m
	}

	m.page = msg.page
	m.current = msg.result
	m.loaded = true
	m.table.SetRows(orderRows(msg.result.Orders))
	m.table.SetCursor(0)
	return m
}

func (m ordersModel) copySelected() {
	order, ok := m.selected()
	if !ok {
		m.notifier.Show(models.SeverityError, errNothingToCopy.Error())
		return
	}

	if err := m.copyText(order.OrderID); err != nil {
		m.notifier.Show(models.SeverityError, fmt.Sprintf("%s: %v", app.MsgCopyFailed, err))
		return
	}
	m.notifier.Show(models.SeveritySuccess, fmt.Sprintf(app.MsgOrderCopied, order.OrderID))
}

func (m ordersModel) selected() (models.Order, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.current.Orders) {
		return models.Order{}, false
	}
	return m.current.Orders[idx], true
}

func (m ordersModel) cmdLoadPage(page int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.orders.ListOrders(m.ctx, page)
		return pageLoadedMsg{page: page, result: result, err: err}
	}
}

func orderRows(orders []models.Order) []table.Row {
	rows := make([]table.Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, table.Row{
			o.OrderID,
			fitText(o.CustomerName(), orderColumns[1].Width),
			o.FormattedTotal(),
			o.PaymentLabel(),
			o.FormattedDate(),
		})
	}
	return rows
}

func (m ordersModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	title := "ORDERS"
	if m.pending != 0 {
		title += "  " + m.spinner.View()
	}

	var body strings.Builder
	switch {
	case !m.loaded && m.pending != 0:
		body.WriteString("Loading...")
	case m.detail:
		order, _ := m.selected()
		body.WriteString(renderOrderDetail(order))
	case len(m.current.Orders) == 0:
		body.WriteString("No orders")
	default:
		body.WriteString(m.table.View())
		body.WriteString("\n\n")
		body.WriteString(m.pager())
	}

	if toast := renderToast(m.notifier.Current()); toast != "" {
		body.WriteString("\n\n")
		body.WriteString(toast)
	}

	return renderPage(title, body.String(),
		helpLine(keys.prevPage, keys.nextPage, keys.copy, keys.details, keys.reload, keys.version, keys.quit))
}

func (m ordersModel) pager() string {
	prev, next := " ", " "
	if m.current.HasPrev(m.page) {
		prev = "‹"
	}
	if m.current.HasNext(m.page) {
		next = "›"
	}
	total := max(m.current.Meta.TotalPages, m.page)
	return fmt.Sprintf("%s page %d of %d %s", prev, m.page, total, next)
}

func renderOrderDetail(o models.Order) string {
	status := unpaidStyle.Render(o.PaymentLabel())
	if o.IsPaid() {
		status = paidStyle.Render(o.PaymentLabel())
	}

	method := "-"
	if o.Payment != nil && o.Payment.PaymentMethod != "" {
		method = o.Payment.PaymentMethod
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Order:    %s\n", o.OrderID)
	fmt.Fprintf(&b, "ID:       %s\n", o.ID)
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerName())
	fmt.Fprintf(&b, "Total:    %s\n", o.FormattedTotal())
	fmt.Fprintf(&b, "Payment:  %s (%s)\n", status, method)
	fmt.Fprintf(&b, "Date:     %s", o.FormattedDate())
	return boxStyle.Render(b.String())
}
