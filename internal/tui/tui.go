// Package tui is the terminal front end of the nekmart admin dashboard.
//
// It shows one page of orders at a time in a table. The first page comes from
// the server-rendered snapshot the client was hydrated with; later pages are
// fetched from the API through the same GraphQL client.
package tui

import (
	"context"

	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/service"
	"github.com/MKhiriev/nekmart-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	orders        service.OrderService
	notifications config.Notifications
	buildInfo     models.AppBuildInfo
	serverVersion string

	logger *logger.Logger
}

func New(orders service.OrderService, notifications config.Notifications, buildInfo models.AppBuildInfo, serverVersion string, logger *logger.Logger) *TUI {
	return &TUI{
		orders:        orders,
		notifications: notifications,
		buildInfo:     buildInfo,
		serverVersion: serverVersion,
		logger:        logger,
	}
}

// Run shows the orders screen starting at page and blocks until the user
// quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, page int) error {
	var program *tea.Program
	ready := make(chan struct{})

	// The notifier reports from its timer goroutine as well as from Update;
	// Send must never run on the program's own goroutine.
	notifier := service.NewNotifier(t.notifications, func(n models.Notification) {
		t.logger.Debug().Bool("open", n.Open).Str("severity", string(n.Severity)).Msg(n.Message)
		go func() {
			<-ready
			program.Send(toastChangedMsg{})
		}()
	})
	defer notifier.Close()

	model := newOrdersModel(ctx, t.orders, notifier, page)
	model.buildInfo = t.buildInfo
	model.serverVersion = t.serverVersion

	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	close(ready)

	if _, err := program.Run(); err != nil {
		t.logger.Err(err).Msg("tui stopped with error")
		return err
	}
	return nil
}
