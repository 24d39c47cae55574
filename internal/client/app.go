// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/nekmart-admin/internal/adapter"
	"github.com/MKhiriev/nekmart-admin/internal/config"
	"github.com/MKhiriev/nekmart-admin/internal/graphql"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/service"
	"github.com/MKhiriev/nekmart-admin/internal/tui"
	"github.com/MKhiriev/nekmart-admin/models"
)

// UIFactory builds the front end for a hydrated order service.
type UIFactory func(orders service.OrderService, serverVersion string) UI

type App struct {
	adapter  adapter.ServerAdapter
	accessor *graphql.ClientAccessor
	newUI    UIFactory

	logger *logger.Logger
}

// NewApp creates the client application. The GraphQL manager lives for the
// whole process; every snapshot the app receives is fed into it.
func NewApp(serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errNoServerAdapter
	}
	if cfg == nil {
		return nil, errNoClientConfig
	}

	return newApp(serverAdapter, cfg, func(orders service.OrderService, serverVersion string) UI {
		return tui.New(orders, cfg.Notifications, buildInfo, serverVersion, logger)
	}, logger), nil
}

func newApp(serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, newUI UIFactory, logger *logger.Logger) *App {
	manager := graphql.NewManager(cfg.GraphQL, graphql.ModeClient, logger)

	return &App{
		adapter:  serverAdapter,
		accessor: graphql.NewClientAccessor(manager),
		newUI:    newUI,
		logger:   logger,
	}
}

// Run implements [Client]. It stops on SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	props, err := a.adapter.FetchOrdersPage(ctx, 1)
	if err != nil {
		return fmt.Errorf("error fetching orders page: %w", err)
	}
	a.logger.Info().Int("page", props.Page).Int("entries", len(props.URQLState)).Msg("orders page props received")

	serverVersion, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version is unavailable")
	}

	orders := service.NewOrderService(service.AccessorClient(a.accessor, props.URQLState), a.logger)

	// background refreshes started by the UI must finish before exit
	defer a.accessor.Client(props.URQLState).Wait()

	if err = a.newUI(orders, serverVersion).Run(ctx, props.Page); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("error running ui: %w", err)
	}

	return nil
}
