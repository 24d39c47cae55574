package tui

import "github.com/MKhiriev/nekmart-admin/models"

type pageLoadedMsg struct {
	page   int
	result models.OrdersPage
	err    error
}

// toastChangedMsg asks for a redraw after the notifier changed on its own,
// e.g. when the toast timed out.
type toastChangedMsg struct{}
