package tui

import "github.com/MKhiriev/nekmart-admin/models"

func renderToast(n models.Notification) string {
	if !n.Open {
		return ""
	}
	if n.Severity == models.SeverityError {
		return errorToast.Render("✗ " + n.Message)
	}
	return successToast.Render("✓ " + n.Message)
}
