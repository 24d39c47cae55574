package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/nekmart-admin/internal/graphql"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/utils"
	"github.com/MKhiriev/nekmart-admin/models"
)

// ordersPage renders the orders page props. A failed GraphQL result is part
// of the snapshot, so it is still answered with 200 and surfaces on the
// client after hydration.
func (h *Handler) ordersPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page := parsePage(r.URL.Query().Get("page"))

	_, err := h.services.OrderService.ListOrders(r.Context(), page)
	if err != nil {
		var combined *graphql.CombinedError
		if !errors.As(err, &combined) {
			status := statusFromError(err)
			log.Err(err).Int("page", page).Msg("error rendering orders page")
			utils.WriteError(w, errorMessage(err, status), status)
			return
		}
		log.Warn().Err(err).Int("page", page).Msg("orders page rendered with a failed query")
	}

	manager, ok := graphql.ManagerFromContext(r.Context())
	if !ok || manager.SSRCache() == nil {
		log.Error().Msg("orders page rendered without a graphql manager")
		utils.WriteError(w, "", http.StatusInternalServerError)
		return
	}

	props := models.OrdersPageProps{
		Page:      page,
		URQLState: manager.SSRCache().ExtractData(),
	}
	if _, err = utils.WriteJSON(w, models.OrdersPageResponse{Props: props}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing orders page props")
	}
}

// parsePage reads the page query parameter. Missing, malformed and
// non-positive values mean page 1.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
