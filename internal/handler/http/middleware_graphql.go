package http

import (
	"net/http"

	"github.com/MKhiriev/nekmart-admin/internal/graphql"
	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/utils"
)

// withGraphQL gives every request its own server-mode GraphQL manager so
// that no cache, SSR snapshot or cookie is shared between two callers. The
// caller's cookies travel with the context and are forwarded upstream.
func (h *Handler) withGraphQL(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		manager := graphql.NewManager(h.graphqlCfg, graphql.ModeServer, log, graphql.WithTransport(h.transport))

		ctx := graphql.WithManager(r.Context(), manager)
		ctx = utils.WithIncomingCookies(ctx, r.Cookies())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
