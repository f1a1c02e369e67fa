package handlers

//go:generate mockgen -source=scheme.go -destination=scheme_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/safety-hub/internal/models"
)

// SchemeLister lists government schemes.
type SchemeLister interface {
	List(ctx context.Context, location, category string) ([]models.GovernmentScheme, error)
}

// NewSchemesHandler returns an HTTP handler listing government schemes.
// @Summary Government schemes
// @Tags schemes
// @Produce json
// @Param location query string false "Location substring"
// @Param category query string false "Category"
// @Success 200 {array} models.GovernmentScheme
// @Router /api/schemes [get]
func NewSchemesHandler(svc SchemeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		schemes, err := svc.List(r.Context(), q.Get("location"), q.Get("category"))
		writeList(w, r, schemes, err)
	}
}
