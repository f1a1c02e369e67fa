package handlers

//go:generate mockgen -source=sos.go -destination=sos_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/services"
)

// SOSStarter opens an alert and texts the user's contacts.
type SOSStarter interface {
	Start(ctx context.Context, userID int64, lat, lon *float64) (*models.SOSStartResult, error)
}

// SOSUpdater moves an active alert.
type SOSUpdater interface {
	Update(ctx context.Context, sosID int64, lat, lon float64) (*models.SOSLog, error)
}

// SOSStopper ends an alert.
type SOSStopper interface {
	Stop(ctx context.Context, sosID int64) (*models.SOSLog, error)
}

// SOSActiveGetter returns a user's active alert, or nil.
type SOSActiveGetter interface {
	GetActive(ctx context.Context, userID int64) (*models.SOSLog, error)
}

// SOSStartRequest represents the JSON body for starting an alert
// swagger:model SOSStartRequest
type SOSStartRequest struct {
	// User raising the alert
	// required: true
	UserID int64 `json:"user_id" validate:"required"`

	// Latitude
	// default: 12.9
	Latitude *float64 `json:"latitude,omitempty"`

	// Longitude
	// default: 77.6
	Longitude *float64 `json:"longitude,omitempty"`
}

// SOSUpdateRequest represents the JSON body for a location update
// swagger:model SOSUpdateRequest
type SOSUpdateRequest struct {
	// Alert id
	// required: true
	SOSID int64 `json:"sos_id" validate:"required"`

	// Latitude
	// required: true
	Latitude *float64 `json:"latitude" validate:"required"`

	// Longitude
	// required: true
	Longitude *float64 `json:"longitude" validate:"required"`
}

// SOSStopRequest represents the JSON body for stopping an alert
// swagger:model SOSStopRequest
type SOSStopRequest struct {
	// Alert id
	// required: true
	SOSID int64 `json:"sos_id" validate:"required"`
}

// SOSStartResponse reports the SMS fan-out of a started alert
// swagger:model SOSStartResponse
type SOSStartResponse struct {
	// Success message
	Message string `json:"message"`

	models.SOSStartResult
}

// SOSStatusResponse describes the user's active alert
// swagger:model SOSStatusResponse
type SOSStatusResponse struct {
	// Whether an alert is active
	Active bool `json:"active"`

	SOSID     int64      `json:"sos_id,omitempty"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// Google Maps link, live route only
	MapLink string `json:"map_link,omitempty"`
}

// NewSOSStartHandler returns an HTTP handler that starts an alert.
// @Summary Start SOS
// @Description Opens an alert and sends one SMS per emergency contact. Failed texts are counted, not fatal.
// @Tags sos
// @Accept json
// @Produce json
// @Param sosStartRequest body handlers.SOSStartRequest true "User and coordinates"
// @Success 200 {object} handlers.SOSStartResponse
// @Failure 400 {object} handlers.ErrorResponse "user_id is required"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/sos/start [post]
func NewSOSStartHandler(svc SOSStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SOSStartRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.Start(r.Context(), req.UserID, req.Latitude, req.Longitude)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SOSStartResponse{Message: "SOS alert started", SOSStartResult: *res})
	}
}

// NewSOSUpdateHandler returns an HTTP handler that updates an alert's location.
// @Summary Update SOS location
// @Tags sos
// @Accept json
// @Produce json
// @Param sosUpdateRequest body handlers.SOSUpdateRequest true "Alert and coordinates"
// @Success 200 {object} models.SOSLog
// @Failure 400 {object} handlers.ErrorResponse "Missing fields / SOS alert already stopped"
// @Failure 404 {object} handlers.ErrorResponse "SOS alert not found"
// @Router /api/sos/update [post]
func NewSOSUpdateHandler(svc SOSUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SOSUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		alert, err := svc.Update(r.Context(), req.SOSID, *req.Latitude, *req.Longitude)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, alert)
	}
}

// NewSOSStopHandler returns an HTTP handler that stops an alert.
// @Summary Stop SOS
// @Tags sos
// @Accept json
// @Produce json
// @Param sosStopRequest body handlers.SOSStopRequest true "Alert"
// @Success 200 {object} models.SOSLog
// @Failure 404 {object} handlers.ErrorResponse "SOS alert not found"
// @Router /api/sos/stop [post]
func NewSOSStopHandler(svc SOSStopper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SOSStopRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		alert, err := svc.Stop(r.Context(), req.SOSID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, alert)
	}
}

// NewSOSActiveHandler returns an HTTP handler reporting the user's active alert.
// With live set the response also carries a map link.
// @Summary Active SOS
// @Tags sos
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} handlers.SOSStatusResponse
// @Router /api/sos/active/{user_id} [get]
// @Router /api/sos/live/{user_id} [get]
func NewSOSActiveHandler(svc SOSActiveGetter, live bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "user_id")
		if !ok {
			return
		}

		alert, err := svc.GetActive(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if alert == nil {
			writeJSON(w, http.StatusOK, SOSStatusResponse{Active: false})
			return
		}

		resp := SOSStatusResponse{
			Active:    true,
			SOSID:     alert.ID,
			Latitude:  alert.Latitude,
			Longitude: alert.Longitude,
			CreatedAt: &alert.CreatedAt,
		}
		if live {
			resp.MapLink = services.MapLink(alert.Latitude, alert.Longitude)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
