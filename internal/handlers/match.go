package handlers

//go:generate mockgen -source=match.go -destination=match_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/safety-hub/internal/models"
)

// MatchRequester asks a teacher for a skill match.
type MatchRequester interface {
	Request(ctx context.Context, learnerID, teacherID, skillID int64, message string) (*models.SkillMatch, error)
}

// MatchResponder accepts or rejects a pending request.
type MatchResponder interface {
	Respond(ctx context.Context, matchID, actorID int64, action, message string) (*models.SkillMatch, error)
}

// MatchLister lists received or sent requests.
type MatchLister interface {
	List(ctx context.Context, userID int64, direction, status string) ([]models.SkillMatch, error)
}

// MatchRequest represents the JSON body for a match request
// swagger:model MatchRequest
type MatchRequest struct {
	// Teacher id
	// required: true
	TeacherID int64 `json:"teacher_id" validate:"required"`

	// Skill id
	// required: true
	SkillID int64 `json:"skill_id" validate:"required"`

	// Note to the teacher
	Message string `json:"message"`
}

// MatchRespondRequest represents the JSON body for a teacher's response
// swagger:model MatchRespondRequest
type MatchRespondRequest struct {
	// accept or reject
	// required: true
	Action string `json:"action" validate:"required"`

	// Note to the learner
	Message string `json:"message"`
}

// MatchResponse wraps a match
// swagger:model MatchResponse
type MatchResponse struct {
	// Success message
	Message string `json:"message"`

	// The match
	Match *models.SkillMatch `json:"match"`
}

// NewRequestMatchHandler returns an HTTP handler that sends a match request.
// @Summary Request a match
// @Description The teacher must actively teach the skill. One pending request per learner, teacher and skill.
// @Tags skills
// @Accept json
// @Produce json
// @Param matchRequest body handlers.MatchRequest true "Request"
// @Success 201 {object} handlers.MatchResponse
// @Failure 400 {object} handlers.ErrorResponse "Self match / teacher does not offer skill / duplicate"
// @Security BearerAuth
// @Router /api/skills/request-match [post]
func NewRequestMatchHandler(svc MatchRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		var req MatchRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		m, err := svc.Request(r.Context(), userID, req.TeacherID, req.SkillID, req.Message)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, MatchResponse{Message: "Match request sent", Match: m})
	}
}

// NewRespondMatchHandler returns an HTTP handler for the teacher's answer.
// @Summary Respond to a match request
// @Tags skills
// @Accept json
// @Produce json
// @Param id path int true "Match id"
// @Param matchRespondRequest body handlers.MatchRespondRequest true "Response"
// @Success 200 {object} handlers.MatchResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid action / already responded"
// @Failure 403 {object} handlers.ErrorResponse "Only the teacher can respond"
// @Failure 404 {object} handlers.ErrorResponse "Match request not found"
// @Security BearerAuth
// @Router /api/skills/match-requests/{id}/respond [post]
func NewRespondMatchHandler(svc MatchResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		var req MatchRespondRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		m, err := svc.Respond(r.Context(), id, userID, req.Action, req.Message)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MatchResponse{Message: "Request " + m.Status, Match: m})
	}
}

// NewListMatchesHandler returns an HTTP handler listing the caller's match requests.
// @Summary List match requests
// @Tags skills
// @Produce json
// @Param type query string false "received or sent" default(received)
// @Param status query string false "Status filter"
// @Success 200 {array} models.SkillMatch
// @Failure 400 {object} handlers.ErrorResponse "type must be received or sent"
// @Security BearerAuth
// @Router /api/skills/match-requests [get]
func NewListMatchesHandler(svc MatchLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		q := r.URL.Query()

		matches, err := svc.List(r.Context(), userID, q.Get("type"), q.Get("status"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if matches == nil {
			matches = []models.SkillMatch{}
		}
		writeJSON(w, http.StatusOK, matches)
	}
}
