package handlers

//go:generate mockgen -source=skill.go -destination=skill_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/safety-hub/internal/models"
)

// SkillCategoryLister lists skill categories with their skill counts.
type SkillCategoryLister interface {
	Categories(ctx context.Context) ([]models.SkillCategory, error)
}

// SkillSearcher searches the skill catalogue.
type SkillSearcher interface {
	Search(ctx context.Context, q string, categoryID *int64) ([]models.Skill, error)
}

// UserSkillSaver adds or reactivates a teach or learn declaration.
type UserSkillSaver interface {
	SaveUserSkill(ctx context.Context, us models.UserSkill) (*models.UserSkill, error)
}

// UserSkillLister lists the caller's declarations.
type UserSkillLister interface {
	UserSkills(ctx context.Context, userID int64, skillType string) ([]models.UserSkill, error)
}

// UserSkillRemover deactivates one of the caller's declarations.
type UserSkillRemover interface {
	RemoveUserSkill(ctx context.Context, actorID, id int64) error
}

// SkillBrowser pages through other users' teach offers.
type SkillBrowser interface {
	Browse(ctx context.Context, f models.BrowseFilter) (*models.SkillOfferPage, error)
}

// BadgeLister lists the caller's badges.
type BadgeLister interface {
	Badges(ctx context.Context, userID int64) ([]models.UserBadge, error)
}

// SkillStatsGetter returns the caller's exchange overview.
type SkillStatsGetter interface {
	Stats(ctx context.Context, userID int64) (*models.SkillStats, error)
}

// SkillRater rates a teacher.
type SkillRater interface {
	Rate(ctx context.Context, rt models.SkillRating) (*models.SkillRating, error)
}

// UserSkillRequest represents the JSON body for a skill declaration
// swagger:model UserSkillRequest
type UserSkillRequest struct {
	// Skill id
	// required: true
	SkillID int64 `json:"skill_id" validate:"required"`

	// teach or learn
	// required: true
	SkillType string `json:"skill_type" validate:"required"`

	// Proficiency level
	// default: intermediate
	ProficiencyLevel string `json:"proficiency_level"`

	// Free-form description
	Description string `json:"description"`

	// When the user is available
	Availability string `json:"availability"`

	// online, offline or both
	PreferredMethod string `json:"preferred_method"`
}

// RatingRequest represents the JSON body for a teacher rating
// swagger:model RatingRequest
type RatingRequest struct {
	// Rated user
	// required: true
	RatedUserID int64 `json:"rated_user_id" validate:"required"`

	// Skill id, taken from the match when omitted
	SkillID int64 `json:"skill_id"`

	// Accepted or completed match between the rater and the rated user
	// required: true
	MatchID int64 `json:"match_id" validate:"required"`

	// 1 to 5
	// required: true
	Rating int `json:"rating" validate:"required"`

	// Review text
	Review string `json:"review"`
}

// NewSkillCategoriesHandler returns an HTTP handler listing skill categories.
// @Summary Skill categories
// @Tags skills
// @Produce json
// @Success 200 {array} models.SkillCategory
// @Security BearerAuth
// @Router /api/skills/categories [get]
func NewSkillCategoriesHandler(svc SkillCategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if categories == nil {
			categories = []models.SkillCategory{}
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// NewSkillSearchHandler returns an HTTP handler searching skills by name.
// @Summary Search skills
// @Tags skills
// @Produce json
// @Param q query string false "Name substring"
// @Param category_id query int false "Category"
// @Success 200 {array} models.Skill
// @Security BearerAuth
// @Router /api/skills/search [get]
func NewSkillSearchHandler(svc SkillSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := svc.Search(r.Context(), r.URL.Query().Get("q"), queryInt64Ptr(r, "category_id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if skills == nil {
			skills = []models.Skill{}
		}
		writeJSON(w, http.StatusOK, skills)
	}
}

// NewSaveUserSkillHandler returns an HTTP handler that declares a skill.
// @Summary Add or update a skill declaration
// @Description Saving an existing declaration updates and reactivates it. First declarations earn a badge.
// @Tags skills
// @Accept json
// @Produce json
// @Param userSkillRequest body handlers.UserSkillRequest true "Declaration"
// @Success 201 {object} models.UserSkill
// @Failure 400 {object} handlers.ErrorResponse "skill_type must be teach or learn"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Security BearerAuth
// @Router /api/skills/user-skills [post]
func NewSaveUserSkillHandler(svc UserSkillSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		var req UserSkillRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		us, err := svc.SaveUserSkill(r.Context(), models.UserSkill{
			UserID:           userID,
			SkillID:          req.SkillID,
			SkillType:        req.SkillType,
			ProficiencyLevel: req.ProficiencyLevel,
			Description:      req.Description,
			Availability:     req.Availability,
			PreferredMethod:  req.PreferredMethod,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, us)
	}
}

// NewListUserSkillsHandler returns an HTTP handler listing the caller's declarations.
// @Summary My skills
// @Tags skills
// @Produce json
// @Param type query string false "teach or learn"
// @Success 200 {array} models.UserSkill
// @Security BearerAuth
// @Router /api/skills/user-skills [get]
func NewListUserSkillsHandler(svc UserSkillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		skills, err := svc.UserSkills(r.Context(), userID, r.URL.Query().Get("type"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if skills == nil {
			skills = []models.UserSkill{}
		}
		writeJSON(w, http.StatusOK, skills)
	}
}

// NewRemoveUserSkillHandler returns an HTTP handler that deactivates a declaration.
// @Summary Remove a skill declaration
// @Tags skills
// @Produce json
// @Param id path int true "User skill id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Skill belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "User skill not found"
// @Security BearerAuth
// @Router /api/skills/user-skills/{id} [delete]
func NewRemoveUserSkillHandler(svc UserSkillRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := svc.RemoveUserSkill(r.Context(), userID, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Skill removed"})
	}
}

// NewBrowseSkillsHandler returns an HTTP handler paging through teach offers.
// The caller's own offers are excluded.
// @Summary Browse skill offers
// @Tags skills
// @Produce json
// @Param category_id query int false "Category"
// @Param skill_name query string false "Skill name substring"
// @Param location query string false "Teacher location substring"
// @Param method query string false "Preferred method"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Offers per page" default(10)
// @Success 200 {object} models.SkillOfferPage
// @Security BearerAuth
// @Router /api/skills/browse [get]
func NewBrowseSkillsHandler(svc SkillBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		q := r.URL.Query()

		page, err := svc.Browse(r.Context(), models.BrowseFilter{
			CategoryID:    queryInt64Ptr(r, "category_id"),
			SkillName:     q.Get("skill_name"),
			Location:      q.Get("location"),
			Method:        q.Get("method"),
			Page:          queryInt(r, "page", 1),
			PerPage:       queryInt(r, "per_page", 10),
			ExcludeUserID: userID,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// NewBadgesHandler returns an HTTP handler listing the caller's badges.
// @Summary My badges
// @Tags skills
// @Produce json
// @Success 200 {array} models.UserBadge
// @Security BearerAuth
// @Router /api/skills/badges [get]
func NewBadgesHandler(svc BadgeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		badges, err := svc.Badges(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if badges == nil {
			badges = []models.UserBadge{}
		}
		writeJSON(w, http.StatusOK, badges)
	}
}

// NewSkillStatsHandler returns an HTTP handler for the caller's exchange overview.
// @Summary My skill stats
// @Tags skills
// @Produce json
// @Success 200 {object} models.SkillStats
// @Security BearerAuth
// @Router /api/skills/stats [get]
func NewSkillStatsHandler(svc SkillStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		stats, err := svc.Stats(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// NewRateSkillHandler returns an HTTP handler that rates a teacher.
// @Summary Rate a teacher
// @Tags skills
// @Accept json
// @Produce json
// @Param ratingRequest body handlers.RatingRequest true "Rating"
// @Success 201 {object} models.SkillRating
// @Failure 400 {object} handlers.ErrorResponse "Rating must be between 1 and 5 / already rated"
// @Failure 403 {object} handlers.ErrorResponse "Not your match partner"
// @Failure 404 {object} handlers.ErrorResponse "Match request not found"
// @Security BearerAuth
// @Router /api/skills/rate [post]
func NewRateSkillHandler(svc SkillRater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		var req RatingRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		rating, err := svc.Rate(r.Context(), models.SkillRating{
			RaterID:     userID,
			RatedUserID: req.RatedUserID,
			SkillID:     req.SkillID,
			MatchID:     &req.MatchID,
			Rating:      req.Rating,
			Review:      req.Review,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, rating)
	}
}
