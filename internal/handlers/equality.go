package handlers

//go:generate mockgen -source=equality.go -destination=equality_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/safety-hub/internal/models"
)

// CompanyLister returns rated companies with their averages.
type CompanyLister interface {
	Companies(ctx context.Context) ([]models.CompanySummary, error)
}

// CompanyRater stores the caller's rating of a company.
type CompanyRater interface {
	RateCompany(ctx context.Context, cr models.CompanyRating) (*models.CompanyRating, error)
}

// CompanyAdder registers a company.
type CompanyAdder interface {
	AddCompany(ctx context.Context, c models.Company) (*models.Company, error)
}

// DashboardGetter builds the equality overview.
type DashboardGetter interface {
	Dashboard(ctx context.Context) (*models.Dashboard, error)
}

// PayGapStats lists and records pay gap figures.
type PayGapStats interface {
	PayGaps(ctx context.Context, f models.StatsFilter) ([]models.PayGap, error)
	AddPayGap(ctx context.Context, p models.PayGap) error
}

// LeadershipStats lists and records leadership figures.
type LeadershipStats interface {
	Leadership(ctx context.Context, f models.StatsFilter) ([]models.LeadershipStat, error)
	AddLeadership(ctx context.Context, l models.LeadershipStat) error
}

// FieldRatioStats lists and records field ratios.
type FieldRatioStats interface {
	FieldRatios(ctx context.Context, f models.StatsFilter) ([]models.FieldRatio, error)
	AddFieldRatio(ctx context.Context, fr models.FieldRatio) error
}

// FeedbackBox lists and records visitor feedback.
type FeedbackBox interface {
	Feedback(ctx context.Context, f models.StatsFilter) ([]models.Feedback, error)
	AddFeedback(ctx context.Context, fb models.Feedback) error
}

// CompanyRatingRequest represents the JSON body for a company rating
// swagger:model CompanyRatingRequest
type CompanyRatingRequest struct {
	// Company name
	// required: true
	CompanyName string `json:"company_name" validate:"required,max=200"`

	// 1 to 5
	// required: true
	SafetyRating float64 `json:"safety_rating" validate:"required"`

	// 1 to 5
	// required: true
	PayEqualityRating float64 `json:"pay_equality_rating" validate:"required"`

	// 1 to 5
	// required: true
	CultureRating float64 `json:"culture_rating" validate:"required"`

	// Optional comment
	Comment *string `json:"comment,omitempty"`

	// Hide the rater
	IsAnonymous bool `json:"is_anonymous"`
}

// CompanyRequest represents the JSON body for registering a company
// swagger:model CompanyRequest
type CompanyRequest struct {
	// Company name
	// required: true
	Name string `json:"name" validate:"required,max=200"`

	// Industry
	// required: true
	Industry string `json:"industry" validate:"required,max=100"`

	// Head count
	EmployeeCount *int `json:"employee_count,omitempty" validate:"omitempty,gte=0"`

	// 0 to 100, defaults to 0
	GenderEqualityScore float64 `json:"gender_equality_score"`
}

// CompanyResponse represents the JSON body returned for a registered company
// swagger:model CompanyResponse
type CompanyResponse struct {
	Message string          `json:"message"`
	Company *models.Company `json:"company"`
}

// PayGapRequest represents the JSON body for a pay gap figure
// swagger:model PayGapRequest
type PayGapRequest struct {
	// required: true
	Sector string `json:"sector" validate:"required"`
	// required: true
	Year int `json:"year" validate:"required,gte=1900,lte=2100"`
	// required: true
	PayGapPercentage float64 `json:"pay_gap_percentage" validate:"gte=0,lte=100"`
}

// LeadershipRequest represents the JSON body for a leadership figure
// swagger:model LeadershipRequest
type LeadershipRequest struct {
	// required: true
	Sector string `json:"sector" validate:"required"`
	// required: true
	Year int `json:"year" validate:"required,gte=1900,lte=2100"`
	// required: true
	WomenInLeadership float64 `json:"women_in_leadership" validate:"gte=0,lte=100"`
	// required: true
	TotalPositions int `json:"total_positions" validate:"gte=0"`
}

// FieldRatioRequest represents the JSON body for a field ratio
// swagger:model FieldRatioRequest
type FieldRatioRequest struct {
	// required: true
	FieldName string `json:"field_name" validate:"required"`
	// required: true
	WomenCount int `json:"women_count" validate:"gte=0"`
	// required: true
	MenCount int `json:"men_count" validate:"gte=0"`
	// required: true
	Year int `json:"year" validate:"required,gte=1900,lte=2100"`
}

// FeedbackRequest represents the JSON body for visitor feedback
// swagger:model FeedbackRequest
type FeedbackRequest struct {
	// required: true
	Name string `json:"name" validate:"required"`
	// required: true
	Email string `json:"email" validate:"required,email"`
	// suggestion, complaint or appreciation
	// required: true
	FeedbackType string `json:"feedback_type" validate:"required,oneof=suggestion complaint appreciation"`
	// required: true
	Message string `json:"message" validate:"required"`
}

func statsFilter(r *http.Request) models.StatsFilter {
	q := r.URL.Query()
	return models.StatsFilter{
		Sector: q.Get("sector"),
		Field:  q.Get("field"),
		Type:   q.Get("type"),
		Year:   queryIntPtr(r, "year"),
	}
}

func writeList[T any](w http.ResponseWriter, r *http.Request, items []T, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, items)
}

func writeCreated(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MessageResponse{Message: msg})
}

// NewCompaniesHandler returns an HTTP handler listing rated companies.
// @Summary Company ratings
// @Description Averages per company joined with the registry, served from a short-lived cache.
// @Tags equality
// @Produce json
// @Success 200 {array} models.CompanySummary
// @Router /api/equality/companies [get]
func NewCompaniesHandler(svc CompanyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companies, err := svc.Companies(r.Context())
		writeList(w, r, companies, err)
	}
}

// NewRateCompanyHandler returns an HTTP handler that rates a company.
// Rating the same company again replaces the caller's previous rating.
// @Summary Rate a company
// @Tags equality
// @Accept json
// @Produce json
// @Param companyRatingRequest body handlers.CompanyRatingRequest true "Rating"
// @Success 201 {object} models.CompanyRating
// @Failure 400 {object} handlers.ErrorResponse "Rating must be between 1 and 5"
// @Security BearerAuth
// @Router /api/equality/rate [post]
func NewRateCompanyHandler(svc CompanyRater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		var req CompanyRatingRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		rating, err := svc.RateCompany(r.Context(), models.CompanyRating{
			UserID:            userID,
			CompanyName:       req.CompanyName,
			SafetyRating:      req.SafetyRating,
			PayEqualityRating: req.PayEqualityRating,
			CultureRating:     req.CultureRating,
			Comment:           req.Comment,
			IsAnonymous:       req.IsAnonymous,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, rating)
	}
}

// NewAddCompanyHandler returns an HTTP handler that registers a company.
// @Summary Register a company
// @Tags equality
// @Accept json
// @Produce json
// @Param companyRequest body handlers.CompanyRequest true "Company"
// @Success 201 {object} handlers.CompanyResponse
// @Failure 400 {object} handlers.ErrorResponse "Company already registered"
// @Security BearerAuth
// @Router /api/equality/companies [post]
func NewAddCompanyHandler(svc CompanyAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompanyRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		company, err := svc.AddCompany(r.Context(), models.Company{
			Name:                req.Name,
			Industry:            req.Industry,
			EmployeeCount:       req.EmployeeCount,
			GenderEqualityScore: req.GenderEqualityScore,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, CompanyResponse{Message: "Company added successfully", Company: company})
	}
}

// NewDashboardHandler returns an HTTP handler for the equality overview.
// @Summary Equality dashboard
// @Tags equality
// @Produce json
// @Success 200 {object} models.Dashboard
// @Router /api/equality/dashboard [get]
func NewDashboardHandler(svc DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Dashboard(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// NewPayGapsHandler returns an HTTP handler listing pay gap figures.
// @Summary Pay gap figures
// @Tags equality
// @Produce json
// @Param sector query string false "Sector"
// @Param year query int false "Year"
// @Success 200 {array} models.PayGap
// @Router /api/equality/paygap [get]
func NewPayGapsHandler(svc PayGapStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gaps, err := svc.PayGaps(r.Context(), statsFilter(r))
		writeList(w, r, gaps, err)
	}
}

// NewAddPayGapHandler returns an HTTP handler recording a pay gap figure.
// @Summary Add pay gap figure
// @Tags equality
// @Accept json
// @Produce json
// @Param payGapRequest body handlers.PayGapRequest true "Figure"
// @Success 201 {object} handlers.MessageResponse
// @Security BearerAuth
// @Router /api/equality/paygap [post]
func NewAddPayGapHandler(svc PayGapStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PayGapRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		err := svc.AddPayGap(r.Context(), models.PayGap{
			Sector:           req.Sector,
			Year:             req.Year,
			PayGapPercentage: req.PayGapPercentage,
		})
		writeCreated(w, r, err, "Pay gap data added")
	}
}

// NewLeadershipHandler returns an HTTP handler listing leadership figures.
// @Summary Leadership figures
// @Tags equality
// @Produce json
// @Param sector query string false "Sector"
// @Param year query int false "Year"
// @Success 200 {array} models.LeadershipStat
// @Router /api/equality/leadership [get]
func NewLeadershipHandler(svc LeadershipStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Leadership(r.Context(), statsFilter(r))
		writeList(w, r, stats, err)
	}
}

// NewAddLeadershipHandler returns an HTTP handler recording a leadership figure.
// @Summary Add leadership figure
// @Tags equality
// @Accept json
// @Produce json
// @Param leadershipRequest body handlers.LeadershipRequest true "Figure"
// @Success 201 {object} handlers.MessageResponse
// @Security BearerAuth
// @Router /api/equality/leadership [post]
func NewAddLeadershipHandler(svc LeadershipStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LeadershipRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		err := svc.AddLeadership(r.Context(), models.LeadershipStat{
			Sector:            req.Sector,
			Year:              req.Year,
			WomenInLeadership: req.WomenInLeadership,
			TotalPositions:    req.TotalPositions,
		})
		writeCreated(w, r, err, "Leadership data added")
	}
}

// NewFieldRatiosHandler returns an HTTP handler listing field ratios.
// @Summary Field ratios
// @Tags equality
// @Produce json
// @Param field query string false "Field"
// @Param year query int false "Year"
// @Success 200 {array} models.FieldRatio
// @Router /api/equality/fields [get]
func NewFieldRatiosHandler(svc FieldRatioStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ratios, err := svc.FieldRatios(r.Context(), statsFilter(r))
		writeList(w, r, ratios, err)
	}
}

// NewAddFieldRatioHandler returns an HTTP handler recording a field ratio.
// @Summary Add field ratio
// @Tags equality
// @Accept json
// @Produce json
// @Param fieldRatioRequest body handlers.FieldRatioRequest true "Ratio"
// @Success 201 {object} handlers.MessageResponse
// @Security BearerAuth
// @Router /api/equality/fields [post]
func NewAddFieldRatioHandler(svc FieldRatioStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FieldRatioRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		err := svc.AddFieldRatio(r.Context(), models.FieldRatio{
			FieldName:  req.FieldName,
			WomenCount: req.WomenCount,
			MenCount:   req.MenCount,
			Year:       req.Year,
		})
		writeCreated(w, r, err, "Field ratio data added")
	}
}

// NewFeedbackHandler returns an HTTP handler listing feedback.
// @Summary Feedback
// @Tags equality
// @Produce json
// @Param type query string false "suggestion, complaint or appreciation"
// @Success 200 {array} models.Feedback
// @Router /api/equality/feedback [get]
func NewFeedbackHandler(svc FeedbackBox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Feedback(r.Context(), statsFilter(r))
		writeList(w, r, items, err)
	}
}

// NewAddFeedbackHandler returns an HTTP handler recording visitor feedback.
// @Summary Send feedback
// @Tags equality
// @Accept json
// @Produce json
// @Param feedbackRequest body handlers.FeedbackRequest true "Feedback"
// @Success 201 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /api/equality/feedback [post]
func NewAddFeedbackHandler(svc FeedbackBox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FeedbackRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		err := svc.AddFeedback(r.Context(), models.Feedback{
			Name:         req.Name,
			Email:        req.Email,
			FeedbackType: req.FeedbackType,
			Message:      req.Message,
		})
		writeCreated(w, r, err, "Feedback submitted")
	}
}
