package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCompaniesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockCompanyLister(ctrl)
	m.EXPECT().Companies(gomock.Any()).Return([]models.CompanySummary{{Name: "Acme", TotalRatings: 2, AvgSafety: 4.5}}, nil)

	rr := serve(NewCompaniesHandler(m), newJSONRequest(t, http.MethodGet, "/api/equality/companies", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Acme", decodeList(t, rr)[0]["name"])
}

func TestRateCompanyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := map[string]any{"company_name": "Acme", "safety_rating": 4, "pay_equality_rating": 3, "culture_rating": 6}

	t.Run("out of range", func(t *testing.T) {
		m := NewMockCompanyRater(ctrl)
		m.EXPECT().RateCompany(gomock.Any(), models.CompanyRating{
			UserID:            2,
			CompanyName:       "Acme",
			SafetyRating:      4,
			PayEqualityRating: 3,
			CultureRating:     6,
		}).Return(nil, services.ErrInvalidRating)

		rr := serve(NewRateCompanyHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/equality/rate", body), 2))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Rating must be between 1 and 5", decodeMap(t, rr)["error"])
	})

	t.Run("missing company", func(t *testing.T) {
		m := NewMockCompanyRater(ctrl)

		rr := serve(NewRateCompanyHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/equality/rate",
			map[string]any{"safety_rating": 4, "pay_equality_rating": 3, "culture_rating": 3}), 2))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "company_name is required", decodeMap(t, rr)["error"])
	})
}

func TestAddCompanyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	employees := 250
	tests := []struct {
		name         string
		body         map[string]any
		setup        func(m *MockCompanyAdder)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "created",
			body: map[string]any{"name": "Acme", "industry": "Technology", "employee_count": 250, "gender_equality_score": 72.5},
			setup: func(m *MockCompanyAdder) {
				m.EXPECT().AddCompany(gomock.Any(), models.Company{
					Name: "Acme", Industry: "Technology", EmployeeCount: &employees, GenderEqualityScore: 72.5,
				}).Return(&models.Company{ID: 9, Name: "Acme", Industry: "Technology"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "name taken",
			body: map[string]any{"name": "Acme", "industry": "Technology"},
			setup: func(m *MockCompanyAdder) {
				m.EXPECT().AddCompany(gomock.Any(), gomock.Any()).Return(nil, services.ErrCompanyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Company already registered",
		},
		{
			name:         "missing industry",
			body:         map[string]any{"name": "Acme"},
			setup:        func(m *MockCompanyAdder) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "industry is required",
		},
		{
			name:         "negative head count",
			body:         map[string]any{"name": "Acme", "industry": "Technology", "employee_count": -1},
			setup:        func(m *MockCompanyAdder) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "employee_count must satisfy gte=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockCompanyAdder(ctrl)
			tt.setup(m)

			rr := serve(NewAddCompanyHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/equality/companies", tt.body), 2))

			assert.Equal(t, tt.expectedCode, rr.Code)
			body := decodeMap(t, rr)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, body["error"])
				return
			}
			assert.Equal(t, "Company added successfully", body["message"])
			assert.Equal(t, "Acme", body["company"].(map[string]any)["name"])
		})
	}
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := &models.Dashboard{}
	d.GenderPayGap.Overall = 21.5
	d.GenderPayGap.BySector = map[string]float64{"Tech": 20}
	d.TopCompanies = []models.CompanySummary{}

	m := NewMockDashboardGetter(ctrl)
	m.EXPECT().Dashboard(gomock.Any()).Return(d, nil)

	rr := serve(NewDashboardHandler(m), newJSONRequest(t, http.MethodGet, "/api/equality/dashboard", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	gap := decodeMap(t, rr)["gender_pay_gap"].(map[string]any)
	assert.Equal(t, 21.5, gap["overall"])
}

func TestPayGapHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	year := 2023
	m := NewMockPayGapStats(ctrl)
	m.EXPECT().PayGaps(gomock.Any(), models.StatsFilter{Sector: "Tech", Year: &year}).
		Return([]models.PayGap{{Sector: "Tech", Year: 2023, PayGapPercentage: 18}}, nil)
	m.EXPECT().AddPayGap(gomock.Any(), models.PayGap{Sector: "Tech", Year: 2024, PayGapPercentage: 17.5}).Return(nil)

	rr := serve(NewPayGapsHandler(m), newJSONRequest(t, http.MethodGet, "/api/equality/paygap?sector=Tech&year=2023", nil))
	assert.Equal(t, float64(18), decodeList(t, rr)[0]["pay_gap_percentage"])

	rr = serve(NewAddPayGapHandler(m), newJSONRequest(t, http.MethodPost, "/api/equality/paygap",
		map[string]any{"sector": "Tech", "year": 2024, "pay_gap_percentage": 17.5}))
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(NewAddPayGapHandler(m), newJSONRequest(t, http.MethodPost, "/api/equality/paygap",
		map[string]any{"sector": "Tech", "year": 2024, "pay_gap_percentage": 140}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLeadershipHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockLeadershipStats(ctrl)
	m.EXPECT().Leadership(gomock.Any(), models.StatsFilter{}).Return(nil, nil)
	m.EXPECT().AddLeadership(gomock.Any(), models.LeadershipStat{Sector: "Finance", Year: 2024, WomenInLeadership: 30, TotalPositions: 200}).
		Return(errors.New("insert failed"))

	rr := serve(NewLeadershipHandler(m), newJSONRequest(t, http.MethodGet, "/api/equality/leadership", nil))
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))

	rr = serve(NewAddLeadershipHandler(m), newJSONRequest(t, http.MethodPost, "/api/equality/leadership",
		map[string]any{"sector": "Finance", "year": 2024, "women_in_leadership": 30, "total_positions": 200}))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestFieldRatioHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockFieldRatioStats(ctrl)
	m.EXPECT().FieldRatios(gomock.Any(), models.StatsFilter{Field: "Engineering"}).Return([]models.FieldRatio{{FieldName: "Engineering"}}, nil)
	m.EXPECT().AddFieldRatio(gomock.Any(), models.FieldRatio{FieldName: "Nursing", WomenCount: 80, MenCount: 20, Year: 2024}).Return(nil)

	rr := serve(NewFieldRatiosHandler(m), newJSONRequest(t, http.MethodGet, "/api/equality/fields?field=Engineering", nil))
	assert.Len(t, decodeList(t, rr), 1)

	rr = serve(NewAddFieldRatioHandler(m), newJSONRequest(t, http.MethodPost, "/api/equality/fields",
		map[string]any{"field_name": "Nursing", "women_count": 80, "men_count": 20, "year": 2024}))
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestFeedbackHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockFeedbackBox(ctrl)
	m.EXPECT().Feedback(gomock.Any(), models.StatsFilter{Type: "complaint"}).Return([]models.Feedback{}, nil)
	m.EXPECT().AddFeedback(gomock.Any(), models.Feedback{
		Name:         "Ravi",
		Email:        "ravi@example.com",
		FeedbackType: "suggestion",
		Message:      "More data please",
	}).Return(nil)

	rr := serve(NewFeedbackHandler(m), newJSONRequest(t, http.MethodGet, "/api/equality/feedback?type=complaint", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(NewAddFeedbackHandler(m), newJSONRequest(t, http.MethodPost, "/api/equality/feedback", map[string]any{
		"name": "Ravi", "email": "ravi@example.com", "feedback_type": "suggestion", "message": "More data please",
	}))
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(NewAddFeedbackHandler(m), newJSONRequest(t, http.MethodPost, "/api/equality/feedback", map[string]any{
		"name": "Ravi", "email": "ravi@example.com", "feedback_type": "rant", "message": "x",
	}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "feedback_type must be one of: suggestion complaint appreciation", decodeMap(t, rr)["error"])
}
