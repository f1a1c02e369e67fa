package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSkillCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockSkillCategoryLister(ctrl)
	m.EXPECT().Categories(gomock.Any()).Return([]models.SkillCategory{{ID: 1, Name: "Technology", SkillsCount: 4}}, nil)

	rr := serve(NewSkillCategoriesHandler(m), newJSONRequest(t, http.MethodGet, "/api/skills/categories", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(4), decodeList(t, rr)[0]["skills_count"])
}

func TestSkillSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("with category", func(t *testing.T) {
		m := NewMockSkillSearcher(ctrl)
		m.EXPECT().Search(gomock.Any(), "py", gomock.Any()).
			DoAndReturn(func(_ any, _ string, categoryID *int64) ([]models.Skill, error) {
				assert.Equal(t, int64(2), *categoryID)
				return []models.Skill{{ID: 5, Name: "Python"}}, nil
			})

		rr := serve(NewSkillSearchHandler(m), newJSONRequest(t, http.MethodGet, "/api/skills/search?q=py&category_id=2", nil))
		assert.Equal(t, "Python", decodeList(t, rr)[0]["name"])
	})

	t.Run("without category", func(t *testing.T) {
		m := NewMockSkillSearcher(ctrl)
		m.EXPECT().Search(gomock.Any(), "", nil).Return(nil, nil)

		rr := serve(NewSkillSearchHandler(m), newJSONRequest(t, http.MethodGet, "/api/skills/search", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, decodeList(t, rr))
	})
}

func TestSaveUserSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         map[string]any
		mockSetup    func(m *MockUserSkillSaver)
		expectedCode int
	}{
		{
			name: "saved",
			body: map[string]any{"skill_id": 5, "skill_type": "teach", "preferred_method": "online"},
			mockSetup: func(m *MockUserSkillSaver) {
				m.EXPECT().SaveUserSkill(gomock.Any(), models.UserSkill{
					UserID:          2,
					SkillID:         5,
					SkillType:       models.SkillTypeTeach,
					PreferredMethod: "online",
				}).Return(&models.UserSkill{ID: 1, IsActive: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "bad type",
			body: map[string]any{"skill_id": 5, "skill_type": "mentor"},
			mockSetup: func(m *MockUserSkillSaver) {
				m.EXPECT().SaveUserSkill(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidSkillType)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown skill",
			body: map[string]any{"skill_id": 99, "skill_type": "learn"},
			mockSetup: func(m *MockUserSkillSaver) {
				m.EXPECT().SaveUserSkill(gomock.Any(), gomock.Any()).Return(nil, services.ErrSkillNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "missing skill id",
			body:         map[string]any{"skill_type": "learn"},
			mockSetup:    func(m *MockUserSkillSaver) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockUserSkillSaver(ctrl)
			tt.mockSetup(m)

			rr := serve(NewSaveUserSkillHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/skills/user-skills", tt.body), 2))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListUserSkillsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockUserSkillLister(ctrl)
	m.EXPECT().UserSkills(gomock.Any(), int64(2), "learn").Return([]models.UserSkill{{ID: 3, SkillType: "learn"}}, nil)

	rr := serve(NewListUserSkillsHandler(m), asUser(newJSONRequest(t, http.MethodGet, "/api/skills/user-skills?type=learn", nil), 2))
	assert.Len(t, decodeList(t, rr), 1)
}

func TestRemoveUserSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockUserSkillRemover(ctrl)
	m.EXPECT().RemoveUserSkill(gomock.Any(), int64(2), int64(3)).Return(services.ErrNotSkillOwner)

	rr := serve(NewRemoveUserSkillHandler(m), withURLParams(asUser(newJSONRequest(t, http.MethodDelete, "/api/skills/user-skills/3", nil), 2), "id", "3"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestBrowseSkillsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cat := int64(1)
	m := NewMockSkillBrowser(ctrl)
	m.EXPECT().Browse(gomock.Any(), models.BrowseFilter{
		CategoryID:    &cat,
		SkillName:     "guitar",
		Location:      "Pune",
		Method:        "offline",
		Page:          2,
		PerPage:       20,
		ExcludeUserID: 2,
	}).Return(&models.SkillOfferPage{Offers: []models.SkillOffer{}, CurrentPage: 2}, nil)

	req := asUser(newJSONRequest(t, http.MethodGet,
		"/api/skills/browse?category_id=1&skill_name=guitar&location=Pune&method=offline&page=2&per_page=20", nil), 2)
	rr := serve(NewBrowseSkillsHandler(m), req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(2), decodeMap(t, rr)["current_page"])
}

func TestBadgesAndStatsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	badges := NewMockBadgeLister(ctrl)
	badges.EXPECT().Badges(gomock.Any(), int64(2)).Return([]models.UserBadge{{BadgeType: models.BadgeMentor}}, nil)

	rr := serve(NewBadgesHandler(badges), asUser(newJSONRequest(t, http.MethodGet, "/api/skills/badges", nil), 2))
	assert.Equal(t, models.BadgeMentor, decodeList(t, rr)[0]["badge_type"])

	stats := NewMockSkillStatsGetter(ctrl)
	stats.EXPECT().Stats(gomock.Any(), int64(2)).Return(&models.SkillStats{TeachingSkills: 2, AverageRating: 4.5}, nil)

	rr = serve(NewSkillStatsHandler(stats), asUser(newJSONRequest(t, http.MethodGet, "/api/skills/stats", nil), 2))
	body := decodeMap(t, rr)
	assert.Equal(t, float64(2), body["teaching_skills"])
	assert.Equal(t, 4.5, body["average_rating"])
}

func TestRateSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "rated", expectedCode: http.StatusCreated},
		{name: "out of range", err: services.ErrInvalidRating, expectedCode: http.StatusBadRequest},
		{name: "duplicate", err: services.ErrDuplicateRating, expectedCode: http.StatusBadRequest},
		{name: "not match partner", err: services.ErrNotMatchParticipant, expectedCode: http.StatusForbidden},
		{name: "unknown match", err: services.ErrMatchNotFound, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockSkillRater(ctrl)
			var res *models.SkillRating
			if tt.err == nil {
				res = &models.SkillRating{ID: 1, Rating: 5}
			}
			m.EXPECT().Rate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, rt models.SkillRating) (*models.SkillRating, error) {
					assert.Equal(t, int64(2), rt.RaterID)
					assert.Equal(t, int64(1), rt.RatedUserID)
					assert.Equal(t, int64(7), *rt.MatchID)
					return res, tt.err
				})

			rr := serve(NewRateSkillHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/skills/rate",
				map[string]any{"rated_user_id": 1, "skill_id": 5, "match_id": 7, "rating": 5}), 2))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRateSkillHandler_MatchRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockSkillRater(ctrl)

	rr := serve(NewRateSkillHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/skills/rate",
		map[string]any{"rated_user_id": 1, "skill_id": 5, "rating": 5}), 2))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "match_id is required", decodeMap(t, rr)["error"])
}
