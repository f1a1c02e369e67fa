package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRequestMatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "sent", expectedCode: http.StatusCreated},
		{name: "self", err: services.ErrSelfMatch, expectedCode: http.StatusBadRequest},
		{name: "not offered", err: services.ErrTeacherDoesNotOfferSkill, expectedCode: http.StatusBadRequest},
		{name: "duplicate", err: services.ErrDuplicateMatchRequest, expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockMatchRequester(ctrl)
			var res *models.SkillMatch
			if tt.err == nil {
				res = &models.SkillMatch{ID: 4, Status: models.MatchStatusPending}
			}
			m.EXPECT().Request(gomock.Any(), int64(2), int64(1), int64(3), "teach me").Return(res, tt.err)

			rr := serve(NewRequestMatchHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/skills/request-match",
				map[string]any{"teacher_id": 1, "skill_id": 3, "message": "teach me"}), 2))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), decodeMap(t, rr)["error"])
			}
		})
	}
}

func TestRespondMatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "accepted", expectedCode: http.StatusOK},
		{name: "not teacher", err: services.ErrNotMatchTeacher, expectedCode: http.StatusForbidden},
		{name: "already responded", err: services.ErrMatchNotPending, expectedCode: http.StatusBadRequest},
		{name: "unknown", err: services.ErrMatchNotFound, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockMatchResponder(ctrl)
			var res *models.SkillMatch
			if tt.err == nil {
				res = &models.SkillMatch{ID: 4, Status: models.MatchStatusAccepted}
			}
			m.EXPECT().Respond(gomock.Any(), int64(4), int64(1), services.ActionAccept, "sure").Return(res, tt.err)

			req := withURLParams(asUser(newJSONRequest(t, http.MethodPost, "/api/skills/match-requests/4/respond",
				map[string]string{"action": "accept", "message": "sure"}), 1), "id", "4")
			rr := serve(NewRespondMatchHandler(m), req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.err == nil {
				assert.Equal(t, "Request accepted", decodeMap(t, rr)["message"])
			}
		})
	}
}

func TestListMatchesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockMatchLister(ctrl)
	gomock.InOrder(
		m.EXPECT().List(gomock.Any(), int64(2), "sent", "pending").Return([]models.SkillMatch{{ID: 4}}, nil),
		m.EXPECT().List(gomock.Any(), int64(2), "both", "").Return(nil, services.ErrInvalidMatchListType),
	)
	h := NewListMatchesHandler(m)

	rr := serve(h, asUser(newJSONRequest(t, http.MethodGet, "/api/skills/match-requests?type=sent&status=pending", nil), 2))
	assert.Len(t, decodeList(t, rr), 1)

	rr = serve(h, asUser(newJSONRequest(t, http.MethodGet, "/api/skills/match-requests?type=both", nil), 2))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
