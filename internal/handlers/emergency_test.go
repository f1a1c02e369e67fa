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

func TestListContactsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("own contacts", func(t *testing.T) {
		m := NewMockContactLister(ctrl)
		m.EXPECT().List(gomock.Any(), int64(3)).Return([]models.EmergencyContact{{ID: 1, UserID: 3, Name: "Mom"}}, nil)

		req := withURLParams(asUser(newJSONRequest(t, http.MethodGet, "/api/emergency/contacts/3", nil), 3), "user_id", "3")
		rr := serve(NewListContactsHandler(m), req)

		assert.Equal(t, http.StatusOK, rr.Code)
		list := decodeList(t, rr)
		assert.Len(t, list, 1)
		assert.Equal(t, "Mom", list[0]["name"])
	})

	t.Run("empty list is an array", func(t *testing.T) {
		m := NewMockContactLister(ctrl)
		m.EXPECT().List(gomock.Any(), int64(3)).Return(nil, nil)

		req := withURLParams(asUser(newJSONRequest(t, http.MethodGet, "/api/emergency/contacts/3", nil), 3), "user_id", "3")
		rr := serve(NewListContactsHandler(m), req)

		assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
	})

	t.Run("other user", func(t *testing.T) {
		m := NewMockContactLister(ctrl)

		req := withURLParams(asUser(newJSONRequest(t, http.MethodGet, "/api/emergency/contacts/4", nil), 3), "user_id", "4")
		rr := serve(NewListContactsHandler(m), req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		m := NewMockContactLister(ctrl)

		req := withURLParams(asUser(newJSONRequest(t, http.MethodGet, "/api/emergency/contacts/x", nil), 3), "user_id", "x")
		rr := serve(NewListContactsHandler(m), req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid user_id", decodeMap(t, rr)["error"])
	})
}

func TestAddContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockContactAdder(ctrl)
	m.EXPECT().Add(gomock.Any(), models.EmergencyContact{UserID: 3, Name: "Mom", Phone: "+1 555", Relationship: "Mother"}).
		Return(&models.EmergencyContact{ID: 9, UserID: 3, Name: "Mom"}, nil)

	rr := serve(NewAddContactHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/emergency/contacts",
		map[string]string{"name": "Mom", "phone": "+1 555", "relationship": "Mother"}), 3))

	assert.Equal(t, http.StatusCreated, rr.Code)
	contact := decodeMap(t, rr)["contact"].(map[string]any)
	assert.Equal(t, float64(9), contact["id"])

	rr = serve(NewAddContactHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/emergency/contacts",
		map[string]string{"phone": "9876543210"}), 3))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "name is required", decodeMap(t, rr)["error"])
}

func TestDeleteContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "deleted", expectedCode: http.StatusOK},
		{name: "not owner", err: services.ErrNotContactOwner, expectedCode: http.StatusForbidden},
		{name: "missing", err: services.ErrContactNotFound, expectedCode: http.StatusNotFound},
		{name: "db down", err: errors.New("conn refused"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockContactDeleter(ctrl)
			m.EXPECT().Delete(gomock.Any(), int64(3), int64(9)).Return(tt.err)

			req := withURLParams(asUser(newJSONRequest(t, http.MethodDelete, "/api/emergency/contacts/9", nil), 3), "id", "9")
			rr := serve(NewDeleteContactHandler(m), req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestSetPrimaryContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockPrimaryContactSetter(ctrl)
	m.EXPECT().SetPrimary(gomock.Any(), models.EmergencyContact{UserID: 3, Name: "Dad", Phone: "12345"}).
		Return(nil, services.ErrInvalidPhone)

	rr := serve(NewSetPrimaryContactHandler(m), asUser(newJSONRequest(t, http.MethodPut, "/api/profile/emergency-contact",
		map[string]string{"name": "Dad", "phone": "12345"}), 3))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Phone number must be 10 digits", decodeMap(t, rr)["error"])
}

func TestNearbyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockNearbyFinder(ctrl)
	m.EXPECT().Nearby(gomock.Any()).Return([]models.NearbyPlace{{Name: "City Police Station", Type: "police"}})

	rr := serve(NewNearbyHandler(m), newJSONRequest(t, http.MethodGet, "/api/emergency/nearby", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "police", decodeList(t, rr)[0]["type"])
}

func TestEmergencyAlertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockAlertAcknowledger(ctrl)
	m.EXPECT().Acknowledge(gomock.Any(), int64(3)).Return("alert_3_1700000000")

	rr := serve(NewEmergencyAlertHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/emergency/alert", nil), 3))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alert_3_1700000000", decodeMap(t, rr)["alert_id"])
}
