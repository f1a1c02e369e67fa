package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSchemesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockSchemeLister(ctrl)
	m.EXPECT().List(gomock.Any(), "Delhi", "education").Return([]models.GovernmentScheme{{ID: 1, Name: "Beti Bachao Beti Padhao"}}, nil)

	rr := serve(NewSchemesHandler(m), newJSONRequest(t, http.MethodGet, "/api/schemes?location=Delhi&category=education", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Beti Bachao Beti Padhao", decodeList(t, rr)[0]["name"])
}
