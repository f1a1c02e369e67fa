package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_SetPrimary(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := services.NewContactService(services.NewMockContactStore(ctrl))

		for _, phone := range []string{"", "12345", "98765432100", "98765-4321", "+919876543"} {
			_, err := svc.SetPrimary(ctx, models.EmergencyContact{UserID: 1, Name: "Mom", Phone: phone})
			assert.ErrorIs(t, err, services.ErrInvalidPhone, phone)
		}
	})

	t.Run("creates when none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := services.NewMockContactStore(ctrl)
		svc := services.NewContactService(store)
		in := models.EmergencyContact{UserID: 1, Name: "Mom", Phone: "9876543210", Relationship: "mother"}

		store.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(nil, nil)
		store.EXPECT().Create(gomock.Any(), in).Return(&models.EmergencyContact{ID: 4, UserID: 1, Phone: "9876543210"}, nil)

		c, err := svc.SetPrimary(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(4), c.ID)
	})

	t.Run("updates first contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := services.NewMockContactStore(ctrl)
		svc := services.NewContactService(store)

		store.EXPECT().ListByUser(gomock.Any(), int64(1)).Return([]models.EmergencyContact{{ID: 2}, {ID: 3}}, nil)
		store.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.EmergencyContact) (*models.EmergencyContact, error) {
				assert.Equal(t, int64(2), c.ID)
				return &c, nil
			})
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		c, err := svc.SetPrimary(ctx, models.EmergencyContact{UserID: 1, Name: "Dad", Phone: "9876543210"})
		require.NoError(t, err)
		assert.Equal(t, "Dad", c.Name)
	})
}

func TestContactService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		stored  *models.EmergencyContact
		existed bool
		wantErr error
	}{
		{name: "missing", wantErr: services.ErrContactNotFound},
		{name: "other owner", stored: &models.EmergencyContact{ID: 5, UserID: 2}, wantErr: services.ErrNotContactOwner},
		{name: "owner", stored: &models.EmergencyContact{ID: 5, UserID: 1}, existed: true},
		{name: "removed concurrently", stored: &models.EmergencyContact{ID: 5, UserID: 1}, wantErr: services.ErrContactNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := services.NewMockContactStore(ctrl)
			svc := services.NewContactService(store)

			store.EXPECT().GetByID(gomock.Any(), int64(5)).Return(tt.stored, nil)
			if tt.stored != nil && tt.stored.UserID == 1 {
				store.EXPECT().Delete(gomock.Any(), int64(5)).Return(tt.existed, nil)
			}

			err := svc.Delete(ctx, 1, 5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
