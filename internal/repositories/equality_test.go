package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyRatingRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewCompanyRatingRepository(db)
	userID := createUser(t, db, "rater")
	employees := 250

	t.Run("CreateCompany", func(t *testing.T) {
		created, err := repo.CreateCompany(ctx, models.Company{
			Name: "Acme", Industry: "Technology", EmployeeCount: &employees, GenderEqualityScore: 72.5,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, 250, *created.EmployeeCount)

		_, err = repo.CreateCompany(ctx, models.Company{Name: "Acme", Industry: "Retail"})
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("UpsertReplacesRating", func(t *testing.T) {
		rating := models.CompanyRating{UserID: userID, CompanyName: "Globex", SafetyRating: 2, PayEqualityRating: 2, CultureRating: 2}
		first, err := repo.Upsert(ctx, rating)
		require.NoError(t, err)

		rating.SafetyRating = 4
		second, err := repo.Upsert(ctx, rating)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 4.0, second.SafetyRating)
	})

	t.Run("SummariesJoinRegistry", func(t *testing.T) {
		summaries, err := repo.Summaries(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		acme, globex := summaries[0], summaries[1]
		assert.Equal(t, "Acme", acme.Name)
		assert.Equal(t, 0, acme.TotalRatings)
		require.NotNil(t, acme.Industry)
		assert.Equal(t, "Technology", *acme.Industry)
		assert.Equal(t, 72.5, *acme.GenderEqualityScore)

		assert.Equal(t, "Globex", globex.Name)
		assert.Equal(t, 1, globex.TotalRatings)
		assert.Equal(t, 4.0, globex.AvgSafety)
		assert.Nil(t, globex.Industry)
	})
}
