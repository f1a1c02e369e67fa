package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/repositories"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type equalityMocks struct {
	ratings *services.MockCompanyRatingStore
	cache   *services.MockCompanySummaryCache
	stats   *services.MockEqualityStatsStore
}

func newEqualityService(t *testing.T) (*services.EqualityService, equalityMocks) {
	ctrl := gomock.NewController(t)
	m := equalityMocks{
		ratings: services.NewMockCompanyRatingStore(ctrl),
		cache:   services.NewMockCompanySummaryCache(ctrl),
		stats:   services.NewMockEqualityStatsStore(ctrl),
	}
	return services.NewEqualityService(m.ratings, m.cache, m.stats), m
}

func TestEqualityService_Companies(t *testing.T) {
	ctx := context.Background()
	summaries := []models.CompanySummary{{Name: "Acme", TotalRatings: 2, AvgSafety: 4}}

	t.Run("cache hit", func(t *testing.T) {
		svc, m := newEqualityService(t)
		m.cache.EXPECT().Get(gomock.Any()).Return(summaries, nil)
		m.ratings.EXPECT().Summaries(gomock.Any()).Times(0)

		got, err := svc.Companies(ctx)
		require.NoError(t, err)
		assert.Equal(t, summaries, got)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		svc, m := newEqualityService(t)
		m.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
		m.ratings.EXPECT().Summaries(gomock.Any()).Return(summaries, nil)
		m.cache.EXPECT().Set(gomock.Any(), summaries).Return(nil)

		got, err := svc.Companies(ctx)
		require.NoError(t, err)
		assert.Equal(t, summaries, got)
	})

	t.Run("cache down falls through", func(t *testing.T) {
		svc, m := newEqualityService(t)
		m.cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("connection refused"))
		m.ratings.EXPECT().Summaries(gomock.Any()).Return(summaries, nil)
		m.cache.EXPECT().Set(gomock.Any(), summaries).Return(errors.New("connection refused"))

		got, err := svc.Companies(ctx)
		require.NoError(t, err)
		assert.Equal(t, summaries, got)
	})
}

func TestEqualityService_RateCompany(t *testing.T) {
	ctx := context.Background()
	valid := models.CompanyRating{UserID: 1, CompanyName: "Acme", SafetyRating: 4, PayEqualityRating: 3, CultureRating: 5}

	t.Run("out of range", func(t *testing.T) {
		svc, _ := newEqualityService(t)
		bad := valid
		bad.CultureRating = 6

		_, err := svc.RateCompany(ctx, bad)
		assert.ErrorIs(t, err, services.ErrInvalidRating)
	})

	t.Run("stored and cache invalidated", func(t *testing.T) {
		svc, m := newEqualityService(t)
		gomock.InOrder(
			m.ratings.EXPECT().Upsert(gomock.Any(), valid).Return(&models.CompanyRating{ID: 1, CompanyName: "Acme"}, nil),
			m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
		)

		saved, err := svc.RateCompany(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID)
	})
}

func TestEqualityService_Dashboard(t *testing.T) {
	svc, m := newEqualityService(t)

	m.stats.EXPECT().ListPayGaps(gomock.Any(), models.StatsFilter{}).Return([]models.PayGap{
		{Sector: "IT", Year: 2022, PayGapPercentage: 20},
		{Sector: "IT", Year: 2023, PayGapPercentage: 18},
		{Sector: "Healthcare", Year: 2023, PayGapPercentage: 25},
	}, nil)
	m.stats.EXPECT().ListLeadership(gomock.Any(), models.StatsFilter{}).Return([]models.LeadershipStat{
		{Sector: "IT", Year: 2023, WomenInLeadership: 30, TotalPositions: 100},
		{Sector: "Healthcare", Year: 2023, WomenInLeadership: 40, TotalPositions: 300},
		{Sector: "Healthcare", Year: 2021, WomenInLeadership: 10, TotalPositions: 1000},
	}, nil)
	m.cache.EXPECT().Get(gomock.Any()).Return([]models.CompanySummary{
		{Name: "A", TotalRatings: 1, AvgSafety: 1, AvgPayEquality: 1, AvgCulture: 1},
		{Name: "B", TotalRatings: 1, AvgSafety: 5, AvgPayEquality: 5, AvgCulture: 5},
		{Name: "C", TotalRatings: 1, AvgSafety: 3, AvgPayEquality: 3, AvgCulture: 3},
		{Name: "D", TotalRatings: 1, AvgSafety: 4, AvgPayEquality: 4, AvgCulture: 4},
		{Name: "E", TotalRatings: 1, AvgSafety: 2, AvgPayEquality: 2, AvgCulture: 2},
		{Name: "F", TotalRatings: 1, AvgSafety: 4.5, AvgPayEquality: 4.5, AvgCulture: 4.5},
	}, nil)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"IT": 18, "Healthcare": 25}, d.GenderPayGap.BySector)
	assert.Equal(t, 21.5, d.GenderPayGap.Overall)
	assert.Equal(t, map[string]float64{"IT": 30, "Healthcare": 40}, d.LeadershipDiversity.BySector)
	assert.Equal(t, 37.5, d.LeadershipDiversity.WomenInLeadership)

	require.Len(t, d.TopCompanies, 5)
	names := make([]string, len(d.TopCompanies))
	for i, c := range d.TopCompanies {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"B", "F", "D", "C", "E"}, names)
}

func TestEqualityService_DashboardSkipsUnratedCompanies(t *testing.T) {
	svc, m := newEqualityService(t)
	industry := "Technology"

	m.stats.EXPECT().ListPayGaps(gomock.Any(), models.StatsFilter{}).Return(nil, nil)
	m.stats.EXPECT().ListLeadership(gomock.Any(), models.StatsFilter{}).Return(nil, nil)
	m.cache.EXPECT().Get(gomock.Any()).Return([]models.CompanySummary{
		{Name: "Registered", Industry: &industry},
		{Name: "Rated", TotalRatings: 3, AvgSafety: 2, AvgPayEquality: 2, AvgCulture: 2},
	}, nil)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, d.TopCompanies, 1)
	assert.Equal(t, "Rated", d.TopCompanies[0].Name)
	assert.Zero(t, d.GenderPayGap.Overall)
}

func TestEqualityService_AddCompany(t *testing.T) {
	ctx := context.Background()
	employees := 250
	company := models.Company{Name: "Acme", Industry: "Technology", EmployeeCount: &employees, GenderEqualityScore: 72.5}

	t.Run("score out of range", func(t *testing.T) {
		svc, _ := newEqualityService(t)
		bad := company
		bad.GenderEqualityScore = 101

		_, err := svc.AddCompany(ctx, bad)
		assert.ErrorIs(t, err, services.ErrInvalidEqualityScore)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("name taken", func(t *testing.T) {
		svc, m := newEqualityService(t)
		m.ratings.EXPECT().CreateCompany(gomock.Any(), company).Return(nil, repositories.ErrUniqueViolation)

		_, err := svc.AddCompany(ctx, company)
		assert.ErrorIs(t, err, services.ErrCompanyExists)
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("created and cache invalidated", func(t *testing.T) {
		svc, m := newEqualityService(t)
		gomock.InOrder(
			m.ratings.EXPECT().CreateCompany(gomock.Any(), company).Return(&models.Company{ID: 9, Name: "Acme"}, nil),
			m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
		)

		created, err := svc.AddCompany(ctx, company)
		require.NoError(t, err)
		assert.Equal(t, int64(9), created.ID)
	})
}

func TestEqualityService_Stats(t *testing.T) {
	svc, m := newEqualityService(t)
	year := 2023
	f := models.StatsFilter{Sector: "IT", Year: &year}

	m.stats.EXPECT().ListPayGaps(gomock.Any(), f).Return([]models.PayGap{{Sector: "IT", Year: 2023}}, nil)
	m.stats.EXPECT().AddFeedback(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	gaps, err := svc.PayGaps(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, gaps, 1)

	assert.Error(t, svc.AddFeedback(context.Background(), models.Feedback{Name: "n", Email: "e@example.com", Message: "m"}))
}
