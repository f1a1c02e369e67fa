package services

//go:generate mockgen -source=equality.go -destination=equality_mock.go -package=services

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/repositories"
)

const dashboardTopCompanies = 5

// CompanyRatingStore defines company rating persistence.
type CompanyRatingStore interface {
	Upsert(ctx context.Context, cr models.CompanyRating) (*models.CompanyRating, error)
	Summaries(ctx context.Context) ([]models.CompanySummary, error)
	CreateCompany(ctx context.Context, c models.Company) (*models.Company, error)
}

// CompanySummaryCache caches the aggregated company ratings.
type CompanySummaryCache interface {
	Get(ctx context.Context) ([]models.CompanySummary, error)
	Set(ctx context.Context, summaries []models.CompanySummary) error
	Invalidate(ctx context.Context) error
}

// EqualityStatsStore defines the equality statistics tables.
type EqualityStatsStore interface {
	ListPayGaps(ctx context.Context, f models.StatsFilter) ([]models.PayGap, error)
	AddPayGap(ctx context.Context, p models.PayGap) error
	ListLeadership(ctx context.Context, f models.StatsFilter) ([]models.LeadershipStat, error)
	AddLeadership(ctx context.Context, l models.LeadershipStat) error
	ListFieldRatios(ctx context.Context, f models.StatsFilter) ([]models.FieldRatio, error)
	AddFieldRatio(ctx context.Context, fr models.FieldRatio) error
	ListFeedback(ctx context.Context, f models.StatsFilter) ([]models.Feedback, error)
	AddFeedback(ctx context.Context, fb models.Feedback) error
}

// EqualityService serves company ratings, equality statistics and the dashboard.
type EqualityService struct {
	ratings CompanyRatingStore
	cache   CompanySummaryCache
	stats   EqualityStatsStore
}

// NewEqualityService creates a new EqualityService.
func NewEqualityService(ratings CompanyRatingStore, cache CompanySummaryCache, stats EqualityStatsStore) *EqualityService {
	return &EqualityService{ratings: ratings, cache: cache, stats: stats}
}

// Companies returns per-company rating averages, served from cache when possible.
func (s *EqualityService) Companies(ctx context.Context) ([]models.CompanySummary, error) {
	cached, err := s.cache.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read company cache", "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	summaries, err := s.ratings.Summaries(ctx)
	if err != nil {
		logger.Log.Errorw("failed to aggregate company ratings", "error", err)
		return nil, err
	}

	if err := s.cache.Set(ctx, summaries); err != nil {
		logger.Log.Errorw("failed to cache company summaries", "error", err)
	}
	return summaries, nil
}

// RateCompany stores or replaces the user's rating of a company.
func (s *EqualityService) RateCompany(ctx context.Context, cr models.CompanyRating) (*models.CompanyRating, error) {
	for _, r := range []float64{cr.SafetyRating, cr.PayEqualityRating, cr.CultureRating} {
		if r < 1 || r > 5 {
			return nil, ErrInvalidRating
		}
	}

	saved, err := s.ratings.Upsert(ctx, cr)
	if err != nil {
		logger.Log.Errorw("failed to save company rating", "user_id", cr.UserID, "company", cr.CompanyName, "error", err)
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate company cache", "error", err)
	}
	return saved, nil
}

// AddCompany registers a company and drops the cached summaries.
func (s *EqualityService) AddCompany(ctx context.Context, c models.Company) (*models.Company, error) {
	if c.GenderEqualityScore < 0 || c.GenderEqualityScore > 100 {
		return nil, ErrInvalidEqualityScore
	}

	created, err := s.ratings.CreateCompany(ctx, c)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return nil, ErrCompanyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to add company", "company", c.Name, "error", err)
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate company cache", "error", err)
	}
	return created, nil
}

// Dashboard aggregates the latest pay gap and leadership figures per sector and the best rated companies.
func (s *EqualityService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	gaps, err := s.stats.ListPayGaps(ctx, models.StatsFilter{})
	if err != nil {
		logger.Log.Errorw("failed to list pay gaps", "error", err)
		return nil, err
	}
	leadership, err := s.stats.ListLeadership(ctx, models.StatsFilter{})
	if err != nil {
		logger.Log.Errorw("failed to list leadership stats", "error", err)
		return nil, err
	}
	companies, err := s.Companies(ctx)
	if err != nil {
		return nil, err
	}

	d := &models.Dashboard{}

	latestGap := map[string]models.PayGap{}
	for _, g := range gaps {
		if cur, ok := latestGap[g.Sector]; !ok || g.Year > cur.Year {
			latestGap[g.Sector] = g
		}
	}
	d.GenderPayGap.BySector = make(map[string]float64, len(latestGap))
	var gapSum float64
	for sector, g := range latestGap {
		d.GenderPayGap.BySector[sector] = g.PayGapPercentage
		gapSum += g.PayGapPercentage
	}
	if len(latestGap) > 0 {
		d.GenderPayGap.Overall = round1(gapSum / float64(len(latestGap)))
	}

	latestLead := map[string]models.LeadershipStat{}
	for _, l := range leadership {
		if cur, ok := latestLead[l.Sector]; !ok || l.Year > cur.Year {
			latestLead[l.Sector] = l
		}
	}
	d.LeadershipDiversity.BySector = make(map[string]float64, len(latestLead))
	var weighted float64
	var positions int
	for sector, l := range latestLead {
		d.LeadershipDiversity.BySector[sector] = l.WomenInLeadership
		weighted += l.WomenInLeadership * float64(l.TotalPositions)
		positions += l.TotalPositions
	}
	if positions > 0 {
		d.LeadershipDiversity.WomenInLeadership = round1(weighted / float64(positions))
	}

	top := make([]models.CompanySummary, 0, len(companies))
	for _, c := range companies {
		if c.TotalRatings > 0 {
			top = append(top, c)
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return overallScore(top[i]) > overallScore(top[j])
	})
	if len(top) > dashboardTopCompanies {
		top = top[:dashboardTopCompanies]
	}
	d.TopCompanies = top

	return d, nil
}

// PayGaps lists pay gap rows by sector and year.
func (s *EqualityService) PayGaps(ctx context.Context, f models.StatsFilter) ([]models.PayGap, error) {
	return logged(s.stats.ListPayGaps(ctx, f))
}

// AddPayGap stores a pay gap row.
func (s *EqualityService) AddPayGap(ctx context.Context, p models.PayGap) error {
	return loggedErr(s.stats.AddPayGap(ctx, p))
}

// Leadership lists leadership rows by sector and year.
func (s *EqualityService) Leadership(ctx context.Context, f models.StatsFilter) ([]models.LeadershipStat, error) {
	return logged(s.stats.ListLeadership(ctx, f))
}

// AddLeadership stores a leadership row.
func (s *EqualityService) AddLeadership(ctx context.Context, l models.LeadershipStat) error {
	return loggedErr(s.stats.AddLeadership(ctx, l))
}

// FieldRatios lists field ratio rows by field and year.
func (s *EqualityService) FieldRatios(ctx context.Context, f models.StatsFilter) ([]models.FieldRatio, error) {
	return logged(s.stats.ListFieldRatios(ctx, f))
}

// AddFieldRatio stores a field ratio row.
func (s *EqualityService) AddFieldRatio(ctx context.Context, fr models.FieldRatio) error {
	return loggedErr(s.stats.AddFieldRatio(ctx, fr))
}

// Feedback lists feedback by type.
func (s *EqualityService) Feedback(ctx context.Context, f models.StatsFilter) ([]models.Feedback, error) {
	return logged(s.stats.ListFeedback(ctx, f))
}

// AddFeedback stores a feedback message.
func (s *EqualityService) AddFeedback(ctx context.Context, fb models.Feedback) error {
	return loggedErr(s.stats.AddFeedback(ctx, fb))
}

func logged[T any](v T, err error) (T, error) {
	if err != nil {
		logger.Log.Errorw("equality statistics query failed", "error", err)
	}
	return v, err
}

func loggedErr(err error) error {
	if err != nil {
		logger.Log.Errorw("equality statistics write failed", "error", err)
	}
	return err
}

func overallScore(c models.CompanySummary) float64 {
	return (c.AvgSafety + c.AvgPayEquality + c.AvgCulture) / 3
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
