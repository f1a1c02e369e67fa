package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

// CompanyRatingRepository stores company ratings.
type CompanyRatingRepository struct {
	base
}

func NewCompanyRatingRepository(db *sqlx.DB) *CompanyRatingRepository {
	return &CompanyRatingRepository{base{db: db}}
}

// Upsert stores the user's rating of a company, replacing an earlier one.
func (r *CompanyRatingRepository) Upsert(ctx context.Context, cr models.CompanyRating) (*models.CompanyRating, error) {
	const query = `
		INSERT INTO company_ratings (user_id, company_name, safety_rating, pay_equality_rating, culture_rating, comment, is_anonymous)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, company_name) DO UPDATE SET
			safety_rating = EXCLUDED.safety_rating,
			pay_equality_rating = EXCLUDED.pay_equality_rating,
			culture_rating = EXCLUDED.culture_rating,
			comment = EXCLUDED.comment,
			is_anonymous = EXCLUDED.is_anonymous,
			created_at = NOW()
		RETURNING id, user_id, company_name, safety_rating, pay_equality_rating, culture_rating, comment, is_anonymous, created_at
	`

	var stored models.CompanyRating
	if _, err := r.get(ctx, &stored, query,
		cr.UserID, cr.CompanyName, cr.SafetyRating, cr.PayEqualityRating, cr.CultureRating, cr.Comment, cr.IsAnonymous,
	); err != nil {
		return nil, err
	}
	return &stored, nil
}

// CreateCompany registers a company. Returns ErrUniqueViolation when the name is taken.
func (r *CompanyRatingRepository) CreateCompany(ctx context.Context, c models.Company) (*models.Company, error) {
	const query = `
		INSERT INTO companies (name, industry, employee_count, gender_equality_score)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, industry, employee_count, gender_equality_score, created_at
	`

	var created models.Company
	if _, err := r.get(ctx, &created, query, c.Name, c.Industry, c.EmployeeCount, c.GenderEqualityScore); err != nil {
		return nil, err
	}
	return &created, nil
}

// Summaries aggregates ratings per company. Registered companies without
// ratings are listed with zero averages.
func (r *CompanyRatingRepository) Summaries(ctx context.Context) ([]models.CompanySummary, error) {
	const query = `
		WITH agg AS (
			SELECT company_name,
				COUNT(*) AS total_ratings,
				AVG(safety_rating)::DOUBLE PRECISION AS avg_safety,
				AVG(pay_equality_rating)::DOUBLE PRECISION AS avg_pay_equality,
				AVG(culture_rating)::DOUBLE PRECISION AS avg_culture
			FROM company_ratings
			GROUP BY company_name
		)
		SELECT COALESCE(c.name, a.company_name) AS company_name,
			c.industry, c.employee_count, c.gender_equality_score,
			COALESCE(a.total_ratings, 0) AS total_ratings,
			COALESCE(a.avg_safety, 0) AS avg_safety,
			COALESCE(a.avg_pay_equality, 0) AS avg_pay_equality,
			COALESCE(a.avg_culture, 0) AS avg_culture
		FROM agg a
		FULL OUTER JOIN companies c ON c.name = a.company_name
		ORDER BY 1
	`

	summaries := []models.CompanySummary{}
	if err := r.selectAll(ctx, &summaries, query); err != nil {
		return nil, err
	}
	return summaries, nil
}

// EqualityStatsRepository stores pay gap, leadership, field ratio and feedback records.
type EqualityStatsRepository struct {
	base
}

func NewEqualityStatsRepository(db *sqlx.DB) *EqualityStatsRepository {
	return &EqualityStatsRepository{base{db: db}}
}

func (r *EqualityStatsRepository) ListPayGaps(ctx context.Context, f models.StatsFilter) ([]models.PayGap, error) {
	const query = `
		SELECT id, sector, year, pay_gap_percentage, created_at
		FROM pay_gaps
		WHERE ($1::TEXT = '' OR sector = $1) AND ($2::INT IS NULL OR year = $2)
		ORDER BY year DESC, sector
	`

	rows := []models.PayGap{}
	if err := r.selectAll(ctx, &rows, query, f.Sector, f.Year); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EqualityStatsRepository) AddPayGap(ctx context.Context, p models.PayGap) error {
	_, err := r.exec(ctx,
		`INSERT INTO pay_gaps (sector, year, pay_gap_percentage) VALUES ($1, $2, $3)`,
		p.Sector, p.Year, p.PayGapPercentage,
	)
	return err
}

func (r *EqualityStatsRepository) ListLeadership(ctx context.Context, f models.StatsFilter) ([]models.LeadershipStat, error) {
	const query = `
		SELECT id, sector, year, women_in_leadership, total_positions, created_at
		FROM leadership_stats
		WHERE ($1::TEXT = '' OR sector = $1) AND ($2::INT IS NULL OR year = $2)
		ORDER BY year DESC, sector
	`

	rows := []models.LeadershipStat{}
	if err := r.selectAll(ctx, &rows, query, f.Sector, f.Year); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EqualityStatsRepository) AddLeadership(ctx context.Context, l models.LeadershipStat) error {
	_, err := r.exec(ctx,
		`INSERT INTO leadership_stats (sector, year, women_in_leadership, total_positions) VALUES ($1, $2, $3, $4)`,
		l.Sector, l.Year, l.WomenInLeadership, l.TotalPositions,
	)
	return err
}

func (r *EqualityStatsRepository) ListFieldRatios(ctx context.Context, f models.StatsFilter) ([]models.FieldRatio, error) {
	const query = `
		SELECT id, field_name, women_count, men_count, year, created_at
		FROM field_ratios
		WHERE ($1::TEXT = '' OR field_name = $1) AND ($2::INT IS NULL OR year = $2)
		ORDER BY year DESC, field_name
	`

	rows := []models.FieldRatio{}
	if err := r.selectAll(ctx, &rows, query, f.Field, f.Year); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EqualityStatsRepository) AddFieldRatio(ctx context.Context, fr models.FieldRatio) error {
	_, err := r.exec(ctx,
		`INSERT INTO field_ratios (field_name, women_count, men_count, year) VALUES ($1, $2, $3, $4)`,
		fr.FieldName, fr.WomenCount, fr.MenCount, fr.Year,
	)
	return err
}

func (r *EqualityStatsRepository) ListFeedback(ctx context.Context, f models.StatsFilter) ([]models.Feedback, error) {
	const query = `
		SELECT id, name, email, feedback_type, message, created_at
		FROM feedback
		WHERE ($1::TEXT = '' OR feedback_type = $1)
		ORDER BY created_at DESC
	`

	rows := []models.Feedback{}
	if err := r.selectAll(ctx, &rows, query, f.Type); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EqualityStatsRepository) AddFeedback(ctx context.Context, fb models.Feedback) error {
	_, err := r.exec(ctx,
		`INSERT INTO feedback (name, email, feedback_type, message) VALUES ($1, $2, $3, $4)`,
		fb.Name, fb.Email, fb.FeedbackType, fb.Message,
	)
	return err
}

// SchemeRepository reads government schemes.
type SchemeRepository struct {
	base
}

func NewSchemeRepository(db *sqlx.DB) *SchemeRepository {
	return &SchemeRepository{base{db: db}}
}

// List filters schemes by location substring and exact category. Empty filters match all.
func (r *SchemeRepository) List(ctx context.Context, location, category string) ([]models.GovernmentScheme, error) {
	const query = `
		SELECT id, name, description, eligibility, application_process, contact_info, location, category
		FROM government_schemes
		WHERE ($1::TEXT = '' OR location ILIKE '%' || $1 || '%')
		  AND ($2::TEXT = '' OR category = $2)
		ORDER BY name
	`

	schemes := []models.GovernmentScheme{}
	if err := r.selectAll(ctx, &schemes, query, location, category); err != nil {
		return nil, err
	}
	return schemes, nil
}
