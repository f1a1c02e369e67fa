package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

const matchSelect = `
	SELECT m.id, m.teacher_id, m.learner_id, m.skill_id, m.status, m.message, m.teacher_response,
		m.created_at, m.responded_at, s.name AS skill_name,
		t.username AS teacher_name, l.username AS learner_name
	FROM skill_matches m
	JOIN skills s ON s.id = m.skill_id
	JOIN users t ON t.id = m.teacher_id
	JOIN users l ON l.id = m.learner_id
`

// MatchRepository stores skill match requests.
type MatchRepository struct {
	base
}

func NewMatchRepository(db *sqlx.DB, txGetter TxGetter) *MatchRepository {
	return &MatchRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts a pending request. Returns ErrUniqueViolation when an identical
// request is already pending.
func (r *MatchRepository) Create(ctx context.Context, teacherID, learnerID, skillID int64, message string) (*models.SkillMatch, error) {
	const query = `
		INSERT INTO skill_matches (teacher_id, learner_id, skill_id, status, message)
		VALUES ($1, $2, $3, 'pending', $4)
		RETURNING id
	`

	var id int64
	if _, err := r.get(ctx, &id, query, teacherID, learnerID, skillID, message); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// GetByID returns the match or nil when it does not exist.
func (r *MatchRepository) GetByID(ctx context.Context, id int64) (*models.SkillMatch, error) {
	query := matchSelect + ` WHERE m.id = $1`

	var m models.SkillMatch
	found, err := r.get(ctx, &m, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &m, nil
}

// Respond moves a pending match to status. Returns nil when the match is no
// longer pending, leaving it untouched.
func (r *MatchRepository) Respond(ctx context.Context, id int64, status, response string, at time.Time) (*models.SkillMatch, error) {
	const query = `
		UPDATE skill_matches SET status = $2, teacher_response = $3, responded_at = $4
		WHERE id = $1 AND status = 'pending'
	`

	n, err := r.exec(ctx, query, id, status, response, at)
	if err != nil || n == 0 {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// List returns matches where the user is the teacher (received) or the learner
// (sent), optionally filtered by status.
func (r *MatchRepository) List(ctx context.Context, userID int64, received bool, status string) ([]models.SkillMatch, error) {
	column := "m.learner_id"
	if received {
		column = "m.teacher_id"
	}
	query := matchSelect + `
		WHERE ` + column + ` = $1 AND ($2::TEXT = '' OR m.status = $2)
		ORDER BY m.created_at DESC, m.id DESC
	`

	matches := []models.SkillMatch{}
	if err := r.selectAll(ctx, &matches, query, userID, status); err != nil {
		return nil, err
	}
	return matches, nil
}

// BadgeRepository stores user badges.
type BadgeRepository struct {
	base
}

func NewBadgeRepository(db *sqlx.DB, txGetter TxGetter) *BadgeRepository {
	return &BadgeRepository{base{db: db, txGetter: txGetter}}
}

// Award inserts the badge unless the user already holds one of that type.
// It reports whether a row was created.
func (r *BadgeRepository) Award(ctx context.Context, userID int64, badgeType, name, description string) (bool, error) {
	const query = `
		INSERT INTO user_badges (user_id, badge_type, badge_name, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, badge_type) DO NOTHING
	`
	n, err := r.exec(ctx, query, userID, badgeType, name, description)
	return n > 0, err
}

// ListByUser returns the user's badges, oldest first.
func (r *BadgeRepository) ListByUser(ctx context.Context, userID int64) ([]models.UserBadge, error) {
	const query = `
		SELECT id, user_id, badge_type, badge_name, description, earned_at
		FROM user_badges
		WHERE user_id = $1
		ORDER BY earned_at, id
	`

	badges := []models.UserBadge{}
	if err := r.selectAll(ctx, &badges, query, userID); err != nil {
		return nil, err
	}
	return badges, nil
}

// SkillRatingRepository stores ratings between skill exchange users.
type SkillRatingRepository struct {
	base
}

func NewSkillRatingRepository(db *sqlx.DB, txGetter TxGetter) *SkillRatingRepository {
	return &SkillRatingRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts a rating. Returns ErrUniqueViolation when the rater already
// rated the same match, or the same user and skill without a match.
func (r *SkillRatingRepository) Create(ctx context.Context, rt models.SkillRating) (*models.SkillRating, error) {
	const query = `
		INSERT INTO skill_ratings (rater_id, rated_user_id, skill_id, match_id, rating, review)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, rater_id, rated_user_id, skill_id, match_id, rating, review, created_at
	`

	var created models.SkillRating
	if _, err := r.get(ctx, &created, query, rt.RaterID, rt.RatedUserID, rt.SkillID, rt.MatchID, rt.Rating, rt.Review); err != nil {
		return nil, err
	}
	return &created, nil
}

// Summary returns the average and count of ratings the user received.
func (r *SkillRatingRepository) Summary(ctx context.Context, ratedUserID int64) (models.RatingSummary, error) {
	const query = `
		SELECT COALESCE(AVG(rating), 0)::DOUBLE PRECISION AS average_rating, COUNT(*) AS total_ratings
		FROM skill_ratings
		WHERE rated_user_id = $1
	`

	var s models.RatingSummary
	_, err := r.get(ctx, &s, query, ratedUserID)
	return s, err
}
