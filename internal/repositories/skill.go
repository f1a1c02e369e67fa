package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

const userSkillSelect = `
	SELECT us.id, us.user_id, us.skill_id, s.name AS skill_name, c.name AS category_name,
		us.skill_type, us.proficiency_level, us.description, us.availability,
		us.preferred_method, us.is_active, us.created_at
	FROM user_skills us
	JOIN skills s ON s.id = us.skill_id
	JOIN skill_categories c ON c.id = s.category_id
`

// SkillRepository stores the skill catalog, user declarations and per-user stats.
type SkillRepository struct {
	base
}

func NewSkillRepository(db *sqlx.DB, txGetter TxGetter) *SkillRepository {
	return &SkillRepository{base{db: db, txGetter: txGetter}}
}

// ListCategories returns every category with the number of skills it holds.
func (r *SkillRepository) ListCategories(ctx context.Context) ([]models.SkillCategory, error) {
	const query = `
		SELECT c.id, c.name, c.description, c.icon, COUNT(s.id) AS skills_count
		FROM skill_categories c
		LEFT JOIN skills s ON s.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`

	categories := []models.SkillCategory{}
	if err := r.selectAll(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

// Search matches skills by name substring, optionally within one category.
func (r *SkillRepository) Search(ctx context.Context, q string, categoryID *int64) ([]models.Skill, error) {
	const query = `
		SELECT s.id, s.category_id, c.name AS category_name, s.name, s.description
		FROM skills s
		JOIN skill_categories c ON c.id = s.category_id
		WHERE ($1::TEXT = '' OR s.name ILIKE '%' || $1 || '%')
		  AND ($2::BIGINT IS NULL OR s.category_id = $2)
		ORDER BY s.name
		LIMIT 50
	`

	skills := []models.Skill{}
	if err := r.selectAll(ctx, &skills, query, q, categoryID); err != nil {
		return nil, err
	}
	return skills, nil
}

// GetSkill returns the skill or nil when it does not exist.
func (r *SkillRepository) GetSkill(ctx context.Context, id int64) (*models.Skill, error) {
	const query = `
		SELECT s.id, s.category_id, c.name AS category_name, s.name, s.description
		FROM skills s
		JOIN skill_categories c ON c.id = s.category_id
		WHERE s.id = $1
	`

	var skill models.Skill
	found, err := r.get(ctx, &skill, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &skill, nil
}

// UpsertUserSkill adds a declaration or updates and reactivates the existing one
// for the same (user, skill, type). It returns the stored row id.
func (r *SkillRepository) UpsertUserSkill(ctx context.Context, us models.UserSkill) (int64, error) {
	const query = `
		INSERT INTO user_skills (user_id, skill_id, skill_type, proficiency_level, description, availability, preferred_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, skill_id, skill_type) DO UPDATE SET
			proficiency_level = EXCLUDED.proficiency_level,
			description = EXCLUDED.description,
			availability = EXCLUDED.availability,
			preferred_method = EXCLUDED.preferred_method,
			is_active = TRUE,
			updated_at = NOW()
		RETURNING id
	`

	var id int64
	_, err := r.get(ctx, &id, query,
		us.UserID, us.SkillID, us.SkillType, us.ProficiencyLevel, us.Description, us.Availability, us.PreferredMethod,
	)
	return id, err
}

// GetUserSkill returns the declaration or nil when it does not exist.
func (r *SkillRepository) GetUserSkill(ctx context.Context, id int64) (*models.UserSkill, error) {
	query := userSkillSelect + ` WHERE us.id = $1`

	var us models.UserSkill
	found, err := r.get(ctx, &us, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &us, nil
}

// ListUserSkills returns the user's active declarations, optionally of one type.
func (r *SkillRepository) ListUserSkills(ctx context.Context, userID int64, skillType string) ([]models.UserSkill, error) {
	query := userSkillSelect + `
		WHERE us.user_id = $1 AND us.is_active
		  AND ($2::TEXT = '' OR us.skill_type = $2)
		ORDER BY us.created_at DESC
	`

	skills := []models.UserSkill{}
	if err := r.selectAll(ctx, &skills, query, userID, skillType); err != nil {
		return nil, err
	}
	return skills, nil
}

// DeactivateUserSkill hides a declaration without deleting it.
func (r *SkillRepository) DeactivateUserSkill(ctx context.Context, id int64) error {
	_, err := r.exec(ctx, `UPDATE user_skills SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

// HasActiveTeach reports whether the user currently offers to teach the skill.
func (r *SkillRepository) HasActiveTeach(ctx context.Context, userID, skillID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM user_skills
			WHERE user_id = $1 AND skill_id = $2 AND skill_type = 'teach' AND is_active
		)
	`

	var exists bool
	_, err := r.get(ctx, &exists, query, userID, skillID)
	return exists, err
}

const browseWhere = `
	WHERE us.skill_type = 'teach' AND us.is_active
	  AND us.user_id <> $1
	  AND ($2::BIGINT IS NULL OR s.category_id = $2)
	  AND ($3::TEXT = '' OR s.name ILIKE '%' || $3 || '%')
	  AND ($4::TEXT = '' OR u.location ILIKE '%' || $4 || '%')
	  AND ($5::TEXT = '' OR us.preferred_method = $5 OR us.preferred_method = 'both')
`

// Browse lists active teach offers from other users and the total count.
func (r *SkillRepository) Browse(ctx context.Context, f models.BrowseFilter) ([]models.SkillOffer, int, error) {
	args := []any{f.ExcludeUserID, f.CategoryID, f.SkillName, f.Location, f.Method}

	countQuery := `
		SELECT COUNT(*)
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		JOIN users u ON u.id = us.user_id
	` + browseWhere

	var total int
	if _, err := r.get(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT us.id, us.user_id, us.skill_id, s.name AS skill_name, c.name AS category_name,
			us.skill_type, us.proficiency_level, us.description, us.availability,
			us.preferred_method, us.is_active, us.created_at,
			u.username, u.location,
			COALESCE(rt.average_rating, 0) AS average_rating,
			COALESCE(rt.total_ratings, 0) AS total_ratings
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		JOIN skill_categories c ON c.id = s.category_id
		JOIN users u ON u.id = us.user_id
		LEFT JOIN (
			SELECT rated_user_id, AVG(rating)::DOUBLE PRECISION AS average_rating, COUNT(*) AS total_ratings
			FROM skill_ratings
			GROUP BY rated_user_id
		) rt ON rt.rated_user_id = us.user_id
	` + browseWhere + `
		ORDER BY average_rating DESC, us.created_at DESC
		LIMIT $6 OFFSET $7
	`

	offers := []models.SkillOffer{}
	if err := r.selectAll(ctx, &offers, query, append(args, f.PerPage, (f.Page-1)*f.PerPage)...); err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

// Stats aggregates the user's declarations, matches, badges and ratings.
func (r *SkillRepository) Stats(ctx context.Context, userID int64) (*models.SkillStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM user_skills WHERE user_id = $1 AND skill_type = 'teach' AND is_active) AS teaching_skills,
			(SELECT COUNT(*) FROM user_skills WHERE user_id = $1 AND skill_type = 'learn' AND is_active) AS learning_skills,
			(SELECT COUNT(*) FROM skill_matches WHERE teacher_id = $1) AS matches_as_teacher,
			(SELECT COUNT(*) FROM skill_matches WHERE learner_id = $1) AS matches_as_learner,
			(SELECT COUNT(*) FROM skill_matches WHERE teacher_id = $1 AND status = 'pending') AS pending_requests,
			(SELECT COUNT(*) FROM skill_matches WHERE (teacher_id = $1 OR learner_id = $1) AND status = 'accepted') AS accepted_matches,
			(SELECT COUNT(*) FROM user_badges WHERE user_id = $1) AS badges_count,
			(SELECT COALESCE(AVG(rating), 0)::DOUBLE PRECISION FROM skill_ratings WHERE rated_user_id = $1) AS average_rating,
			(SELECT COUNT(*) FROM skill_ratings WHERE rated_user_id = $1) AS total_ratings
	`

	var stats models.SkillStats
	if _, err := r.get(ctx, &stats, query, userID); err != nil {
		return nil, err
	}
	return &stats, nil
}
