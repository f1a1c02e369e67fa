package services

//go:generate mockgen -source=skill.go -destination=skill_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/repositories"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50

	expertMinAverage = 4.5
	expertMinRatings = 5
)

// SkillStore defines the skill catalog and user declarations.
type SkillStore interface {
	ListCategories(ctx context.Context) ([]models.SkillCategory, error)
	Search(ctx context.Context, q string, categoryID *int64) ([]models.Skill, error)
	GetSkill(ctx context.Context, id int64) (*models.Skill, error)
	UpsertUserSkill(ctx context.Context, us models.UserSkill) (int64, error)
	GetUserSkill(ctx context.Context, id int64) (*models.UserSkill, error)
	ListUserSkills(ctx context.Context, userID int64, skillType string) ([]models.UserSkill, error)
	DeactivateUserSkill(ctx context.Context, id int64) error
	Browse(ctx context.Context, f models.BrowseFilter) ([]models.SkillOffer, int, error)
	Stats(ctx context.Context, userID int64) (*models.SkillStats, error)
}

// RatingStore defines skill rating persistence.
type RatingStore interface {
	Create(ctx context.Context, rt models.SkillRating) (*models.SkillRating, error)
	Summary(ctx context.Context, ratedUserID int64) (models.RatingSummary, error)
}

// MatchGetter loads a match request by id.
type MatchGetter interface {
	GetByID(ctx context.Context, id int64) (*models.SkillMatch, error)
}

// SkillService serves the skill catalog, declarations, browse, badges, stats and ratings.
type SkillService struct {
	skills  SkillStore
	badges  BadgeAwarder
	ratings RatingStore
	matches MatchGetter
}

// NewSkillService creates a new SkillService.
func NewSkillService(skills SkillStore, badges BadgeAwarder, ratings RatingStore, matches MatchGetter) *SkillService {
	return &SkillService{skills: skills, badges: badges, ratings: ratings, matches: matches}
}

// Categories lists categories with their skill counts.
func (s *SkillService) Categories(ctx context.Context) ([]models.SkillCategory, error) {
	categories, err := s.skills.ListCategories(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list skill categories", "error", err)
		return nil, err
	}
	return categories, nil
}

// Search finds skills by name, optionally within one category.
func (s *SkillService) Search(ctx context.Context, q string, categoryID *int64) ([]models.Skill, error) {
	skills, err := s.skills.Search(ctx, q, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to search skills", "q", q, "error", err)
		return nil, err
	}
	return skills, nil
}

// SaveUserSkill adds or updates a declaration, reactivating a removed one.
// The first declaration of each type earns a badge.
func (s *SkillService) SaveUserSkill(ctx context.Context, us models.UserSkill) (*models.UserSkill, error) {
	var badge string
	switch us.SkillType {
	case models.SkillTypeTeach:
		badge = models.BadgeFirstTeach
	case models.SkillTypeLearn:
		badge = models.BadgeFirstLearn
	default:
		return nil, ErrInvalidSkillType
	}

	skill, err := s.skills.GetSkill(ctx, us.SkillID)
	if err != nil {
		logger.Log.Errorw("failed to get skill", "skill_id", us.SkillID, "error", err)
		return nil, err
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}

	id, err := s.skills.UpsertUserSkill(ctx, us)
	if err != nil {
		logger.Log.Errorw("failed to save user skill", "user_id", us.UserID, "skill_id", us.SkillID, "error", err)
		return nil, err
	}

	if err := awardBadge(ctx, s.badges, us.UserID, badge); err != nil {
		return nil, err
	}

	saved, err := s.skills.GetUserSkill(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user skill", "id", id, "error", err)
		return nil, err
	}
	return saved, nil
}

// UserSkills lists the user's active declarations, optionally of one type.
func (s *SkillService) UserSkills(ctx context.Context, userID int64, skillType string) ([]models.UserSkill, error) {
	if skillType != "" && skillType != models.SkillTypeTeach && skillType != models.SkillTypeLearn {
		return nil, ErrInvalidSkillType
	}
	skills, err := s.skills.ListUserSkills(ctx, userID, skillType)
	if err != nil {
		logger.Log.Errorw("failed to list user skills", "user_id", userID, "error", err)
		return nil, err
	}
	return skills, nil
}

// RemoveUserSkill deactivates a declaration owned by actorID.
func (s *SkillService) RemoveUserSkill(ctx context.Context, actorID, id int64) error {
	us, err := s.skills.GetUserSkill(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user skill", "id", id, "error", err)
		return err
	}
	if us == nil {
		return ErrUserSkillNotFound
	}
	if us.UserID != actorID {
		return ErrNotSkillOwner
	}
	if err := s.skills.DeactivateUserSkill(ctx, id); err != nil {
		logger.Log.Errorw("failed to deactivate user skill", "id", id, "error", err)
		return err
	}
	return nil
}

// Browse pages through other users' teach offers.
func (s *SkillService) Browse(ctx context.Context, f models.BrowseFilter) (*models.SkillOfferPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = defaultPerPage
	}
	if f.PerPage > maxPerPage {
		f.PerPage = maxPerPage
	}

	offers, total, err := s.skills.Browse(ctx, f)
	if err != nil {
		logger.Log.Errorw("failed to browse skills", "error", err)
		return nil, err
	}

	return &models.SkillOfferPage{
		Offers:      offers,
		Total:       total,
		Pages:       pageCount(total, f.PerPage),
		CurrentPage: f.Page,
	}, nil
}

// Badges lists the user's badges.
func (s *SkillService) Badges(ctx context.Context, userID int64) ([]models.UserBadge, error) {
	badges, err := s.badges.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list badges", "user_id", userID, "error", err)
		return nil, err
	}
	return badges, nil
}

// Stats returns the user's skill exchange overview.
func (s *SkillService) Stats(ctx context.Context, userID int64) (*models.SkillStats, error) {
	stats, err := s.skills.Stats(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get skill stats", "user_id", userID, "error", err)
		return nil, err
	}
	return stats, nil
}

// Rate stores a 1 to 5 rating for an accepted or completed match between the
// rater and the rated user. Reaching the expert threshold earns the rated user a badge.
func (s *SkillService) Rate(ctx context.Context, rt models.SkillRating) (*models.SkillRating, error) {
	if rt.Rating < 1 || rt.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if rt.RaterID == rt.RatedUserID {
		return nil, ErrSelfRating
	}
	if rt.MatchID == nil {
		return nil, ErrRatingMatchRequired
	}

	match, err := s.matches.GetByID(ctx, *rt.MatchID)
	if err != nil {
		logger.Log.Errorw("failed to get match for rating", "match_id", *rt.MatchID, "error", err)
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if !isMatchPair(match, rt.RaterID, rt.RatedUserID) {
		return nil, ErrNotMatchParticipant
	}
	if match.Status != models.MatchStatusAccepted && match.Status != models.MatchStatusCompleted {
		return nil, ErrMatchNotRateable
	}
	rt.SkillID = match.SkillID

	created, err := s.ratings.Create(ctx, rt)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return nil, ErrDuplicateRating
	}
	if err != nil {
		logger.Log.Errorw("failed to save rating", "rater_id", rt.RaterID, "rated_user_id", rt.RatedUserID, "error", err)
		return nil, err
	}

	summary, err := s.ratings.Summary(ctx, rt.RatedUserID)
	if err != nil {
		logger.Log.Errorw("failed to summarise ratings", "user_id", rt.RatedUserID, "error", err)
		return nil, err
	}
	if summary.Total >= expertMinRatings && summary.Average >= expertMinAverage {
		if err := awardBadge(ctx, s.badges, rt.RatedUserID, models.BadgeExpert); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func isMatchPair(m *models.SkillMatch, a, b int64) bool {
	return (m.TeacherID == a && m.LearnerID == b) || (m.LearnerID == a && m.TeacherID == b)
}

func pageCount(total, perPage int) int {
	if total == 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
