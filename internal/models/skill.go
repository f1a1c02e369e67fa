package models

import "time"

// Skill declaration types.
const (
	SkillTypeTeach = "teach"
	SkillTypeLearn = "learn"
)

// Match statuses.
const (
	MatchStatusPending   = "pending"
	MatchStatusAccepted  = "accepted"
	MatchStatusRejected  = "rejected"
	MatchStatusCompleted = "completed"
)

// Badge types.
const (
	BadgeMentor        = "mentor"
	BadgeActiveLearner = "active_learner"
	BadgeFirstTeach    = "first_teach"
	BadgeFirstLearn    = "first_learn"
	BadgeExpert        = "expert"
)

// SkillCategory groups skills.
type SkillCategory struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Icon        string `json:"icon" db:"icon"`
	SkillsCount int    `json:"skills_count" db:"skills_count"`
}

// Skill belongs to exactly one category.
type Skill struct {
	ID           int64  `json:"id" db:"id"`
	CategoryID   int64  `json:"category_id" db:"category_id"`
	CategoryName string `json:"category_name" db:"category_name"`
	Name         string `json:"name" db:"name"`
	Description  string `json:"description" db:"description"`
}

// UserSkill is a teach or learn declaration.
type UserSkill struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	SkillID          int64     `json:"skill_id" db:"skill_id"`
	SkillName        string    `json:"skill_name" db:"skill_name"`
	CategoryName     string    `json:"category_name" db:"category_name"`
	SkillType        string    `json:"skill_type" db:"skill_type"`
	ProficiencyLevel string    `json:"proficiency_level" db:"proficiency_level"`
	Description      string    `json:"description" db:"description"`
	Availability     string    `json:"availability" db:"availability"`
	PreferredMethod  string    `json:"preferred_method" db:"preferred_method"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// SkillOffer is an active teach declaration shown in browse results.
type SkillOffer struct {
	UserSkill
	Username      string  `json:"username" db:"username"`
	UserLocation  *string `json:"location" db:"location"`
	AverageRating float64 `json:"average_rating" db:"average_rating"`
	TotalRatings  int     `json:"total_ratings" db:"total_ratings"`
}

// BrowseFilter narrows the skill offers listing.
type BrowseFilter struct {
	CategoryID    *int64
	SkillName     string
	Location      string
	Method        string
	Page          int
	PerPage       int
	ExcludeUserID int64
}

// SkillOfferPage is one page of browse results.
type SkillOfferPage struct {
	Offers      []SkillOffer `json:"skills"`
	Total       int          `json:"total"`
	Pages       int          `json:"pages"`
	CurrentPage int          `json:"current_page"`
}

// SkillMatch is a learner's request to a teacher for one skill.
type SkillMatch struct {
	ID              int64      `json:"id" db:"id"`
	TeacherID       int64      `json:"teacher_id" db:"teacher_id"`
	LearnerID       int64      `json:"learner_id" db:"learner_id"`
	SkillID         int64      `json:"skill_id" db:"skill_id"`
	Status          string     `json:"status" db:"status"`
	Message         string     `json:"message" db:"message"`
	TeacherResponse *string    `json:"teacher_response" db:"teacher_response"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	RespondedAt     *time.Time `json:"responded_at" db:"responded_at"`
	SkillName       string     `json:"skill_name" db:"skill_name"`
	TeacherName     string     `json:"teacher_name" db:"teacher_name"`
	LearnerName     string     `json:"learner_name" db:"learner_name"`
}

// UserBadge is an achievement; a user holds at most one per badge type.
type UserBadge struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	BadgeType   string    `json:"badge_type" db:"badge_type"`
	BadgeName   string    `json:"badge_name" db:"badge_name"`
	Description string    `json:"description" db:"description"`
	EarnedAt    time.Time `json:"earned_at" db:"earned_at"`
}

// SkillRating is a learner's review of a teacher.
type SkillRating struct {
	ID          int64     `json:"id" db:"id"`
	RaterID     int64     `json:"rater_id" db:"rater_id"`
	RatedUserID int64     `json:"rated_user_id" db:"rated_user_id"`
	SkillID     int64     `json:"skill_id" db:"skill_id"`
	MatchID     *int64    `json:"match_id" db:"match_id"`
	Rating      int       `json:"rating" db:"rating"`
	Review      string    `json:"review" db:"review"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RatingSummary aggregates the ratings a user received.
type RatingSummary struct {
	Average float64 `json:"average_rating" db:"average_rating"`
	Total   int     `json:"total_ratings" db:"total_ratings"`
}

// SkillStats is the per-user skill exchange overview.
type SkillStats struct {
	TeachingSkills   int     `json:"teaching_skills" db:"teaching_skills"`
	LearningSkills   int     `json:"learning_skills" db:"learning_skills"`
	MatchesAsTeacher int     `json:"matches_as_teacher" db:"matches_as_teacher"`
	MatchesAsLearner int     `json:"matches_as_learner" db:"matches_as_learner"`
	PendingRequests  int     `json:"pending_requests" db:"pending_requests"`
	AcceptedMatches  int     `json:"accepted_matches" db:"accepted_matches"`
	BadgesCount      int     `json:"badges_count" db:"badges_count"`
	AverageRating    float64 `json:"average_rating" db:"average_rating"`
	TotalRatings     int     `json:"total_ratings" db:"total_ratings"`
}
