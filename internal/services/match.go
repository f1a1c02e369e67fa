package services

//go:generate mockgen -source=match.go -destination=match_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/repositories"
)

// Respond actions.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// Match list directions.
const (
	MatchListReceived = "received"
	MatchListSent     = "sent"
)

// MatchStore defines match request persistence.
type MatchStore interface {
	Create(ctx context.Context, teacherID, learnerID, skillID int64, message string) (*models.SkillMatch, error)
	GetByID(ctx context.Context, id int64) (*models.SkillMatch, error)
	Respond(ctx context.Context, id int64, status, response string, at time.Time) (*models.SkillMatch, error)
	List(ctx context.Context, userID int64, received bool, status string) ([]models.SkillMatch, error)
}

// TeachChecker reports whether a user actively teaches a skill.
type TeachChecker interface {
	HasActiveTeach(ctx context.Context, userID, skillID int64) (bool, error)
}

// MatchService runs the match request lifecycle: pending, then accepted or rejected once.
type MatchService struct {
	matches  MatchStore
	skills   TeachChecker
	users    UserReader
	badges   BadgeAwarder
	notifier Notifier
	events   EventPublisher
	now      func() time.Time
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	matches MatchStore,
	skills TeachChecker,
	users UserReader,
	badges BadgeAwarder,
	notifier Notifier,
	events EventPublisher,
) *MatchService {
	return &MatchService{
		matches:  matches,
		skills:   skills,
		users:    users,
		badges:   badges,
		notifier: notifier,
		events:   events,
		now:      time.Now,
	}
}

// Request asks a teacher for a skill on behalf of the learner and emails the teacher.
func (s *MatchService) Request(ctx context.Context, learnerID, teacherID, skillID int64, message string) (*models.SkillMatch, error) {
	if learnerID == teacherID {
		return nil, ErrSelfMatch
	}

	teaches, err := s.skills.HasActiveTeach(ctx, teacherID, skillID)
	if err != nil {
		logger.Log.Errorw("failed to check teacher skill", "teacher_id", teacherID, "skill_id", skillID, "error", err)
		return nil, err
	}
	if !teaches {
		logger.Log.Warnw("teacher does not offer skill", "teacher_id", teacherID, "skill_id", skillID)
		return nil, ErrTeacherDoesNotOfferSkill
	}

	match, err := s.matches.Create(ctx, teacherID, learnerID, skillID, message)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		logger.Log.Warnw("duplicate pending match request", "teacher_id", teacherID, "learner_id", learnerID, "skill_id", skillID)
		return nil, ErrDuplicateMatchRequest
	}
	if err != nil {
		logger.Log.Errorw("failed to create match request", "error", err)
		return nil, err
	}

	s.emailUser(ctx, teacherID, "New Skill Exchange Request",
		fmt.Sprintf("%s would like to learn %s from you.\n\nMessage: %s", match.LearnerName, match.SkillName, message))
	publishEvent(ctx, s.events, EventMatchRequested, learnerID, match.ID, map[string]any{
		"teacher_id": teacherID,
		"skill_id":   skillID,
	})

	return match, nil
}

// Respond accepts or rejects a pending request. Only the teacher may respond, and only once.
// Accepting awards the mentor and active learner badges in the caller's transaction.
func (s *MatchService) Respond(ctx context.Context, matchID, actorID int64, action, message string) (*models.SkillMatch, error) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		logger.Log.Errorw("failed to get match", "match_id", matchID, "error", err)
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if match.TeacherID != actorID {
		logger.Log.Warnw("match response by non-teacher", "match_id", matchID, "actor_id", actorID)
		return nil, ErrNotMatchTeacher
	}

	var status string
	switch action {
	case ActionAccept:
		status = models.MatchStatusAccepted
	case ActionReject:
		status = models.MatchStatusRejected
	default:
		return nil, ErrInvalidAction
	}

	if match.Status != models.MatchStatusPending {
		return nil, ErrMatchNotPending
	}

	updated, err := s.matches.Respond(ctx, matchID, status, message, s.now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to respond to match", "match_id", matchID, "error", err)
		return nil, err
	}
	if updated == nil {
		// Another response won the race.
		return nil, ErrMatchNotPending
	}

	eventType := EventMatchRejected
	if status == models.MatchStatusAccepted {
		if err := awardBadge(ctx, s.badges, updated.TeacherID, models.BadgeMentor); err != nil {
			return nil, err
		}
		if err := awardBadge(ctx, s.badges, updated.LearnerID, models.BadgeActiveLearner); err != nil {
			return nil, err
		}
		eventType = EventMatchAccepted
	}

	s.emailUser(ctx, updated.LearnerID, "Skill Exchange Request "+status,
		fmt.Sprintf("%s has %s your request to learn %s.\n\n%s", updated.TeacherName, status, updated.SkillName, message))
	publishEvent(ctx, s.events, eventType, actorID, updated.ID, map[string]any{
		"learner_id": updated.LearnerID,
		"skill_id":   updated.SkillID,
	})

	return updated, nil
}

// List returns requests the user received as teacher or sent as learner, optionally by status.
func (s *MatchService) List(ctx context.Context, userID int64, direction, status string) ([]models.SkillMatch, error) {
	var received bool
	switch direction {
	case "", MatchListReceived:
		received = true
	case MatchListSent:
		received = false
	default:
		return nil, ErrInvalidMatchListType
	}

	matches, err := s.matches.List(ctx, userID, received, status)
	if err != nil {
		logger.Log.Errorw("failed to list matches", "user_id", userID, "error", err)
		return nil, err
	}
	return matches, nil
}

func (s *MatchService) emailUser(ctx context.Context, userID int64, subject, body string) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		logger.Log.Errorw("failed to load email recipient", "user_id", userID, "error", err)
		return
	}
	sendEmail(ctx, s.notifier, user.Email, subject, body)
}
