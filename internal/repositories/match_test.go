package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAndBadgeRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	skills := NewSkillRepository(db, nil)
	matches := NewMatchRepository(db, nil)
	badges := NewBadgeRepository(db, nil)
	ratings := NewSkillRatingRepository(db, nil)

	teacherID := createUser(t, db, "teacher")
	learnerID := createUser(t, db, "learner")
	skillID := firstSkillID(t, db)

	_, err := skills.UpsertUserSkill(ctx, models.UserSkill{UserID: teacherID, SkillID: skillID, SkillType: models.SkillTypeTeach})
	require.NoError(t, err)

	t.Run("HasActiveTeach", func(t *testing.T) {
		ok, err := skills.HasActiveTeach(ctx, teacherID, skillID)
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = skills.HasActiveTeach(ctx, learnerID, skillID)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	m, err := matches.Create(ctx, teacherID, learnerID, skillID, "please")
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusPending, m.Status)
	assert.Equal(t, "teacher", m.TeacherName)

	t.Run("DuplicatePending", func(t *testing.T) {
		_, err := matches.Create(ctx, teacherID, learnerID, skillID, "again")
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("RespondOnce", func(t *testing.T) {
		accepted, err := matches.Respond(ctx, m.ID, models.MatchStatusAccepted, "sure", time.Now())
		require.NoError(t, err)
		require.NotNil(t, accepted)
		assert.Equal(t, models.MatchStatusAccepted, accepted.Status)

		again, err := matches.Respond(ctx, m.ID, models.MatchStatusRejected, "changed my mind", time.Now())
		assert.NoError(t, err)
		assert.Nil(t, again)

		got, err := matches.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "sure", *got.TeacherResponse)
	})

	t.Run("NewRequestAfterResponse", func(t *testing.T) {
		_, err := matches.Create(ctx, teacherID, learnerID, skillID, "one more")
		assert.NoError(t, err)

		received, err := matches.List(ctx, teacherID, true, models.MatchStatusPending)
		assert.NoError(t, err)
		assert.Len(t, received, 1)
	})

	t.Run("BadgeIdempotent", func(t *testing.T) {
		created, err := badges.Award(ctx, teacherID, models.BadgeMentor, "Mentor", "")
		assert.NoError(t, err)
		assert.True(t, created)

		created, err = badges.Award(ctx, teacherID, models.BadgeMentor, "Mentor", "")
		assert.NoError(t, err)
		assert.False(t, created)

		list, err := badges.ListByUser(ctx, teacherID)
		assert.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("RatingUniqueness", func(t *testing.T) {
		matchID := m.ID
		rt := models.SkillRating{RaterID: learnerID, RatedUserID: teacherID, SkillID: skillID, MatchID: &matchID, Rating: 5}
		_, err := ratings.Create(ctx, rt)
		require.NoError(t, err)
		_, err = ratings.Create(ctx, rt)
		assert.ErrorIs(t, err, ErrUniqueViolation)

		unmatched := models.SkillRating{RaterID: learnerID, RatedUserID: teacherID, SkillID: skillID, Rating: 5}
		_, err = ratings.Create(ctx, unmatched)
		require.NoError(t, err)
		_, err = ratings.Create(ctx, unmatched)
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("Stats", func(t *testing.T) {
		stats, err := skills.Stats(ctx, teacherID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TeachingSkills)
		assert.Equal(t, 2, stats.MatchesAsTeacher)
		assert.Equal(t, 1, stats.PendingRequests)
		assert.Equal(t, 1, stats.BadgesCount)
	})
}
