package services

//go:generate mockgen -source=badge.go -destination=badge_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

// BadgeAwarder stores badges. Award is a no-op for a badge the user already holds.
type BadgeAwarder interface {
	Award(ctx context.Context, userID int64, badgeType, name, description string) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]models.UserBadge, error)
}

type badgeInfo struct {
	name        string
	description string
}

var badgeCatalog = map[string]badgeInfo{
	models.BadgeMentor:        {"Mentor", "Accepted a learner for the first time"},
	models.BadgeActiveLearner: {"Active Learner", "Started learning a new skill"},
	models.BadgeFirstTeach:    {"First Steps as Teacher", "Offered a skill to teach"},
	models.BadgeFirstLearn:    {"Curious Mind", "Added a skill to learn"},
	models.BadgeExpert:        {"Expert", "Average rating of 4.5 or more over at least 5 reviews"},
}

// awardBadge grants a catalog badge. Repeated awards are silent.
func awardBadge(ctx context.Context, badges BadgeAwarder, userID int64, badgeType string) error {
	info := badgeCatalog[badgeType]
	created, err := badges.Award(ctx, userID, badgeType, info.name, info.description)
	if err != nil {
		logger.Log.Errorw("failed to award badge", "user_id", userID, "badge", badgeType, "error", err)
		return err
	}
	if created {
		logger.Log.Infow("badge awarded", "user_id", userID, "badge", badgeType)
	}
	return nil
}
