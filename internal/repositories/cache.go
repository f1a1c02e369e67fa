package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

const companySummariesKey = "equality:companies"

// CompanySummaryCacheRepository caches aggregated company ratings in Redis
type CompanySummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached aggregates
}

func NewCompanySummaryCacheRepository(client *redis.Client, expiration time.Duration) *CompanySummaryCacheRepository {
	return &CompanySummaryCacheRepository{client: client, exp: expiration}
}

// Get returns the cached aggregates, or nil on a cache miss.
func (r *CompanySummaryCacheRepository) Get(ctx context.Context) ([]models.CompanySummary, error) {
	val, err := r.client.Get(ctx, companySummariesKey).Bytes()
	logger.Log.Infow("cache get", "key", companySummariesKey, "size", len(val), "error", err)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summaries []models.CompanySummary
	if err := json.Unmarshal(val, &summaries); err != nil {
		return nil, fmt.Errorf("decode cached company summaries: %w", err)
	}
	return summaries, nil
}

// Set caches the aggregates until expiration.
func (r *CompanySummaryCacheRepository) Set(ctx context.Context, summaries []models.CompanySummary) error {
	data, err := json.Marshal(summaries)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, companySummariesKey, data, r.exp).Err()
	logger.Log.Infow("cache set", "key", companySummariesKey, "count", len(summaries), "error", err)
	return err
}

// Invalidate drops the cached aggregates.
func (r *CompanySummaryCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, companySummariesKey).Err()
	logger.Log.Infow("cache del", "key", companySummariesKey, "error", err)
	return err
}

// ResetTokenRepository keeps password reset tokens in Redis with a TTL
type ResetTokenRepository struct {
	client *redis.Client
}

func NewResetTokenRepository(client *redis.Client) *ResetTokenRepository {
	return &ResetTokenRepository{client: client}
}

func resetTokenKey(token string) string {
	return fmt.Sprintf("password_reset:%s", token)
}

// Save binds the token to the user until ttl elapses.
func (r *ResetTokenRepository) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	err := r.client.Set(ctx, resetTokenKey(token), strconv.FormatInt(userID, 10), ttl).Err()
	logger.Log.Infow("reset token saved", "user_id", userID, "ttl", ttl, "error", err)
	return err
}

// Get returns the user bound to the token, or 0 when the token is unknown or expired.
func (r *ResetTokenRepository) Get(ctx context.Context, token string) (int64, error) {
	val, err := r.client.Get(ctx, resetTokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		logger.Log.Errorw("reset token lookup failed", "error", err)
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// Delete consumes the token.
func (r *ResetTokenRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, resetTokenKey(token)).Err()
}
