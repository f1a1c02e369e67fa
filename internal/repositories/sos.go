package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

const sosColumns = `id, user_id, latitude, longitude, created_at, ended_at`

// SOSRepository stores emergency alerts.
type SOSRepository struct {
	base
}

func NewSOSRepository(db *sqlx.DB) *SOSRepository {
	return &SOSRepository{base{db: db}}
}

// Create inserts a new active alert.
func (r *SOSRepository) Create(ctx context.Context, userID int64, lat, lon *float64) (*models.SOSLog, error) {
	query := `
		INSERT INTO sos_logs (user_id, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING ` + sosColumns

	var log models.SOSLog
	if _, err := r.get(ctx, &log, query, userID, lat, lon); err != nil {
		return nil, err
	}
	return &log, nil
}

// GetByID returns the alert or nil when it does not exist.
func (r *SOSRepository) GetByID(ctx context.Context, id int64) (*models.SOSLog, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_logs WHERE id = $1`

	var log models.SOSLog
	found, err := r.get(ctx, &log, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &log, nil
}

// UpdateLocation overwrites the coordinates of an active alert. Returns nil when
// the alert does not exist or has already ended.
func (r *SOSRepository) UpdateLocation(ctx context.Context, id int64, lat, lon float64) (*models.SOSLog, error) {
	query := `
		UPDATE sos_logs SET latitude = $2, longitude = $3
		WHERE id = $1 AND ended_at IS NULL
		RETURNING ` + sosColumns

	var log models.SOSLog
	found, err := r.get(ctx, &log, query, id, lat, lon)
	if err != nil || !found {
		return nil, err
	}
	return &log, nil
}

// Stop sets the end timestamp. Returns nil when the alert does not exist.
func (r *SOSRepository) Stop(ctx context.Context, id int64, endedAt time.Time) (*models.SOSLog, error) {
	query := `
		UPDATE sos_logs SET ended_at = $2
		WHERE id = $1
		RETURNING ` + sosColumns

	var log models.SOSLog
	found, err := r.get(ctx, &log, query, id, endedAt)
	if err != nil || !found {
		return nil, err
	}
	return &log, nil
}

// GetActiveByUser returns the most recent alert without an end timestamp, or nil.
func (r *SOSRepository) GetActiveByUser(ctx context.Context, userID int64) (*models.SOSLog, error) {
	query := `
		SELECT ` + sosColumns + `
		FROM sos_logs
		WHERE user_id = $1 AND ended_at IS NULL
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var log models.SOSLog
	found, err := r.get(ctx, &log, query, userID)
	if err != nil || !found {
		return nil, err
	}
	return &log, nil
}
