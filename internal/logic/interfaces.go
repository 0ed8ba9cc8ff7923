package logic

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/rankedlab/forecast-api/internal/models"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// AuditQueue defines the interface for the prediction audit worker pool
type AuditQueue interface {
	Enqueue(event *models.PredictionEvent) bool
	QueueDepth() int
}

// RecordService manages stored match records
type RecordService interface {
	ListRecords(ctx context.Context) ([]models.MatchRecord, error)
	ListUserRecords(ctx context.Context, userID int64) ([]models.MatchRecord, error)
	CreateRecord(ctx context.Context, record *models.MatchRecord) error
	DeleteRecord(ctx context.Context, id int64, ownerID *int64) error
}

// PredictionService produces personalized forecasts and backtests
type PredictionService interface {
	Predict(ctx context.Context, cond models.PredictionCondition, targetUserID *int64) (*models.PersonalizedPrediction, error)
	Backtest(ctx context.Context, userID int64, warmup, limit int) (*models.BacktestReport, error)
}
