package logic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rankedlab/forecast-api/internal/engine"
	"github.com/rankedlab/forecast-api/internal/models"
)

type predictionService struct {
	records  RecordService
	redis    RedisClient
	audit    AuditQueue
	params   engine.Params
	cacheTTL time.Duration
	logger   *zap.SugaredLogger
}

// NewPredictionService wires the estimator to the record store, the Redis
// response cache, and the audit queue. redis and audit may be nil; both are
// best-effort and the service degrades to plain recompute without them.
func NewPredictionService(records RecordService, redis RedisClient, audit AuditQueue, params engine.Params, cacheTTL time.Duration, logger *zap.SugaredLogger) PredictionService {
	return &predictionService{
		records:  records,
		redis:    redis,
		audit:    audit,
		params:   params,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *predictionService) Predict(ctx context.Context, cond models.PredictionCondition, targetUserID *int64) (*models.PersonalizedPrediction, error) {
	key := predictionCacheKey(cond, targetUserID)

	if cached := s.cachedPrediction(ctx, key); cached != nil {
		s.logAudit(cond, targetUserID, cached, 0, true)
		return cached, nil
	}

	records, err := s.records.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load training records: %w", err)
	}

	pred := engine.Predict(records, cond, targetUserID, s.params)

	s.storePrediction(ctx, key, pred)
	s.logAudit(cond, targetUserID, pred, len(records), false)

	return pred, nil
}

func (s *predictionService) Backtest(ctx context.Context, userID int64, warmup, limit int) (*models.BacktestReport, error) {
	records, err := s.records.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load training records: %w", err)
	}
	return engine.RunBacktest(records, userID, warmup, limit, s.params)
}

func (s *predictionService) cachedPrediction(ctx context.Context, key string) *models.PersonalizedPrediction {
	if s.redis == nil {
		return nil
	}
	raw, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var pred models.PersonalizedPrediction
	if err := json.Unmarshal([]byte(raw), &pred); err != nil {
		s.logger.Warnw("Corrupt cached prediction", "key", key, "error", err)
		return nil
	}
	return &pred
}

func (s *predictionService) storePrediction(ctx context.Context, key string, pred *models.PersonalizedPrediction) {
	if s.redis == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(pred)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warnw("Failed to cache prediction", "key", key, "error", err)
	}
}

func (s *predictionService) logAudit(cond models.PredictionCondition, targetUserID *int64, pred *models.PersonalizedPrediction, trainingSize int, cacheHit bool) {
	if s.audit == nil {
		return
	}

	event := &models.PredictionEvent{
		ID:            uuid.NewString(),
		Mode:          cond.Mode,
		MapOne:        cond.MapOne,
		MapTwo:        cond.MapTwo,
		Weapon:        cond.Weapon,
		Fatigue:       cond.Fatigue,
		Irritability:  cond.Irritability,
		Concentration: cond.Concentration,
		StartXP:       cond.StartXP,
		WinRate:       pred.WinRate,
		XPDelta:       pred.XPDelta,
		Recommend:     pred.Recommend,
		TrainingSize:  trainingSize,
		CacheHit:      cacheHit,
		CreatedAt:     time.Now().UTC(),
	}
	if targetUserID != nil {
		event.UserID = *targetUserID
	}

	if !s.audit.Enqueue(event) {
		s.logger.Warnw("Audit queue rejected prediction event", "id", event.ID)
	}
}

// predictionCacheKey hashes the condition and target user into a stable
// cache key.
func predictionCacheKey(cond models.PredictionCondition, targetUserID *int64) string {
	user := int64(0)
	if targetUserID != nil {
		user = *targetUserID
	}
	payload := fmt.Sprintf("%d|%s|%s|%s|%s|%d|%d|%d|%d",
		user, cond.Mode, cond.MapOne, cond.MapTwo, cond.Weapon,
		cond.Fatigue, cond.Irritability, cond.Concentration, cond.StartXP)

	h := sha256.New()
	h.Write([]byte(payload))
	return "forecast:prediction:" + hex.EncodeToString(h.Sum(nil))
}
