package handlers

import (
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rankedlab/forecast-api/internal/logic"
	"github.com/rankedlab/forecast-api/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// AuditQueue defines the interface for the prediction audit worker pool
type AuditQueue interface {
	Enqueue(event *models.PredictionEvent) bool
	QueueDepth() int
}

type Config struct {
	AuditPool  AuditQueue
	Postgres   *pgxpool.Pool
	ClickHouse driver.Conn
	Redis      *redis.Client
	Logger     *zap.Logger
	// Services
	Records    logic.RecordService
	Prediction logic.PredictionService
}

type Handler struct {
	pool       AuditQueue
	pg         *pgxpool.Pool
	ch         driver.Conn
	redis      *redis.Client
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	records    logic.RecordService
	prediction logic.PredictionService
}

func New(cfg Config) *Handler {
	return &Handler{
		pool:       cfg.AuditPool,
		pg:         cfg.Postgres,
		ch:         cfg.ClickHouse,
		redis:      cfg.Redis,
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		records:    cfg.Records,
		prediction: cfg.Prediction,
	}
}
