// Package worker implements the buffered worker pool that decouples request
// handling from the prediction audit log. Served predictions are enqueued
// here and batch-inserted into ClickHouse, with backpressure handled via load
// shedding and a graceful flush on shutdown.

package worker

import (
	"context"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/rankedlab/forecast-api/internal/models"
)

// Prometheus metrics
var (
	eventsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_audit_events_enqueued_total",
		Help: "Total number of prediction audit events enqueued",
	})

	eventsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_audit_events_processed_total",
		Help: "Total number of audit events written by workers",
	})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_audit_events_failed_total",
		Help: "Total number of audit events that failed processing",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "forecast_audit_queue_depth",
		Help: "Current depth of the audit queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "forecast_audit_batch_insert_duration_seconds",
		Help:    "Duration of batch inserts to ClickHouse",
		Buckets: prometheus.DefBuckets,
	})

	eventsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_audit_events_load_shed_total",
		Help: "Total number of audit events dropped due to load shedding",
	})
)

// Job represents a unit of work for the worker pool
type Job struct {
	Event     *models.PredictionEvent
	Timestamp time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	ClickHouse    driver.Conn
	Logger        *zap.Logger
}

// Pool manages a pool of workers for async audit-event processing
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop gracefully shuts down the worker pool, flushing pending batches
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")

	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds an event to the queue. Returns false immediately when the
// queue is full or the pool is stopped; audit logging is best-effort and must
// never block a prediction response.
func (p *Pool) Enqueue(event *models.PredictionEvent) bool {
	job := Job{
		Event:     event,
		Timestamp: time.Now(),
	}

	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue event (pool stopped)", "error", r)
		}
	}()

	select {
	case p.jobQueue <- job:
		eventsEnqueued.Inc()
		return true
	default:
		eventsLoadShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker processes jobs from the queue in batches
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		if err := p.processBatch(batch); err != nil {
			p.logger.Errorw("Batch processing failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			eventsFailed.Add(float64(len(batch)))
		} else {
			eventsProcessed.Add(float64(len(batch)))
		}
		batchInsertDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				// Channel closed, flush remaining
				flush()
				return
			}

			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-p.ctx.Done():
			flush()
			return
		}
	}
}

// processBatch writes a batch of audit events to ClickHouse
func (p *Pool) processBatch(batch []Job) error {
	if len(batch) == 0 {
		return nil
	}

	ctx := context.Background()

	chBatch, err := p.config.ClickHouse.PrepareBatch(ctx, `
		INSERT INTO forecast_stats.prediction_log (
			id, created_at, user_id, mode, map_one, map_two, weapon,
			fatigue, irritability, concentration, start_xp,
			win_rate, xp_delta, recommend, training_size, cache_hit
		)
	`)
	if err != nil {
		return err
	}

	for _, job := range batch {
		event := job.Event

		createdAt := event.CreatedAt
		if createdAt.IsZero() {
			createdAt = job.Timestamp
		}

		if err := chBatch.Append(
			event.ID,
			createdAt,
			event.UserID,
			event.Mode,
			event.MapOne,
			event.MapTwo,
			event.Weapon,
			uint8(event.Fatigue),
			uint8(event.Irritability),
			uint8(event.Concentration),
			int32(event.StartXP),
			event.WinRate,
			event.XPDelta,
			boolToUint8(event.Recommend),
			int32(event.TrainingSize),
			boolToUint8(event.CacheHit),
		); err != nil {
			return err
		}
	}

	return chBatch.Send()
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
