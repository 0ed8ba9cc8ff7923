package handlers

import (
	"context"

	"github.com/rankedlab/forecast-api/internal/models"
)

// MockRecordService implements logic.RecordService for testing
type MockRecordService struct {
	ListRecordsFunc     func(ctx context.Context) ([]models.MatchRecord, error)
	ListUserRecordsFunc func(ctx context.Context, userID int64) ([]models.MatchRecord, error)
	CreateRecordFunc    func(ctx context.Context, record *models.MatchRecord) error
	DeleteRecordFunc    func(ctx context.Context, id int64, ownerID *int64) error
}

func (m *MockRecordService) ListRecords(ctx context.Context) ([]models.MatchRecord, error) {
	if m.ListRecordsFunc != nil {
		return m.ListRecordsFunc(ctx)
	}
	return nil, nil
}

func (m *MockRecordService) ListUserRecords(ctx context.Context, userID int64) ([]models.MatchRecord, error) {
	if m.ListUserRecordsFunc != nil {
		return m.ListUserRecordsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockRecordService) CreateRecord(ctx context.Context, record *models.MatchRecord) error {
	if m.CreateRecordFunc != nil {
		return m.CreateRecordFunc(ctx, record)
	}
	record.ID = 1
	return nil
}

func (m *MockRecordService) DeleteRecord(ctx context.Context, id int64, ownerID *int64) error {
	if m.DeleteRecordFunc != nil {
		return m.DeleteRecordFunc(ctx, id, ownerID)
	}
	return nil
}

// MockPredictionService implements logic.PredictionService for testing
type MockPredictionService struct {
	PredictFunc  func(ctx context.Context, cond models.PredictionCondition, targetUserID *int64) (*models.PersonalizedPrediction, error)
	BacktestFunc func(ctx context.Context, userID int64, warmup, limit int) (*models.BacktestReport, error)
}

func (m *MockPredictionService) Predict(ctx context.Context, cond models.PredictionCondition, targetUserID *int64) (*models.PersonalizedPrediction, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, cond, targetUserID)
	}
	return &models.PersonalizedPrediction{WinRate: 0.5}, nil
}

func (m *MockPredictionService) Backtest(ctx context.Context, userID int64, warmup, limit int) (*models.BacktestReport, error) {
	if m.BacktestFunc != nil {
		return m.BacktestFunc(ctx, userID, warmup, limit)
	}
	return &models.BacktestReport{UserID: userID}, nil
}

// MockAuditQueue implements AuditQueue for testing
type MockAuditQueue struct {
	EnqueueFunc func(event *models.PredictionEvent) bool
}

func (m *MockAuditQueue) Enqueue(event *models.PredictionEvent) bool {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(event)
	}
	return true
}

func (m *MockAuditQueue) QueueDepth() int { return 0 }
