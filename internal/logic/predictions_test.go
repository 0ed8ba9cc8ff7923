package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rankedlab/forecast-api/internal/engine"
	"github.com/rankedlab/forecast-api/internal/models"
)

// MockRecordService implements RecordService for testing
type MockRecordService struct {
	ListRecordsFunc func(ctx context.Context) ([]models.MatchRecord, error)
}

func (m *MockRecordService) ListRecords(ctx context.Context) ([]models.MatchRecord, error) {
	if m.ListRecordsFunc != nil {
		return m.ListRecordsFunc(ctx)
	}
	return nil, nil
}

func (m *MockRecordService) ListUserRecords(ctx context.Context, userID int64) ([]models.MatchRecord, error) {
	return nil, nil
}

func (m *MockRecordService) CreateRecord(ctx context.Context, record *models.MatchRecord) error {
	return nil
}

func (m *MockRecordService) DeleteRecord(ctx context.Context, id int64, ownerID *int64) error {
	return nil
}

// MockAuditQueue captures enqueued events
type MockAuditQueue struct {
	Events []*models.PredictionEvent
}

func (m *MockAuditQueue) Enqueue(event *models.PredictionEvent) bool {
	m.Events = append(m.Events, event)
	return true
}

func (m *MockAuditQueue) QueueDepth() int { return len(m.Events) }

func testCondition() models.PredictionCondition {
	return models.PredictionCondition{
		Mode: "control", MapOne: "harbor", MapTwo: "foundry", Weapon: "smg",
		Fatigue: 2, Irritability: 2, Concentration: 4, StartXP: 2100,
	}
}

func trainingRecords() []models.MatchRecord {
	user := int64(1)
	records := make([]models.MatchRecord, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, models.MatchRecord{
			ID: int64(i + 1), UserID: &user,
			PlayedAt: time.Date(2026, 2, 1, i, 0, 0, 0, time.UTC),
			Mode:     "control", MapOne: "harbor", MapTwo: "foundry", Weapon: "smg",
			Wins: 6, Losses: 4,
			Fatigue: 3, Irritability: 3, Concentration: 3,
			StartXP: 2000 + i*10, EndXP: 2010 + i*10,
		})
	}
	return records
}

func TestPredictionService_Predict(t *testing.T) {
	user := int64(1)
	audit := &MockAuditQueue{}
	svc := NewPredictionService(
		&MockRecordService{ListRecordsFunc: func(ctx context.Context) ([]models.MatchRecord, error) {
			return trainingRecords(), nil
		}},
		nil, audit, engine.DefaultParams(), 0, zap.NewNop().Sugar(),
	)

	pred, err := svc.Predict(context.Background(), testCondition(), &user)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if pred.WinRate < 0 || pred.WinRate > 1 {
		t.Errorf("WinRate = %v, want within [0,1]", pred.WinRate)
	}
	if len(audit.Events) != 1 {
		t.Fatalf("audit events = %d, want 1", len(audit.Events))
	}
	if audit.Events[0].TrainingSize != 10 {
		t.Errorf("TrainingSize = %d, want 10", audit.Events[0].TrainingSize)
	}
	if audit.Events[0].CacheHit {
		t.Error("CacheHit = true, want false on a computed prediction")
	}
	if audit.Events[0].ID == "" {
		t.Error("audit event must carry an id")
	}
}

func TestPredictionService_PredictStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewPredictionService(
		&MockRecordService{ListRecordsFunc: func(ctx context.Context) ([]models.MatchRecord, error) {
			return nil, storeErr
		}},
		nil, nil, engine.DefaultParams(), 0, zap.NewNop().Sugar(),
	)

	if _, err := svc.Predict(context.Background(), testCondition(), nil); !errors.Is(err, storeErr) {
		t.Errorf("err = %v, want wrapped store error", err)
	}
}

func TestPredictionService_Backtest(t *testing.T) {
	svc := NewPredictionService(
		&MockRecordService{ListRecordsFunc: func(ctx context.Context) ([]models.MatchRecord, error) {
			return trainingRecords(), nil
		}},
		nil, nil, engine.DefaultParams(), 0, zap.NewNop().Sugar(),
	)

	report, err := svc.Backtest(context.Background(), 1, 5, 50)
	if err != nil {
		t.Fatalf("Backtest: %v", err)
	}
	if report.Evaluated != 5 {
		t.Errorf("Evaluated = %d, want 5", report.Evaluated)
	}
}

func TestPredictionService_BacktestInsufficientHistory(t *testing.T) {
	svc := NewPredictionService(
		&MockRecordService{ListRecordsFunc: func(ctx context.Context) ([]models.MatchRecord, error) {
			return trainingRecords()[:3], nil
		}},
		nil, nil, engine.DefaultParams(), 0, zap.NewNop().Sugar(),
	)

	if _, err := svc.Backtest(context.Background(), 1, 5, 50); !errors.Is(err, engine.ErrInsufficientHistory) {
		t.Errorf("err = %v, want ErrInsufficientHistory", err)
	}
}

func TestPredictionCacheKey_Stable(t *testing.T) {
	user := int64(7)
	a := predictionCacheKey(testCondition(), &user)
	b := predictionCacheKey(testCondition(), &user)
	if a != b {
		t.Errorf("identical inputs produced different keys: %q vs %q", a, b)
	}

	other := testCondition()
	other.Weapon = "sniper"
	if predictionCacheKey(other, &user) == a {
		t.Error("different conditions must not collide on the same key")
	}
}
