package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rankedlab/forecast-api/internal/engine"
	"github.com/rankedlab/forecast-api/internal/models"
)

func newTestHandler(records *MockRecordService, prediction *MockPredictionService) *Handler {
	return New(Config{
		AuditPool:  &MockAuditQueue{},
		Logger:     zap.NewNop(),
		Records:    records,
		Prediction: prediction,
	})
}

func TestPostPrediction(t *testing.T) {
	validBody := `{"user_id": 1, "mode": "control", "map_one": "harbor", "map_two": "foundry", "weapon": "smg", "fatigue": 2, "irritability": 2, "concentration": 4, "start_xp": 2100}`

	tests := []struct {
		name           string
		body           string
		mockFunc       func(ctx context.Context, cond models.PredictionCondition, targetUserID *int64) (*models.PersonalizedPrediction, error)
		expectedStatus int
	}{
		{
			name: "Success",
			body: validBody,
			mockFunc: func(ctx context.Context, cond models.PredictionCondition, targetUserID *int64) (*models.PersonalizedPrediction, error) {
				return &models.PersonalizedPrediction{WinRate: 0.62, Recommend: true}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			body:           `{"mode": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing Required Fields",
			body:           `{"mode": "control"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown Mode",
			body:           `{"mode": "warmup-lobby", "map_one": "harbor", "map_two": "foundry", "weapon": "smg", "fatigue": 2, "irritability": 2, "concentration": 4, "start_xp": 2100}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Service Error",
			body: validBody,
			mockFunc: func(ctx context.Context, cond models.PredictionCondition, targetUserID *int64) (*models.PersonalizedPrediction, error) {
				return nil, context.DeadlineExceeded
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&MockRecordService{}, &MockPredictionService{PredictFunc: tt.mockFunc})

			req := httptest.NewRequest("POST", "/api/v1/predictions", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.PostPrediction(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestPostPrediction_PassesCondition(t *testing.T) {
	var gotCond models.PredictionCondition
	var gotUser *int64

	h := newTestHandler(&MockRecordService{}, &MockPredictionService{
		PredictFunc: func(ctx context.Context, cond models.PredictionCondition, targetUserID *int64) (*models.PersonalizedPrediction, error) {
			gotCond = cond
			gotUser = targetUserID
			return &models.PersonalizedPrediction{}, nil
		},
	})

	body := `{"user_id": 42, "mode": "escort", "map_one": "canyon", "map_two": "terminal", "weapon": "sniper", "fatigue": 4, "irritability": 1, "concentration": 5, "start_xp": 1800}`
	req := httptest.NewRequest("POST", "/api/v1/predictions", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.PostPrediction(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200", w.Code)
	}
	if gotUser == nil || *gotUser != 42 {
		t.Errorf("target user = %v, want 42", gotUser)
	}
	if gotCond.Weapon != "sniper" || gotCond.Mode != "escort" || gotCond.StartXP != 1800 {
		t.Errorf("condition not passed through: %+v", gotCond)
	}
}

func TestGetBacktest(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockFunc       func(ctx context.Context, userID int64, warmup, limit int) (*models.BacktestReport, error)
		expectedStatus int
	}{
		{
			name: "Success",
			path: "/api/v1/users/1/backtest?warmup=5&limit=50",
			mockFunc: func(ctx context.Context, userID int64, warmup, limit int) (*models.BacktestReport, error) {
				return &models.BacktestReport{UserID: userID, Evaluated: 12}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Insufficient History",
			path: "/api/v1/users/1/backtest",
			mockFunc: func(ctx context.Context, userID int64, warmup, limit int) (*models.BacktestReport, error) {
				return nil, engine.ErrInsufficientHistory
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Invalid User ID",
			path:           "/api/v1/users/abc/backtest",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Service Error",
			path: "/api/v1/users/1/backtest",
			mockFunc: func(ctx context.Context, userID int64, warmup, limit int) (*models.BacktestReport, error) {
				return nil, context.DeadlineExceeded
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&MockRecordService{}, &MockPredictionService{BacktestFunc: tt.mockFunc})

			// Chi router to handle URL params
			r := chi.NewRouter()
			r.Get("/api/v1/users/{userId}/backtest", h.GetBacktest)

			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestGetBacktest_ForwardsParams(t *testing.T) {
	var gotWarmup, gotLimit int

	h := newTestHandler(&MockRecordService{}, &MockPredictionService{
		BacktestFunc: func(ctx context.Context, userID int64, warmup, limit int) (*models.BacktestReport, error) {
			gotWarmup, gotLimit = warmup, limit
			return &models.BacktestReport{}, nil
		},
	})

	r := chi.NewRouter()
	r.Get("/api/v1/users/{userId}/backtest", h.GetBacktest)

	req := httptest.NewRequest("GET", "/api/v1/users/7/backtest?warmup=8&limit=40", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotWarmup != 8 || gotLimit != 40 {
		t.Errorf("warmup/limit = %d/%d, want 8/40", gotWarmup, gotLimit)
	}

	var report models.BacktestReport
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
