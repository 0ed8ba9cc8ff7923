package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rankedlab/forecast-api/internal/engine"
	"github.com/rankedlab/forecast-api/internal/models"
)

// PostPrediction evaluates an upcoming-match condition
// @Summary Predict Match Outcome
// @Tags Predictions
// @Accept json
// @Produce json
// @Param condition body models.PredictRequest true "Upcoming match condition"
// @Success 200 {object} models.PersonalizedPrediction
// @Failure 400 {object} map[string]string
// @Router /predictions [post]
func (h *Handler) PostPrediction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if !models.ValidMode(req.Mode) {
		h.errorResponse(w, http.StatusBadRequest, "Unknown mode: "+req.Mode)
		return
	}

	pred, err := h.prediction.Predict(r.Context(), req.Condition(), req.UserID)
	if err != nil {
		h.logger.Errorw("Failed to compute prediction", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute prediction")
		return
	}

	h.jsonResponse(w, http.StatusOK, pred)
}

// GetBacktest replays the engine over a user's chronological history
// @Summary Backtest Prediction Engine
// @Tags Predictions
// @Produce json
// @Param userId path int true "Target user"
// @Param warmup query int false "Warmup record count (clamped to 3-30)"
// @Param limit query int false "Evaluation row limit (clamped to 20-500)"
// @Success 200 {object} models.BacktestReport
// @Failure 422 {object} map[string]string "Insufficient history"
// @Router /users/{userId}/backtest [get]
func (h *Handler) GetBacktest(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	warmup := queryInt(r, "warmup", 10)
	limit := queryInt(r, "limit", 100)

	report, err := h.prediction.Backtest(r.Context(), userID, warmup, limit)
	if err != nil {
		if errors.Is(err, engine.ErrInsufficientHistory) {
			h.errorResponse(w, http.StatusUnprocessableEntity, "Insufficient history to backtest this user")
			return
		}
		h.logger.Errorw("Failed to run backtest", "error", err, "userID", userID)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to run backtest")
		return
	}

	h.jsonResponse(w, http.StatusOK, report)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
