package models

import "time"

// PersonalizedPrediction is the engine's output for a single condition.
// Rates are 0-1 floats; the presentation layer is responsible for percentage
// formatting.
type PersonalizedPrediction struct {
	WinRate    float64 `json:"win_rate"`
	BaseRate   float64 `json:"base_rate"`
	WeaponRate float64 `json:"weapon_rate"`
	MapRate    float64 `json:"map_rate"`

	MentalPenalty float64 `json:"mental_penalty"`

	XPDelta    float64 `json:"xp_delta"`
	ExpectedXP float64 `json:"expected_xp"`

	// 95%-style intervals.
	WinRateLow  float64 `json:"win_rate_low"`
	WinRateHigh float64 `json:"win_rate_high"`
	XPDeltaLow  float64 `json:"xp_delta_low"`
	XPDeltaHigh float64 `json:"xp_delta_high"`

	Recommend bool   `json:"recommend"`
	Advice    string `json:"advice"`
	Note      string `json:"note,omitempty"`
}

// BacktestRow is one evaluated step of a backtest walk: the engine's output
// on a historical training prefix compared against what actually happened.
type BacktestRow struct {
	RecordID int64     `json:"record_id"`
	PlayedAt time.Time `json:"played_at"`

	PredictedWinRate float64 `json:"predicted_win_rate"`
	ActualWinRate    float64 `json:"actual_win_rate"`
	PredictedXPDelta float64 `json:"predicted_xp_delta"`
	ActualXPDelta    float64 `json:"actual_xp_delta"`

	WinRateCovered bool `json:"win_rate_covered"`
	XPDeltaCovered bool `json:"xp_delta_covered"`
	Recommended    bool `json:"recommended"`
}

// BacktestReport aggregates error, coverage, and precision metrics over the
// kept evaluation window.
type BacktestReport struct {
	UserID int64 `json:"user_id"`
	Warmup int   `json:"warmup"`
	Limit  int   `json:"limit"`

	Evaluated   int `json:"evaluated"`
	Recommended int `json:"recommended"`

	WinRateMAE      float64 `json:"win_rate_mae"`
	WinRateRMSE     float64 `json:"win_rate_rmse"`
	WinRateCoverage float64 `json:"win_rate_coverage"`

	XPDeltaMAE      float64 `json:"xp_delta_mae"`
	XPDeltaRMSE     float64 `json:"xp_delta_rmse"`
	XPDeltaCoverage float64 `json:"xp_delta_coverage"`

	// Of the rows where the engine recommended playing, the fraction whose
	// actual XP delta was positive. Zero when nothing was recommended.
	RecommendationPrecision float64 `json:"recommendation_precision"`

	Rows []BacktestRow `json:"rows"`
}
