package models

import "time"

// PredictionEvent is the audit row written for every served prediction. It is
// what the worker pool batches into ClickHouse for later calibration work.
type PredictionEvent struct {
	ID     string `json:"id"`
	UserID int64  `json:"user_id"` // 0 for unauthenticated/global queries

	Mode   string `json:"mode"`
	MapOne string `json:"map_one"`
	MapTwo string `json:"map_two"`
	Weapon string `json:"weapon"`

	Fatigue       int `json:"fatigue"`
	Irritability  int `json:"irritability"`
	Concentration int `json:"concentration"`
	StartXP       int `json:"start_xp"`

	WinRate   float64 `json:"win_rate"`
	XPDelta   float64 `json:"xp_delta"`
	Recommend bool    `json:"recommend"`

	TrainingSize int  `json:"training_size"`
	CacheHit     bool `json:"cache_hit"`

	CreatedAt time.Time `json:"created_at"`
}
