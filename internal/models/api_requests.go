package models

import "time"

type CreateRecordRequest struct {
	UserID   *int64    `json:"user_id"`
	PlayedAt time.Time `json:"played_at"`

	Mode   string `json:"mode" validate:"required"`
	MapOne string `json:"map_one" validate:"required"`
	MapTwo string `json:"map_two" validate:"required"`
	Weapon string `json:"weapon" validate:"required"`

	Wins   int `json:"wins" validate:"gte=0"`
	Losses int `json:"losses" validate:"gte=0"`

	Fatigue       int `json:"fatigue" validate:"gte=1,lte=5"`
	Irritability  int `json:"irritability" validate:"gte=1,lte=5"`
	Concentration int `json:"concentration" validate:"gte=1,lte=5"`

	StartXP int `json:"start_xp" validate:"gte=0"`
	EndXP   int `json:"end_xp" validate:"gte=0"`

	Note string `json:"note"`
}

type PredictRequest struct {
	UserID *int64 `json:"user_id"`

	Mode   string `json:"mode" validate:"required"`
	MapOne string `json:"map_one" validate:"required"`
	MapTwo string `json:"map_two" validate:"required"`
	Weapon string `json:"weapon" validate:"required"`

	Fatigue       int `json:"fatigue" validate:"gte=1,lte=5"`
	Irritability  int `json:"irritability" validate:"gte=1,lte=5"`
	Concentration int `json:"concentration" validate:"gte=1,lte=5"`

	StartXP int `json:"start_xp" validate:"gte=0"`
}

// Condition converts the request into the engine's condition struct.
func (r *PredictRequest) Condition() PredictionCondition {
	return PredictionCondition{
		Mode:          r.Mode,
		MapOne:        r.MapOne,
		MapTwo:        r.MapTwo,
		Weapon:        r.Weapon,
		Fatigue:       r.Fatigue,
		Irritability:  r.Irritability,
		Concentration: r.Concentration,
		StartXP:       r.StartXP,
	}
}

type CatalogResponse struct {
	Modes   []string `json:"modes"`
	Weapons []string `json:"weapons"`
	Maps    []string `json:"maps"`
}
