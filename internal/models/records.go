package models

import "time"

// Modes is the fixed set of ranked rulesets a match can be recorded under.
var Modes = []string{"control", "escort", "payload", "capture"}

// WeaponCatalog lists the weapon classes shown in client dropdowns. Weapon
// labels on records are free-form; filtering matches them exactly against
// whatever was stored.
var WeaponCatalog = []string{
	"assault_rifle",
	"carbine",
	"smg",
	"shotgun",
	"sniper",
	"dmr",
	"lmg",
	"pistol",
	"launcher",
	"melee",
}

// MapCatalog lists the maps in the current rotation pool.
var MapCatalog = []string{
	"harbor",
	"foundry",
	"canyon",
	"terminal",
	"overgrowth",
	"citadel",
	"reservoir",
	"district",
}

// ValidMode reports whether m is one of the enumerated rulesets.
func ValidMode(m string) bool {
	for _, mode := range Modes {
		if mode == m {
			return true
		}
	}
	return false
}

// KnownWeapon reports whether w appears in the weapon catalog.
func KnownWeapon(w string) bool {
	for _, weapon := range WeaponCatalog {
		if weapon == w {
			return true
		}
	}
	return false
}

// MatchRecord is one recorded play session: a batch of games played under a
// single configuration, not a single match. Records are immutable once
// created; they are only ever inserted or deleted.
type MatchRecord struct {
	ID     int64  `json:"id"`
	UserID *int64 `json:"user_id,omitempty"` // nil means the record is unowned

	PlayedAt time.Time `json:"played_at"`

	Mode   string `json:"mode"`
	MapOne string `json:"map_one"` // stored positionally; the engine's overlap predicate is unordered
	MapTwo string `json:"map_two"`
	Weapon string `json:"weapon"`

	Wins   int `json:"wins"`
	Losses int `json:"losses"`

	// Self-reported state on a 1-5 scale.
	Fatigue       int `json:"fatigue"`
	Irritability  int `json:"irritability"`
	Concentration int `json:"concentration"`

	StartXP int `json:"start_xp"`
	EndXP   int `json:"end_xp"`

	Note string `json:"note,omitempty"`
}

// Games returns the total games in the batch.
func (r *MatchRecord) Games() int {
	return r.Wins + r.Losses
}

// XPDelta returns the net rating change across the batch.
func (r *MatchRecord) XPDelta() int {
	return r.EndXP - r.StartXP
}

// PredictionCondition is the hypothetical upcoming-match configuration a
// caller wants evaluated. Built per request, never persisted.
type PredictionCondition struct {
	Mode   string `json:"mode"`
	MapOne string `json:"map_one"`
	MapTwo string `json:"map_two"`
	Weapon string `json:"weapon"`

	Fatigue       int `json:"fatigue"`
	Irritability  int `json:"irritability"`
	Concentration int `json:"concentration"`

	StartXP int `json:"start_xp"`
}
