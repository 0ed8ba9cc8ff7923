package engine

import "github.com/rankedlab/forecast-api/internal/models"

// WeightedRecord pairs a historical record with its estimator weight.
// Weights are in (0,1] and depend only on record ownership.
type WeightedRecord struct {
	Record models.MatchRecord
	Weight float64
}

// BuildWeightedRecords assigns every record a weight: the target user's own
// records get TargetWeight, everything else (other users and unowned rows)
// gets OtherWeight. A nil targetUserID means no record is special and all
// weights are OtherWeight — the population prior still informs cold starts,
// while an established user's own tendencies dominate.
func BuildWeightedRecords(records []models.MatchRecord, targetUserID *int64, p Params) []WeightedRecord {
	weighted := make([]WeightedRecord, 0, len(records))
	for _, r := range records {
		w := p.OtherWeight
		if targetUserID != nil && r.UserID != nil && *r.UserID == *targetUserID {
			w = p.TargetWeight
		}
		weighted = append(weighted, WeightedRecord{Record: r, Weight: w})
	}
	return weighted
}

func matchesMode(r models.MatchRecord, cond models.PredictionCondition) bool {
	return r.Mode == cond.Mode
}

func matchesWeapon(r models.MatchRecord, cond models.PredictionCondition) bool {
	return r.Weapon == cond.Weapon
}

// matchesMaps treats the record's map pair as unordered: any overlap with the
// condition's pair counts. Map-specific performance is assumed map-level, not
// map-pair-level. Storage and display keep the fields positional; only this
// predicate is order-insensitive.
func matchesMaps(r models.MatchRecord, cond models.PredictionCondition) bool {
	return r.MapOne == cond.MapOne || r.MapOne == cond.MapTwo ||
		r.MapTwo == cond.MapOne || r.MapTwo == cond.MapTwo
}

func filterPool(pool []WeightedRecord, cond models.PredictionCondition, keep func(models.MatchRecord, models.PredictionCondition) bool) []WeightedRecord {
	out := make([]WeightedRecord, 0, len(pool))
	for _, wr := range pool {
		if keep(wr.Record, cond) {
			out = append(out, wr)
		}
	}
	return out
}
