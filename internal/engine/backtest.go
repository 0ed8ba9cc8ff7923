package engine

import (
	"errors"
	"math"
	"sort"

	"github.com/rankedlab/forecast-api/internal/models"
)

// ErrInsufficientHistory is returned when a user has too few own records to
// evaluate anything, or when no record survives the warmup filter. It is the
// harness's only failure mode and is meant to surface as a user-facing
// validation error.
var ErrInsufficientHistory = errors.New("insufficient history")

// Warmup and limit are clamped into these bounds rather than rejected.
const (
	minWarmup = 3
	maxWarmup = 30
	minLimit  = 20
	maxLimit  = 500
)

// RunBacktest walks the target user's own history in chronological order and,
// at each step past the warmup, re-runs the estimator on every record (any
// user) strictly before that point, comparing predicted against actual win
// rate and XP delta. Only the most recent limit rows are kept; all report
// metrics are computed over that kept window.
//
// The walk rescans the full record set at every step, so it is quadratic in
// history length. Fine for hundreds of records per user; an incrementally
// maintained per-pool aggregate would be needed in the tens of thousands.
func RunBacktest(records []models.MatchRecord, targetUserID int64, warmup, limit int, p Params) (*models.BacktestReport, error) {
	warmup = clampInt(warmup, minWarmup, maxWarmup)
	limit = clampInt(limit, minLimit, maxLimit)

	own := make([]models.MatchRecord, 0)
	for _, r := range records {
		if r.UserID != nil && *r.UserID == targetUserID {
			own = append(own, r)
		}
	}
	if len(own) <= warmup {
		return nil, ErrInsufficientHistory
	}

	// Chronological order with id as the tiebreaker, for both the user's
	// own walk and the training-prefix cutoff.
	sortChronological(own)
	all := make([]models.MatchRecord, len(records))
	copy(all, records)
	sortChronological(all)

	rows := make([]models.BacktestRow, 0, len(own)-warmup)

	for i := warmup; i < len(own); i++ {
		current := own[i]

		training := trainingPrefix(all, current)
		if len(training) < warmup {
			continue
		}

		games := current.Games()
		if games == 0 {
			// No actual win rate to compare against.
			continue
		}

		cond := models.PredictionCondition{
			Mode:          current.Mode,
			MapOne:        current.MapOne,
			MapTwo:        current.MapTwo,
			Weapon:        current.Weapon,
			Fatigue:       current.Fatigue,
			Irritability:  current.Irritability,
			Concentration: current.Concentration,
			StartXP:       current.StartXP,
		}

		pred := Predict(training, cond, &targetUserID, p)

		actualRate := float64(current.Wins) / float64(games)
		actualDelta := float64(current.XPDelta())

		rows = append(rows, models.BacktestRow{
			RecordID:         current.ID,
			PlayedAt:         current.PlayedAt,
			PredictedWinRate: pred.WinRate,
			ActualWinRate:    actualRate,
			PredictedXPDelta: pred.XPDelta,
			ActualXPDelta:    actualDelta,
			WinRateCovered:   actualRate >= pred.WinRateLow && actualRate <= pred.WinRateHigh,
			XPDeltaCovered:   actualDelta >= pred.XPDeltaLow && actualDelta <= pred.XPDeltaHigh,
			Recommended:      pred.Recommend,
		})
	}

	if len(rows) == 0 {
		return nil, ErrInsufficientHistory
	}

	if len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}

	report := &models.BacktestReport{
		UserID:    targetUserID,
		Warmup:    warmup,
		Limit:     limit,
		Evaluated: len(rows),
		Rows:      rows,
	}
	aggregate(report)
	return report, nil
}

// trainingPrefix returns every record strictly before current in
// (timestamp, id) order. all must already be sorted chronologically.
func trainingPrefix(all []models.MatchRecord, current models.MatchRecord) []models.MatchRecord {
	cut := sort.Search(len(all), func(i int) bool {
		r := all[i]
		if !r.PlayedAt.Equal(current.PlayedAt) {
			return r.PlayedAt.After(current.PlayedAt)
		}
		return r.ID >= current.ID
	})
	return all[:cut]
}

func aggregate(report *models.BacktestReport) {
	var rateAbs, rateSq, deltaAbs, deltaSq float64
	var rateCovered, deltaCovered, recommended, profitable int

	for _, row := range report.Rows {
		rateErr := row.PredictedWinRate - row.ActualWinRate
		deltaErr := row.PredictedXPDelta - row.ActualXPDelta

		rateAbs += math.Abs(rateErr)
		rateSq += rateErr * rateErr
		deltaAbs += math.Abs(deltaErr)
		deltaSq += deltaErr * deltaErr

		if row.WinRateCovered {
			rateCovered++
		}
		if row.XPDeltaCovered {
			deltaCovered++
		}
		if row.Recommended {
			recommended++
			if row.ActualXPDelta > 0 {
				profitable++
			}
		}
	}

	n := float64(len(report.Rows))
	report.WinRateMAE = rateAbs / n
	report.WinRateRMSE = math.Sqrt(rateSq / n)
	report.WinRateCoverage = float64(rateCovered) / n
	report.XPDeltaMAE = deltaAbs / n
	report.XPDeltaRMSE = math.Sqrt(deltaSq / n)
	report.XPDeltaCoverage = float64(deltaCovered) / n
	report.Recommended = recommended
	if recommended > 0 {
		report.RecommendationPrecision = float64(profitable) / float64(recommended)
	}
}

func sortChronological(records []models.MatchRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].PlayedAt.Equal(records[j].PlayedAt) {
			return records[i].PlayedAt.Before(records[j].PlayedAt)
		}
		return records[i].ID < records[j].ID
	})
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
