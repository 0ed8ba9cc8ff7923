package engine

import (
	"fmt"
	"math"

	"github.com/rankedlab/forecast-api/internal/models"
)

// Neutral fallback bounds used when there is no history at all.
const (
	neutralWinRateLow  = 0.35
	neutralWinRateHigh = 0.65
	neutralXPDeltaLow  = -120
	neutralXPDeltaHigh = 120
)

// Predict estimates the win rate and XP delta for one upcoming-match
// condition from the full historical record set (all users). targetUserID may
// be nil for an unauthenticated query, in which case no record is weighted
// specially.
//
// Predict never fails: degenerate inputs fall back to wider priors or neutral
// defaults, and identical inputs always produce identical output.
func Predict(records []models.MatchRecord, cond models.PredictionCondition, targetUserID *int64, p Params) *models.PersonalizedPrediction {
	if len(records) == 0 {
		return neutralPrediction(cond)
	}

	weighted := BuildWeightedRecords(records, targetUserID, p)

	// Mode partition first; an empty mode pool degrades to the full set
	// rather than failing.
	note := ""
	basePool := filterPool(weighted, cond, matchesMode)
	if len(basePool) == 0 {
		basePool = weighted
		note = fmt.Sprintf("no history for mode %q; estimated from your overall history", cond.Mode)
	}

	wins, losses := WeightedWinLoss(basePool)
	baseRate := 0.5
	if wins+losses > 0 {
		baseRate = wins / (wins + losses)
	}

	weaponPool := filterPool(basePool, cond, matchesWeapon)
	wWins, wLosses := WeightedWinLoss(weaponPool)
	weaponRate := SmoothedRate(wWins, wLosses, baseRate, p.SmoothingStrength)

	mapPool := filterPool(basePool, cond, matchesMaps)
	mWins, mLosses := WeightedWinLoss(mapPool)
	mapRate := SmoothedRate(mWins, mLosses, baseRate, p.SmoothingStrength)

	penalty := mentalPenalty(cond, p)

	winRate := clamp01(baseRate +
		p.WeaponBlend*(weaponRate-baseRate) +
		p.MapBlend*(mapRate-baseRate) -
		penalty)

	modeMean, modeStd, modeN := WeightedMeanStd(xpDeltas(basePool))
	weaponMean, weaponStd, weaponN := WeightedMeanStd(xpDeltas(weaponPool))
	mapMean, mapStd, mapN := WeightedMeanStd(xpDeltas(mapPool))
	globalMean, globalStd, _ := WeightedMeanStd(xpDeltas(weighted))

	xpDelta := p.XPModeWeight*modeMean +
		p.XPWeaponWeight*weaponMean +
		p.XPMapWeight*mapMean +
		p.XPGlobalWeight*globalMean +
		(winRate-0.5)*p.WinRateXPGain

	nEff := math.Max(p.MinEffectiveN, modeN+0.5*weaponN+0.5*mapN)
	winMargin := p.ZScore * math.Sqrt(winRate*(1-winRate)/nEff)

	xpStd := math.Max(p.MinXPStd,
		p.StdModeWeight*modeStd+
			p.StdWeaponWeight*weaponStd+
			p.StdMapWeight*mapStd+
			p.StdGlobalWeight*globalStd)
	xpMargin := p.ZScore * xpStd

	recommend := xpDelta > 0

	return &models.PersonalizedPrediction{
		WinRate:       winRate,
		BaseRate:      baseRate,
		WeaponRate:    weaponRate,
		MapRate:       mapRate,
		MentalPenalty: penalty,
		XPDelta:       xpDelta,
		ExpectedXP:    float64(cond.StartXP) + xpDelta,
		WinRateLow:    clamp01(winRate - winMargin),
		WinRateHigh:   clamp01(winRate + winMargin),
		XPDeltaLow:    xpDelta - xpMargin,
		XPDeltaHigh:   xpDelta + xpMargin,
		Recommend:     recommend,
		Advice:        advice(winRate, xpDelta, recommend),
		Note:          note,
	}
}

// mentalPenalty maps self-reported state and rating pressure to a bounded
// penalty in [0, ~0.11]. Each 1-5 rating is normalized to [0,1];
// concentration is inverted so that higher focus lowers the penalty; the
// starting rating is normalized against a fixed ceiling.
func mentalPenalty(cond models.PredictionCondition, p Params) float64 {
	fatigue := normalizeRating(cond.Fatigue)
	irritability := normalizeRating(cond.Irritability)
	distraction := 1 - normalizeRating(cond.Concentration)
	pressure := clamp01(float64(cond.StartXP) / p.XPCeiling)

	return p.FatigueCoeff*fatigue +
		p.IrritabilityCoeff*irritability +
		p.FocusCoeff*distraction +
		p.XPPressureCoeff*pressure
}

func normalizeRating(v int) float64 {
	return clamp01(float64(v-1) / 4)
}

// xpDeltas extracts one weighted end-start value per record.
func xpDeltas(pool []WeightedRecord) []WeightedValue {
	values := make([]WeightedValue, 0, len(pool))
	for _, wr := range pool {
		values = append(values, WeightedValue{
			Value:  float64(wr.Record.XPDelta()),
			Weight: wr.Weight,
		})
	}
	return values
}

func advice(winRate, xpDelta float64, recommend bool) string {
	pct := math.Round(winRate * 100)
	xp := math.Round(xpDelta)
	if recommend {
		return fmt.Sprintf("Favorable window: roughly %.0f%% win rate and %+.0f XP expected. Queue up.", pct, xp)
	}
	return fmt.Sprintf("Unfavorable window: roughly %.0f%% win rate and %+.0f XP expected. Consider sitting this rotation out.", pct, xp)
}

func neutralPrediction(cond models.PredictionCondition) *models.PersonalizedPrediction {
	return &models.PersonalizedPrediction{
		WinRate:     0.5,
		BaseRate:    0.5,
		WeaponRate:  0.5,
		MapRate:     0.5,
		XPDelta:     0,
		ExpectedXP:  float64(cond.StartXP),
		WinRateLow:  neutralWinRateLow,
		WinRateHigh: neutralWinRateHigh,
		XPDeltaLow:  neutralXPDeltaLow,
		XPDeltaHigh: neutralXPDeltaHigh,
		Recommend:   false,
		Advice:      "Not enough history to estimate this matchup yet. Play a few sessions and record them.",
		Note:        "no historical records available; returning neutral defaults",
	}
}
