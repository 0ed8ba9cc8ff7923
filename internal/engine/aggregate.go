package engine

import "math"

// SmoothedRate returns a Beta-prior-smoothed win rate. The prior acts as
// strength pseudo-observations split proportionally to priorRate, so the
// result is exactly priorRate at zero observations and converges to the raw
// empirical rate as the sample grows.
func SmoothedRate(wins, losses, priorRate, strength float64) float64 {
	priorWins := priorRate * strength
	priorLosses := (1 - priorRate) * strength
	return (wins + priorWins) / (wins + losses + priorWins + priorLosses)
}

// WeightedValue is one observation in a weighted sample.
type WeightedValue struct {
	Value  float64
	Weight float64
}

// WeightedWinLoss returns the weighted win and loss sums over a pool. The
// sums are continuous, not integer: each record's counts are scaled by its
// weight.
func WeightedWinLoss(pool []WeightedRecord) (wins, losses float64) {
	for _, wr := range pool {
		wins += float64(wr.Record.Wins) * wr.Weight
		losses += float64(wr.Record.Losses) * wr.Weight
	}
	return wins, losses
}

// WeightedMeanStd returns the weighted mean, weighted population standard
// deviation, and Kish effective sample size nEff = (Σw)² / Σ(w²) of a
// weighted sample. Downweighted observations count for less than a full one
// when sizing confidence intervals.
//
// Returns all zeros for an empty sample or non-positive total weight; callers
// must floor nEff before using it as a divisor.
func WeightedMeanStd(values []WeightedValue) (mean, std, nEff float64) {
	var sumW, sumW2, sumWV float64
	for _, v := range values {
		sumW += v.Weight
		sumW2 += v.Weight * v.Weight
		sumWV += v.Weight * v.Value
	}
	if sumW <= 0 {
		return 0, 0, 0
	}

	mean = sumWV / sumW

	var sumWD2 float64
	for _, v := range values {
		d := v.Value - mean
		sumWD2 += v.Weight * d * d
	}
	std = math.Sqrt(sumWD2 / sumW)

	if sumW2 > 0 {
		nEff = (sumW * sumW) / sumW2
	}
	return mean, std, nEff
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
