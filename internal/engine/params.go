// Package engine implements the personalized win-rate and XP-delta estimator.
// It is pure, synchronous computation over in-memory records: no storage, no
// randomness, no shared state. Callers load history however they like and
// hand it in.
package engine

// Params holds every tunable coefficient of the estimator. The defaults are
// hand-tuned, not fitted; keeping them in one struct lets deployments tune or
// A/B them without code changes.
type Params struct {
	// Record weighting: the target user's own records vs everyone else's.
	TargetWeight float64
	OtherWeight  float64

	// Pseudo-observation count for Beta-prior smoothing of weapon/map rates.
	SmoothingStrength float64

	// How far the weapon- and map-specific rates pull the blended rate away
	// from the base rate. Weapon choice is assumed to matter more than map.
	WeaponBlend float64
	MapBlend    float64

	// Mental/rating penalty coefficients. Each input is normalized to [0,1]
	// before weighting; concentration is inverted.
	FatigueCoeff      float64
	IrritabilityCoeff float64
	FocusCoeff        float64
	XPPressureCoeff   float64
	XPCeiling         float64

	// XP-delta mean blend across the mode/weapon/map/global pools.
	XPModeWeight   float64
	XPWeaponWeight float64
	XPMapWeight    float64
	XPGlobalWeight float64

	// XP-delta std blend across the same pools.
	StdModeWeight   float64
	StdWeaponWeight float64
	StdMapWeight    float64
	StdGlobalWeight float64

	// XP swing per unit of win-rate edge over a coin flip. Ties the XP
	// estimate to the win-rate estimate, since rating gain is mechanically
	// driven by match outcome.
	WinRateXPGain float64

	// Interval floors: minimum effective sample size and minimum XP std,
	// so tiny or zero-variance samples never produce degenerate intervals.
	MinEffectiveN float64
	MinXPStd      float64

	// Two-sided 95% normal quantile.
	ZScore float64
}

// DefaultParams returns the hand-tuned production coefficients.
func DefaultParams() Params {
	return Params{
		TargetWeight: 0.6,
		OtherWeight:  0.4,

		SmoothingStrength: 12,

		WeaponBlend: 0.5,
		MapBlend:    0.3,

		FatigueCoeff:      0.03,
		IrritabilityCoeff: 0.03,
		FocusCoeff:        0.03,
		XPPressureCoeff:   0.02,
		XPCeiling:         5000,

		XPModeWeight:   0.4,
		XPWeaponWeight: 0.3,
		XPMapWeight:    0.2,
		XPGlobalWeight: 0.1,

		StdModeWeight:   0.5,
		StdWeaponWeight: 0.25,
		StdMapWeight:    0.15,
		StdGlobalWeight: 0.1,

		WinRateXPGain: 140,

		MinEffectiveN: 6,
		MinXPStd:      20,

		ZScore: 1.96,
	}
}
