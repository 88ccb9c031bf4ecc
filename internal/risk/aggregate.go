package risk

import "matruraksha/internal/mother"

// checkupIntervals is the total lookup from overall risk level to the
// advised time until the next checkup. Every tier has exactly one entry.
var checkupIntervals = map[Tier]string{
	TierCritical: "within 24 hours",
	TierHigh:     "3-5 days",
	TierMedium:   "1-2 weeks",
	TierLow:      "4 weeks",
}

// NextCheckupInterval returns the advised checkup interval for a tier.
func NextCheckupInterval(level Tier) string {
	return checkupIntervals[level]
}

// classify maps the score pair onto the overall tier. Rules are checked in
// priority order, first match wins, so the level can never decrease when a
// factor score rises.
func classify(maxScore, avgScore float64) Tier {
	switch {
	case maxScore >= 0.8 || avgScore >= 0.7:
		return TierCritical
	case maxScore >= 0.6 || avgScore >= 0.5:
		return TierHigh
	case maxScore >= 0.4 || avgScore >= 0.3:
		return TierMedium
	default:
		return TierLow
	}
}

// Assess evaluates all six factors for one snapshot and aggregates them
// into a single assessment. Pure: identical snapshots always produce
// identical assessments.
func Assess(snap mother.Snapshot) Assessment {
	factors := Evaluate(snap)

	var sum, maxScore float64
	for _, f := range factors {
		sum += f.Score
		if f.Score > maxScore {
			maxScore = f.Score
		}
	}
	avg := sum / float64(len(factors))

	level := classify(maxScore, avg)

	return Assessment{
		RiskLevel:       level,
		AverageScore:    avg,
		MaxScore:        maxScore,
		Factors:         factors,
		Recommendations: recommendations(level, factors, snap),
		NextCheckup:     NextCheckupInterval(level),
	}
}

// recommendations builds the advice list: level-driven urgency first, then
// factor-specific guidance for every non-low factor.
func recommendations(level Tier, factors []FactorResult, snap mother.Snapshot) []string {
	var recs []string

	switch level {
	case TierCritical:
		recs = append(recs,
			"Urgent: consult your doctor within 24 hours",
			"Consider hospitalization for close monitoring",
		)
	case TierHigh:
		recs = append(recs, "Schedule a checkup within 24-48 hours")
	}

	for _, f := range factors {
		if f.Tier == TierLow {
			continue
		}
		switch f.Factor {
		case FactorBloodPressure:
			recs = append(recs,
				"Monitor blood pressure twice daily",
				"Reduce salt intake and rest on your left side",
			)
		case FactorHemoglobin:
			recs = append(recs,
				"Take iron supplementation as prescribed",
				"Eat iron-rich foods: green leafy vegetables, jaggery, dates",
			)
		case FactorBMI:
			if bmi := snap.EffectiveBMI(); bmi > 0 && bmi < 18.5 {
				recs = append(recs, "Increase caloric intake with nutrient-dense foods")
			} else {
				recs = append(recs, "Monitor weight gain with your ASHA worker")
			}
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "Continue regular prenatal care and checkups")
	}
	return recs
}
