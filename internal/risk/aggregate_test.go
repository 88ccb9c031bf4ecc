package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matruraksha/internal/mother"
)

func healthySnapshot() mother.Snapshot {
	return mother.Snapshot{
		Age:           30,
		BMI:           23,
		SystolicBP:    intPtr(118),
		DiastolicBP:   intPtr(76),
		Hemoglobin:    floatPtr(12.5),
		PregnancyWeek: 20,
	}
}

func TestAssessHealthyMother(t *testing.T) {
	a := Assess(healthySnapshot())

	assert.Equal(t, TierLow, a.RiskLevel)
	assert.Equal(t, "4 weeks", a.NextCheckup)
	assert.Len(t, a.Factors, 6)
	assert.Empty(t, a.Concerns())
	assert.InDelta(t, 0.1, a.AverageScore, 0.001)
	assert.InDelta(t, 0.1, a.MaxScore, 0.001)
}

func TestAssessCriticalMother(t *testing.T) {
	snap := mother.Snapshot{
		Age:           42,
		BMI:           32,
		SystolicBP:    intPtr(165),
		DiastolicBP:   intPtr(105),
		Hemoglobin:    floatPtr(6.5),
		PregnancyWeek: 30,
		History:       mother.MedicalHistory{Diabetes: true, Hypertension: true},
	}
	a := Assess(snap)

	assert.Equal(t, TierCritical, a.RiskLevel)
	assert.Equal(t, "within 24 hours", a.NextCheckup)
	require.NotEmpty(t, a.Recommendations)
	assert.Contains(t, a.Recommendations[0], "Urgent")
}

func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		max, avg float64
		want     Tier
	}{
		{"all low", 0.1, 0.1, TierLow},
		{"still low just under thresholds", 0.39, 0.29, TierLow},
		{"medium via max", 0.4, 0.15, TierMedium},
		{"medium via average", 0.3, 0.3, TierMedium},
		{"high via max", 0.7, 0.2, TierHigh},
		{"high via average", 0.5, 0.5, TierHigh},
		{"critical via max", 0.9, 0.25, TierCritical},
		{"critical via average", 0.6, 0.7, TierCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.max, tt.avg))
		})
	}
}

// Raising systolic pressure with everything else fixed must never lower
// the overall level.
func TestRiskIsMonotonicInBloodPressure(t *testing.T) {
	prev := 0
	for _, sys := range []int{110, 135, 142, 155, 161, 180} {
		snap := healthySnapshot()
		snap.SystolicBP = intPtr(sys)
		level := Assess(snap).RiskLevel
		assert.GreaterOrEqual(t, level.rank(), prev, "systolic %d", sys)
		prev = level.rank()
	}
}

func TestAssessIsIdempotent(t *testing.T) {
	snap := mother.Snapshot{
		Age:           38,
		BMI:           27,
		SystolicBP:    intPtr(150),
		DiastolicBP:   intPtr(92),
		Hemoglobin:    floatPtr(10),
		PregnancyWeek: 33,
		History:       mother.MedicalHistory{GestationalDiabetes: true},
	}
	first := Assess(snap)
	second := Assess(snap)
	assert.Equal(t, first, second)
}

func TestCheckupIntervalsAreTotal(t *testing.T) {
	for _, tier := range []Tier{TierLow, TierMedium, TierHigh, TierCritical} {
		assert.NotEmpty(t, NextCheckupInterval(tier), "tier %s", tier)
	}
}

func TestRecommendationsCoverConcerningFactors(t *testing.T) {
	snap := healthySnapshot()
	snap.SystolicBP = intPtr(150)
	snap.Hemoglobin = floatPtr(9.5)
	snap.BMI = 17

	a := Assess(snap)
	joined := ""
	for _, rec := range a.Recommendations {
		joined += rec + "\n"
	}
	assert.Contains(t, joined, "blood pressure")
	assert.Contains(t, joined, "iron")
	assert.Contains(t, joined, "caloric intake")
}
