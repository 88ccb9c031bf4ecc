package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matruraksha/internal/mother"
	"matruraksha/internal/risk"
)

func floatPtr(v float64) *float64 { return &v }

func TestCarePlanAdjustsToRiskLevel(t *testing.T) {
	snap := mother.Snapshot{Age: 30, PregnancyWeek: 20}

	low := GenerateCarePlan(snap, risk.TierLow)
	assert.Len(t, low.DailyTasks, 3)
	assert.Equal(t, "Moderate exercise", low.Exercise.Type)
	assert.Equal(t, "Monthly", low.Checkups.Frequency)

	high := GenerateCarePlan(snap, risk.TierHigh)
	assert.Len(t, high.DailyTasks, 5)
	assert.Equal(t, "Light activities only", high.Exercise.Type)
	assert.Equal(t, "Weekly", high.Checkups.Frequency)

	critical := GenerateCarePlan(snap, risk.TierCritical)
	assert.Equal(t, "Every 2-3 days", critical.Checkups.Frequency)
	assert.Equal(t, "108", critical.EmergencyLines.Ambulance)
	assert.NotEmpty(t, critical.WarningSigns)
}

func TestNutritionPlanConditionalAdvice(t *testing.T) {
	snap := mother.Snapshot{Age: 30, PregnancyWeek: 20, Hemoglobin: floatPtr(9.5)}
	assessment := risk.Assess(snap)

	p := GenerateNutritionPlan(snap, assessment)
	require.NotEmpty(t, p.SpecialAdvice)
	assert.Contains(t, p.SpecialAdvice[0], "Anemia diet")

	snap.History.GestationalDiabetes = true
	p = GenerateNutritionPlan(snap, risk.Assess(snap))
	joined := ""
	for _, s := range p.SpecialAdvice {
		joined += s + "\n"
	}
	assert.Contains(t, joined, "Diabetic diet")
}

func TestNutritionPlanTrimesterFocus(t *testing.T) {
	first := GenerateNutritionPlan(mother.Snapshot{PregnancyWeek: 8}, risk.Assessment{})
	assert.Contains(t, first.TrimesterFocus, "First trimester")

	third := GenerateNutritionPlan(mother.Snapshot{PregnancyWeek: 36}, risk.Assessment{})
	assert.Contains(t, third.TrimesterFocus, "Third trimester")
}

func TestMedicationReviewConditionals(t *testing.T) {
	snap := mother.Snapshot{Age: 30, PregnancyWeek: 20, Hemoglobin: floatPtr(12.5)}
	review := GenerateMedicationReview(snap, risk.Assess(snap))
	assert.Len(t, review.Regular, 2)
	assert.Empty(t, review.Conditional)

	snap.Hemoglobin = floatPtr(10)
	review = GenerateMedicationReview(snap, risk.Assess(snap))
	require.Len(t, review.Conditional, 1)
	assert.Contains(t, review.Conditional[0].Name, "Iron")

	sys, dia := 150, 95
	snap.SystolicBP, snap.DiastolicBP = &sys, &dia
	review = GenerateMedicationReview(snap, risk.Assess(snap))
	require.Len(t, review.Conditional, 2)
	assert.Contains(t, review.Conditional[1].Name, "Consult doctor")
}

func TestAdviceFallbacksAreDefined(t *testing.T) {
	assert.NotEmpty(t, CareAdvice())
	assert.NotEmpty(t, NutritionAdvice())
	assert.NotEmpty(t, MedicationAdvice())
}
