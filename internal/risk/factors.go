package risk

import (
	"fmt"

	"matruraksha/internal/mother"
)

// Factor names, fixed evaluation order. The aggregate always reports all
// six in this order.
const (
	FactorAge            = "age"
	FactorBMI            = "bmi"
	FactorBloodPressure  = "blood_pressure"
	FactorHemoglobin     = "hemoglobin"
	FactorHistory        = "medical_history"
	FactorPregnancyStage = "pregnancy_stage"
)

// Each evaluator is a pure function from one measurement to a FactorResult.
// They are independent of each other on purpose: a factor can be re-banded
// or re-weighted without touching its siblings or the aggregation rule.

func evaluateAge(age int) FactorResult {
	r := FactorResult{Factor: FactorAge, Value: fmt.Sprintf("%d years", age)}
	switch {
	case age >= 20 && age <= 35:
		r.Tier, r.Score = TierLow, 0.1
	case (age >= 18 && age < 20) || (age > 35 && age <= 40):
		r.Tier, r.Score = TierMedium, 0.4
		r.Message = "Maternal age outside the optimal 20-35 band needs closer monitoring"
	default:
		r.Tier, r.Score = TierHigh, 0.8
		r.Message = "Maternal age carries elevated complication risk; regular specialist care advised"
	}
	return r
}

func evaluateBMI(snap mother.Snapshot) FactorResult {
	bmi := snap.EffectiveBMI()
	r := FactorResult{Factor: FactorBMI, Value: fmt.Sprintf("%.1f", bmi)}
	if bmi <= 0 {
		// Nothing to evaluate; report as low rather than guessing.
		r.Value = "not recorded"
		r.Tier, r.Score = TierLow, 0.1
		return r
	}
	switch {
	case bmi >= 18.5 && bmi <= 25:
		r.Tier, r.Score = TierLow, 0.1
	case (bmi >= 16 && bmi < 18.5) || (bmi > 25 && bmi <= 30):
		r.Tier, r.Score = TierMedium, 0.5
		if bmi < 18.5 {
			r.Message = "Underweight - the baby may not get enough nutrition"
		} else {
			r.Message = "Overweight - raises the chance of gestational diabetes and hypertension"
		}
	default:
		r.Tier, r.Score = TierHigh, 0.8
		r.Message = "BMI far outside the healthy range - nutritional intervention needed"
	}
	return r
}

func evaluateBloodPressure(systolic, diastolic *int) FactorResult {
	r := FactorResult{Factor: FactorBloodPressure}
	if systolic == nil || diastolic == nil {
		r.Value = "not recorded"
		r.Tier, r.Score = TierLow, 0.1
		return r
	}
	sys, dia := *systolic, *diastolic
	r.Value = fmt.Sprintf("%d/%d mmHg", sys, dia)
	switch {
	case sys < 140 && dia < 90:
		r.Tier, r.Score = TierLow, 0.1
	case (sys >= 140 && sys < 160) || (dia >= 90 && dia < 100):
		r.Tier, r.Score = TierHigh, 0.7
		r.Message = "Elevated blood pressure - possible pre-eclampsia"
	default:
		r.Tier, r.Score = TierCritical, 0.9
		r.Message = "Severely elevated blood pressure - immediate medical attention needed"
	}
	return r
}

func evaluateHemoglobin(hb *float64) FactorResult {
	r := FactorResult{Factor: FactorHemoglobin}
	if hb == nil {
		r.Value = "not recorded"
		r.Tier, r.Score = TierLow, 0.1
		return r
	}
	r.Value = fmt.Sprintf("%.1f g/dL", *hb)
	switch {
	case *hb >= 11:
		r.Tier, r.Score = TierLow, 0.1
	case *hb >= 9:
		r.Tier, r.Score = TierMedium, 0.5
		r.Message = "Mild anemia - low hemoglobin reduces oxygen supply to the baby"
	default:
		r.Tier, r.Score = TierHigh, 0.8
		r.Message = "Severe anemia - urgent iron therapy required"
	}
	return r
}

func evaluateHistory(h mother.MedicalHistory) FactorResult {
	n := h.Count()
	r := FactorResult{Factor: FactorHistory, Value: fmt.Sprintf("%d known conditions", n)}
	switch {
	case n == 0:
		r.Tier, r.Score = TierLow, 0.1
	case n == 1:
		r.Tier, r.Score = TierMedium, 0.5
		r.Message = "An existing medical condition can complicate pregnancy and needs monitoring"
	default:
		r.Tier, r.Score = TierHigh, 0.8
		r.Message = "Multiple existing conditions compound each other's risks"
	}
	return r
}

func evaluatePregnancyStage(snap mother.Snapshot) FactorResult {
	r := FactorResult{
		Factor: FactorPregnancyStage,
		Value:  fmt.Sprintf("week %d", snap.PregnancyWeek),
		Score:  0.1,
	}

	issue := false
	if snap.PregnancyWeek < 12 && snap.FirstTrimesterComplications {
		r.Score = max(r.Score, 0.6)
		r.Message = "First-trimester complications - early pregnancy needs careful follow-up"
		issue = true
	}
	if snap.PregnancyWeek > 37 && !snap.HasHospitalPlan {
		r.Score = max(r.Score, 0.4)
		r.Message = "Close to term without a delivery plan - arrange a hospital now"
		issue = true
	}
	if snap.MultiplePregnancy {
		r.Score = max(r.Score, 0.6)
		r.Message = "Multiple pregnancy - twins or more carry higher delivery risk"
		issue = true
	}

	switch {
	case r.Score >= 0.7 || snap.MultiplePregnancy:
		r.Tier = TierHigh
	case issue:
		r.Tier = TierMedium
	default:
		r.Tier = TierLow
	}
	return r
}

// Evaluate runs all six factor evaluators against one snapshot and returns
// their results in fixed order.
func Evaluate(snap mother.Snapshot) []FactorResult {
	return []FactorResult{
		evaluateAge(snap.Age),
		evaluateBMI(snap),
		evaluateBloodPressure(snap.SystolicBP, snap.DiastolicBP),
		evaluateHemoglobin(snap.Hemoglobin),
		evaluateHistory(snap.History),
		evaluatePregnancyStage(snap),
	}
}
