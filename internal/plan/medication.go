package plan

import (
	"matruraksha/internal/mother"
	"matruraksha/internal/risk"
)

// Medication is one entry in the medication review.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Time      string `json:"time,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Note      string `json:"note,omitempty"`
}

// MedicationReview lists standard prenatal medication plus anything the
// current vitals call for, with a daily schedule and safety notes.
type MedicationReview struct {
	Regular     []Medication        `json:"regular_medications"`
	Conditional []Medication        `json:"conditional_medications"`
	Schedule    map[string][]string `json:"schedule"`
	Notes       []string            `json:"important_notes"`
}

// GenerateMedicationReview builds the review for one assessment. Iron is
// added below hemoglobin 11; a non-low blood-pressure factor adds a
// consult-only entry because BP medication must never be self-prescribed.
func GenerateMedicationReview(snap mother.Snapshot, assessment risk.Assessment) MedicationReview {
	review := MedicationReview{
		Regular: []Medication{
			{
				Name:      "Folic Acid",
				Dosage:    "5 mg",
				Frequency: "Once daily",
				Time:      "Morning after breakfast",
				Duration:  "Throughout pregnancy",
			},
			{
				Name:      "Calcium",
				Dosage:    "500 mg",
				Frequency: "Twice daily",
				Time:      "After meals",
				Duration:  "Throughout pregnancy",
			},
		},
		Conditional: []Medication{},
		Schedule: map[string][]string{
			"morning":   {"Folic Acid", "Iron (if prescribed)"},
			"afternoon": {"Calcium"},
			"evening":   {"Calcium"},
		},
		Notes: []string{
			"Take medications at the same time daily",
			"Do not skip doses",
			"Take iron separately from calcium (2 hours apart)",
			"Report any side effects to your doctor",
			"Keep all medications out of reach of children",
		},
	}

	if snap.Hemoglobin != nil && *snap.Hemoglobin < 11 {
		review.Conditional = append(review.Conditional, Medication{
			Name:      "Iron (Ferrous Sulfate)",
			Dosage:    "100-200 mg",
			Frequency: "Once daily",
			Time:      "Morning with orange juice",
			Note:      "May cause constipation - increase fiber intake",
		})
	}
	for _, f := range assessment.Factors {
		if f.Factor == risk.FactorBloodPressure && f.Tier != risk.TierLow {
			review.Conditional = append(review.Conditional, Medication{
				Name: "Consult doctor for BP medication",
				Note: "Do not self-medicate for blood pressure",
			})
		}
	}
	return review
}

// MedicationAdvice is the defined fallback reply for conversational
// medication turns.
func MedicationAdvice() string {
	return "Take your medications exactly as prescribed. Iron absorbs better with " +
		"vitamin C, so pair it with orange juice or amla, and keep it 2 hours apart " +
		"from calcium. Never start or stop a medicine without your doctor's advice."
}
