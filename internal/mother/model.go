package mother

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MedicalHistory holds the named chronic-condition flags that feed the
// risk assessment. Absent conditions are simply false.
type MedicalHistory struct {
	Diabetes              bool `json:"diabetes"`
	Hypertension          bool `json:"hypertension"`
	HeartDisease          bool `json:"heart_disease"`
	PreviousComplications bool `json:"previous_complications"`
	GestationalDiabetes   bool `json:"gestational_diabetes"`
	PreeclampsiaHistory   bool `json:"preeclampsia_history"`
}

// Count returns the number of flagged conditions.
func (h MedicalHistory) Count() int {
	n := 0
	for _, f := range []bool{
		h.Diabetes, h.Hypertension, h.HeartDisease,
		h.PreviousComplications, h.GestationalDiabetes, h.PreeclampsiaHistory,
	} {
		if f {
			n++
		}
	}
	return n
}

// Snapshot is the structured input of one assessment: vitals, reported
// symptoms and history flags as they stood at assessment time. It is built
// once per call and never mutated afterwards. BP and hemoglobin use
// pointers because a mother may not have those measurements on hand; the
// evaluators skip the checks they cannot run rather than guessing.
type Snapshot struct {
	Age           int      `json:"age"`
	HeightCm      float64  `json:"height_cm,omitempty"`
	WeightKg      float64  `json:"weight_kg,omitempty"`
	BMI           float64  `json:"bmi,omitempty"`
	SystolicBP    *int     `json:"bp_systolic,omitempty"`
	DiastolicBP   *int     `json:"bp_diastolic,omitempty"`
	Hemoglobin    *float64 `json:"hemoglobin,omitempty"`
	PregnancyWeek int      `json:"pregnancy_week"`
	Symptoms      []string `json:"symptoms,omitempty"`

	History MedicalHistory `json:"medical_history"`

	MultiplePregnancy           bool `json:"multiple_pregnancy"`
	HasHospitalPlan             bool `json:"has_hospital_plan"`
	FirstTrimesterComplications bool `json:"first_trimester_complications"`
}

// defaultHeightCm is the documented population fallback used when BMI must
// be derived from weight alone.
const defaultHeightCm = 160

// EffectiveBMI returns the stated BMI, or derives it from height and weight
// when it was not supplied directly. Returns 0 when nothing usable exists.
func (s Snapshot) EffectiveBMI() float64 {
	if s.BMI > 0 {
		return s.BMI
	}
	if s.WeightKg <= 0 {
		return 0
	}
	h := s.HeightCm
	if h <= 0 {
		h = defaultHeightCm
	}
	m := h / 100
	return s.WeightKg / (m * m)
}

// Validate rejects values outside plausible physiological bounds. The core
// evaluators assume pre-validated input, so this runs at the API boundary.
// Bounds follow the registration schema of the original deployment.
func (s Snapshot) Validate() error {
	if s.Age < 15 || s.Age > 50 {
		return fmt.Errorf("age %d out of range [15,50]", s.Age)
	}
	if s.BMI != 0 && (s.BMI < 10 || s.BMI > 50) {
		return fmt.Errorf("bmi %.1f out of range [10,50]", s.BMI)
	}
	if s.SystolicBP != nil && (*s.SystolicBP < 60 || *s.SystolicBP > 250) {
		return fmt.Errorf("systolic bp %d out of range [60,250]", *s.SystolicBP)
	}
	if s.DiastolicBP != nil && (*s.DiastolicBP < 30 || *s.DiastolicBP > 150) {
		return fmt.Errorf("diastolic bp %d out of range [30,150]", *s.DiastolicBP)
	}
	if s.Hemoglobin != nil && (*s.Hemoglobin < 3 || *s.Hemoglobin > 20) {
		return fmt.Errorf("hemoglobin %.1f out of range [3,20]", *s.Hemoglobin)
	}
	if s.PregnancyWeek < 0 || s.PregnancyWeek > 42 {
		return fmt.Errorf("pregnancy week %d out of range [0,42]", s.PregnancyWeek)
	}
	return nil
}

// Profile is the registered mother record kept in the profile store.
type Profile struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Phone          string    `json:"phone" db:"phone"`
	Age            int       `json:"age" db:"age"`
	BMI            float64   `json:"bmi" db:"bmi"`
	Location       string    `json:"location" db:"location"`
	Language       string    `json:"preferred_language" db:"preferred_language"`
	TelegramChatID int64     `json:"telegram_chat_id,omitempty" db:"telegram_chat_id"`
	DueDate        time.Time `json:"due_date" db:"due_date"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// PregnancyWeek estimates the current gestational week from the due date,
// assuming a 40-week term. Clamped to [0,42].
func (p Profile) PregnancyWeek(now time.Time) int {
	daysLeft := int(p.DueDate.Sub(now).Hours() / 24)
	week := 40 - daysLeft/7
	if week < 0 {
		week = 0
	}
	if week > 42 {
		week = 42
	}
	return week
}

// Validate checks registration fields against the schema bounds.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(p.Phone) < 10 {
		return fmt.Errorf("phone must have at least 10 digits")
	}
	if p.Age < 15 || p.Age > 50 {
		return fmt.Errorf("age %d out of range [15,50]", p.Age)
	}
	if p.BMI != 0 && (p.BMI < 10 || p.BMI > 50) {
		return fmt.Errorf("bmi %.1f out of range [10,50]", p.BMI)
	}
	return nil
}
