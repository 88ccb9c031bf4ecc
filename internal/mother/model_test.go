package mother

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotValidate(t *testing.T) {
	sys, dia := 118, 76
	hb := 12.5
	valid := Snapshot{
		Age:           30,
		BMI:           23,
		SystolicBP:    &sys,
		DiastolicBP:   &dia,
		Hemoglobin:    &hb,
		PregnancyWeek: 20,
	}
	assert.NoError(t, valid.Validate())

	t.Run("age out of range", func(t *testing.T) {
		s := valid
		s.Age = -1
		assert.Error(t, s.Validate())
		s.Age = 60
		assert.Error(t, s.Validate())
	})
	t.Run("implausible bp", func(t *testing.T) {
		s := valid
		bad := 300
		s.SystolicBP = &bad
		assert.Error(t, s.Validate())
	})
	t.Run("week out of range", func(t *testing.T) {
		s := valid
		s.PregnancyWeek = 45
		assert.Error(t, s.Validate())
	})
	t.Run("missing vitals are allowed", func(t *testing.T) {
		s := Snapshot{Age: 30, PregnancyWeek: 20}
		assert.NoError(t, s.Validate())
	})
}

func TestEffectiveBMI(t *testing.T) {
	assert.Equal(t, 23.0, Snapshot{BMI: 23}.EffectiveBMI())

	// Derived from height and weight: 60 kg at 1.50 m is 26.67.
	derived := Snapshot{HeightCm: 150, WeightKg: 60}.EffectiveBMI()
	assert.InDelta(t, 26.67, derived, 0.01)

	// Weight only: the documented 160 cm default height applies.
	fallback := Snapshot{WeightKg: 64}.EffectiveBMI()
	assert.InDelta(t, 25.0, fallback, 0.01)

	assert.Zero(t, Snapshot{}.EffectiveBMI())
}

func TestMedicalHistoryCount(t *testing.T) {
	assert.Zero(t, MedicalHistory{}.Count())
	assert.Equal(t, 2, MedicalHistory{Diabetes: true, PreeclampsiaHistory: true}.Count())
	assert.Equal(t, 6, MedicalHistory{
		Diabetes: true, Hypertension: true, HeartDisease: true,
		PreviousComplications: true, GestationalDiabetes: true, PreeclampsiaHistory: true,
	}.Count())
}

func TestProfilePregnancyWeek(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// Due in 10 weeks: week 30.
	p := Profile{DueDate: now.AddDate(0, 0, 70)}
	assert.Equal(t, 30, p.PregnancyWeek(now))

	// Overdue dates clamp at 42.
	p = Profile{DueDate: now.AddDate(0, 0, -30)}
	assert.Equal(t, 42, p.PregnancyWeek(now))

	// Far-future due dates clamp at 0.
	p = Profile{DueDate: now.AddDate(1, 0, 0)}
	assert.Equal(t, 0, p.PregnancyWeek(now))
}

func TestProfileValidate(t *testing.T) {
	valid := Profile{Name: "Priya", Phone: "9876543210", Age: 28, BMI: 23.5}
	assert.NoError(t, valid.Validate())

	p := valid
	p.Name = ""
	assert.Error(t, p.Validate())

	p = valid
	p.Phone = "12345"
	assert.Error(t, p.Validate())

	p = valid
	p.Age = 12
	assert.Error(t, p.Validate())
}
