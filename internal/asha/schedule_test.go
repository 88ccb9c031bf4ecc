package asha

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"matruraksha/internal/emergency"
	"matruraksha/internal/risk"
)

func TestScheduleFollowUpCadence(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	id := uuid.New()

	tests := []struct {
		level risk.Tier
		days  int
		visit string
	}{
		{risk.TierCritical, 1, "Emergency home visit"},
		{risk.TierHigh, 3, "Urgent home visit"},
		{risk.TierMedium, 7, "Regular checkup"},
		{risk.TierLow, 14, "Routine visit"},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			f := ScheduleFollowUp(id, risk.Assessment{RiskLevel: tt.level}, now)
			assert.Equal(t, tt.days, f.DaysUntil)
			assert.Equal(t, tt.visit, f.VisitType)
			assert.Equal(t, now.AddDate(0, 0, tt.days), f.ScheduledDate)
			assert.NotEmpty(t, f.Worker.Name)
		})
	}
}

func TestVisitPurposeReflectsConcerns(t *testing.T) {
	assessment := risk.Assessment{
		RiskLevel: risk.TierHigh,
		Factors: []risk.FactorResult{
			{Factor: risk.FactorBloodPressure, Tier: risk.TierHigh},
			{Factor: risk.FactorHemoglobin, Tier: risk.TierMedium},
			{Factor: risk.FactorAge, Tier: risk.TierLow},
		},
	}
	f := ScheduleFollowUp(uuid.New(), assessment, time.Now())

	assert.Contains(t, f.Purpose, "Monitor blood pressure closely")
	assert.Contains(t, f.Purpose, "Check for anemia symptoms")
	assert.NotContains(t, f.Purpose, "Nutritional counseling")
}

func TestAlertMessageIncludesActionsAndContacts(t *testing.T) {
	e := emergency.Assessment{
		IsEmergency: true,
		Type:        "severe_hypertension",
		Severity:    emergency.SeverityCritical,
		Actions:     []string{"Lie down on left side"},
		Contacts:    emergency.Directory(),
	}
	alert := BuildAlert(uuid.New(), "Priya", "Dharavi, Mumbai", e)

	assert.Equal(t, "emergency", alert.AlertType)
	assert.Equal(t, "severe_hypertension", alert.EmergencyType)

	msg := alert.Message(e)
	assert.Contains(t, msg, "Priya")
	assert.Contains(t, msg, "Lie down on left side")
	assert.Contains(t, msg, "108")
}
