package emergency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matruraksha/internal/mother"
	"matruraksha/internal/risk"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func lowRisk() risk.Assessment {
	return risk.Assessment{RiskLevel: risk.TierLow}
}

func TestNoTriggerMeansNoEmergency(t *testing.T) {
	e := Evaluate(mother.Snapshot{
		SystolicBP: intPtr(118),
		Hemoglobin: floatPtr(12.5),
		Symptoms:   []string{"mild back pain"},
	}, lowRisk())

	assert.False(t, e.IsEmergency)
	assert.Equal(t, SeverityNormal, e.Severity)
	assert.Empty(t, e.Actions)
	// The contact directory is always attached, emergency or not.
	assert.Equal(t, "108", e.Contacts.Ambulance)
	assert.Equal(t, "102", e.Contacts.Helpline)
	assert.Equal(t, "1091", e.Contacts.WomenHelpline)
}

func TestSymptomMatchActivatesProtocol(t *testing.T) {
	e := Evaluate(mother.Snapshot{
		Symptoms: []string{"I noticed severe bleeding this morning"},
	}, lowRisk())

	require.True(t, e.IsEmergency)
	assert.Equal(t, "severe_bleeding", e.Type)
	assert.Equal(t, SeverityCritical, e.Severity)
	assert.Contains(t, e.Actions, "Lie down with legs elevated")
}

// Trigger order is strict first-match-wins: a symptom match is never
// overridden by a vital threshold firing on the same input.
func TestSymptomMatchBeatsVitalThreshold(t *testing.T) {
	e := Evaluate(mother.Snapshot{
		Symptoms:   []string{"severe bleeding"},
		SystolicBP: intPtr(170),
	}, lowRisk())

	require.True(t, e.IsEmergency)
	assert.Equal(t, "severe_bleeding", e.Type)
}

func TestHypertensionThreshold(t *testing.T) {
	e := Evaluate(mother.Snapshot{SystolicBP: intPtr(160)}, lowRisk())

	require.True(t, e.IsEmergency)
	assert.Equal(t, "severe_hypertension", e.Type)
	assert.Equal(t, SeverityCritical, e.Severity)
	assert.Len(t, e.Actions, 4)
}

func TestSevereAnemiaThreshold(t *testing.T) {
	e := Evaluate(mother.Snapshot{Hemoglobin: floatPtr(6.5)}, lowRisk())

	require.True(t, e.IsEmergency)
	assert.Equal(t, "severe_anemia", e.Type)
	assert.Equal(t, SeverityCritical, e.Severity)
	assert.Len(t, e.Actions, 3)
}

// BP is checked before hemoglobin, so when both thresholds fire the
// reported type is hypertension.
func TestHypertensionCheckedBeforeAnemia(t *testing.T) {
	e := Evaluate(mother.Snapshot{
		SystolicBP: intPtr(165),
		Hemoglobin: floatPtr(6.5),
	}, lowRisk())

	require.True(t, e.IsEmergency)
	assert.Equal(t, "severe_hypertension", e.Type)
}

func TestCriticalRiskEscalation(t *testing.T) {
	e := Evaluate(mother.Snapshot{
		SystolicBP: intPtr(120),
		Hemoglobin: floatPtr(11),
	}, risk.Assessment{RiskLevel: risk.TierCritical})

	require.True(t, e.IsEmergency)
	assert.Equal(t, "critical_risk_factors", e.Type)
	assert.Equal(t, SeverityHigh, e.Severity)
}

// Missing vitals skip their checks; they never crash and never trigger.
func TestMissingVitalsAreSkipped(t *testing.T) {
	e := Evaluate(mother.Snapshot{}, lowRisk())
	assert.False(t, e.IsEmergency)

	e = Evaluate(mother.Snapshot{Symptoms: []string{"water breaking"}}, lowRisk())
	assert.True(t, e.IsEmergency)
	assert.Equal(t, "water_breaking", e.Type)
}

func TestProtocolOrderDeterminesFirstMatch(t *testing.T) {
	// Both severe_bleeding and severe_abdominal_pain phrases appear;
	// the earlier protocol in the table wins.
	e := Evaluate(mother.Snapshot{
		Symptoms: []string{"severe bleeding and severe abdominal pain"},
	}, lowRisk())

	assert.Equal(t, "severe_bleeding", e.Type)
}

func TestHandleQuery(t *testing.T) {
	reply := HandleQuery("I think my water is breaking, what do I do")
	assert.Contains(t, reply, "EMERGENCY PROTOCOL ACTIVATED")
	assert.Contains(t, reply, "Note the time")

	reply = HandleQuery("something feels off")
	assert.Contains(t, reply, "108")
}
