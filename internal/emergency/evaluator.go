package emergency

import (
	"fmt"
	"strings"
	"time"

	"matruraksha/internal/mother"
	"matruraksha/internal/risk"
)

// Assessment is the binary emergency decision derived from one snapshot
// and its risk assessment. It never exists independent of those inputs.
type Assessment struct {
	IsEmergency bool      `json:"is_emergency"`
	Type        string    `json:"emergency_type,omitempty"`
	Severity    Severity  `json:"severity"`
	Actions     []string  `json:"immediate_actions"`
	Contacts    Contacts  `json:"emergency_contacts"`
	AssessedAt  time.Time `json:"assessed_at"`
}

// Evaluate decides emergency status from reported symptoms, vital signs
// and the aggregated risk level. Three triggers are checked in fixed
// order and the first match determines the reported type, severity and
// action list; later triggers never override an earlier match:
//
//  1. symptom text matching an emergency protocol
//  2. vital thresholds: systolic BP >= 160, then hemoglobin < 7
//  3. overall risk level critical
//
// Missing vitals skip their threshold check; no default is substituted
// that could mask or fabricate an emergency.
func Evaluate(snap mother.Snapshot, riskResult risk.Assessment) Assessment {
	out := Assessment{
		Severity:   SeverityNormal,
		Actions:    []string{},
		Contacts:   Directory(),
		AssessedAt: time.Now(),
	}

	if p, ok := matchSymptoms(snap.Symptoms); ok {
		out.IsEmergency = true
		out.Type = p.Key
		out.Severity = p.Severity
		out.Actions = p.Instructions
		return out
	}

	if snap.SystolicBP != nil && *snap.SystolicBP >= 160 {
		out.IsEmergency = true
		out.Type = "severe_hypertension"
		out.Severity = SeverityCritical
		out.Actions = []string{
			"Check blood pressure again in 15 minutes",
			"If still high, go to emergency immediately",
			"Lie down on left side",
			"Do not take any medication without doctor approval",
		}
		return out
	}

	if snap.Hemoglobin != nil && *snap.Hemoglobin < 7 {
		out.IsEmergency = true
		out.Type = "severe_anemia"
		out.Severity = SeverityCritical
		out.Actions = []string{
			"Immediate medical attention required",
			"Blood transfusion may be needed",
			"Do not travel alone",
		}
		return out
	}

	if riskResult.RiskLevel == risk.TierCritical {
		out.IsEmergency = true
		out.Type = "critical_risk_factors"
		out.Severity = SeverityHigh
		out.Actions = []string{
			"Schedule immediate doctor consultation",
			"Do not delay medical care",
			"Monitor symptoms closely",
		}
	}

	return out
}

// matchSymptoms scans reported symptoms against the protocol table and
// returns the first protocol whose phrase appears in any symptom.
func matchSymptoms(symptoms []string) (Protocol, bool) {
	for _, symptom := range symptoms {
		for _, p := range protocols {
			if p.Matches(symptom) {
				return p, true
			}
		}
	}
	return Protocol{}, false
}

// HandleQuery answers a conversational emergency turn. If the query text
// names a protocol symptom the matching protocol is activated; otherwise
// the mother is pointed at the ambulance line and asked for detail.
func HandleQuery(query string) string {
	lower := strings.ToLower(query)
	for _, p := range protocols {
		for _, word := range strings.Split(p.Key, "_") {
			if strings.Contains(lower, word) {
				var b strings.Builder
				b.WriteString("EMERGENCY PROTOCOL ACTIVATED\n\n")
				fmt.Fprintf(&b, "Action: %s\n", p.Action)
				if p.Condition != "" {
					fmt.Fprintf(&b, "Possible condition: %s\n", p.Condition)
				}
				b.WriteString("\nImmediate steps:\n")
				for _, step := range p.Instructions {
					fmt.Fprintf(&b, "- %s\n", step)
				}
				fmt.Fprintf(&b, "\nAmbulance: %s", Directory().Ambulance)
				return b.String()
			}
		}
	}
	return "If you are experiencing an emergency, please call 108 immediately. " +
		"Otherwise, describe your symptoms in detail so I can help."
}
