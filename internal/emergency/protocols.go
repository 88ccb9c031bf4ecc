package emergency

import "strings"

// Severity of an emergency assessment.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Protocol is a static record mapping a symptom keyword to severity and an
// action checklist. Protocols are matched against reported symptoms by
// substring, with the key's underscores read as spaces.
type Protocol struct {
	Key          string
	Severity     Severity
	Action       string
	Condition    string
	Instructions []string
}

// Matches reports whether the reported symptom text contains this
// protocol's phrase. Matching is case-insensitive.
func (p Protocol) Matches(symptom string) bool {
	phrase := strings.ReplaceAll(p.Key, "_", " ")
	return strings.Contains(strings.ToLower(symptom), phrase)
}

// protocols is the ordered emergency-protocol table. Order matters: the
// first protocol matching any reported symptom wins, so scanning must be
// over this slice, never over a map.
var protocols = []Protocol{
	{
		Key:      "severe_bleeding",
		Severity: SeverityCritical,
		Action:   "Call ambulance immediately (108)",
		Instructions: []string{
			"Lie down with legs elevated",
			"Do not insert anything into vagina",
			"Keep track of blood loss",
			"Stay calm",
		},
	},
	{
		Key:       "severe_headache_vision",
		Severity:  SeverityCritical,
		Action:    "Emergency hospital visit",
		Condition: "Possible pre-eclampsia",
		Instructions: []string{
			"Check blood pressure immediately",
			"Go to hospital emergency",
			"Monitor for seizures",
		},
	},
	{
		Key:      "decreased_fetal_movement",
		Severity: SeverityHigh,
		Action:   "Contact doctor immediately",
		Instructions: []string{
			"Drink cold water and lie on left side",
			"Count movements for 2 hours",
			"If less than 10 movements, go to hospital",
		},
	},
	{
		Key:      "water_breaking",
		Severity: SeverityHigh,
		Action:   "Go to hospital",
		Instructions: []string{
			"Note the time",
			"Check fluid color (clear is normal)",
			"Do not insert anything",
			"Proceed to hospital",
		},
	},
	{
		Key:      "severe_abdominal_pain",
		Severity: SeverityCritical,
		Action:   "Emergency hospital visit",
		Instructions: []string{
			"Lie down in comfortable position",
			"Do not take any medication",
			"Call ambulance if severe",
		},
	},
}

// Contacts is the fixed emergency-contact directory included with every
// assessment, emergency or not.
type Contacts struct {
	Ambulance     string `json:"ambulance"`
	Helpline      string `json:"emergency_helpline"`
	WomenHelpline string `json:"women_helpline"`
}

// Directory returns the national emergency numbers.
func Directory() Contacts {
	return Contacts{
		Ambulance:     "108",
		Helpline:      "102",
		WomenHelpline: "1091",
	}
}
