package asha

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"matruraksha/internal/emergency"
)

// Alert is the emergency notification record handed to the messaging
// collaborator when an assessment flags an emergency.
type Alert struct {
	AlertType     string    `json:"alert_type"`
	MotherID      uuid.UUID `json:"mother_id"`
	MotherName    string    `json:"mother_name,omitempty"`
	EmergencyType string    `json:"emergency_type"`
	Severity      string    `json:"severity"`
	Location      string    `json:"location,omitempty"`
	Worker        Worker    `json:"asha_worker"`
	SentAt        time.Time `json:"sent_at"`
}

// BuildAlert assembles the alert for one flagged emergency.
func BuildAlert(motherID uuid.UUID, name, location string, e emergency.Assessment) Alert {
	return Alert{
		AlertType:     "emergency",
		MotherID:      motherID,
		MotherName:    name,
		EmergencyType: e.Type,
		Severity:      string(e.Severity),
		Location:      location,
		Worker:        assignedWorker(),
		SentAt:        time.Now(),
	}
}

// Message renders the alert as the text sent over the messaging channel.
func (a Alert) Message(e emergency.Assessment) string {
	var b strings.Builder
	b.WriteString("EMERGENCY ALERT\n\n")
	if a.MotherName != "" {
		fmt.Fprintf(&b, "Mother: %s\n", a.MotherName)
	}
	fmt.Fprintf(&b, "Type: %s\nSeverity: %s\n", a.EmergencyType, a.Severity)
	if a.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", a.Location)
	}
	b.WriteString("\nImmediate actions:\n")
	for _, action := range e.Actions {
		fmt.Fprintf(&b, "- %s\n", action)
	}
	fmt.Fprintf(&b, "\nAmbulance: %s | Helpline: %s",
		e.Contacts.Ambulance, e.Contacts.Helpline)
	return b.String()
}
