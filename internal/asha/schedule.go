// Package asha covers coordination with community health workers: the
// follow-up visit schedule derived from a risk level, the emergency alert
// record sent when an assessment escalates, and the conversational
// community-health reply.
package asha

import (
	"time"

	"github.com/google/uuid"

	"matruraksha/internal/risk"
)

// Worker identifies the community health worker assigned to an area.
type Worker struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Area  string `json:"area"`
}

// FollowUp is a scheduled home visit.
type FollowUp struct {
	MotherID      uuid.UUID `json:"mother_id"`
	VisitType     string    `json:"visit_type"`
	DaysUntil     int       `json:"days_until_visit"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Purpose       []string  `json:"visit_purpose"`
	Worker        Worker    `json:"asha_worker"`
}

// visitCadence maps the overall risk level to follow-up urgency. Total:
// every tier has exactly one row.
var visitCadence = map[risk.Tier]struct {
	Days int
	Type string
}{
	risk.TierCritical: {Days: 1, Type: "Emergency home visit"},
	risk.TierHigh:     {Days: 3, Type: "Urgent home visit"},
	risk.TierMedium:   {Days: 7, Type: "Regular checkup"},
	risk.TierLow:      {Days: 14, Type: "Routine visit"},
}

// ScheduleFollowUp books the next home visit for a mother based on her
// assessment. Runs only when no emergency was flagged; emergencies go
// through SendEmergencyAlert instead.
func ScheduleFollowUp(motherID uuid.UUID, assessment risk.Assessment, now time.Time) FollowUp {
	cadence := visitCadence[assessment.RiskLevel]
	return FollowUp{
		MotherID:      motherID,
		VisitType:     cadence.Type,
		DaysUntil:     cadence.Days,
		ScheduledDate: now.AddDate(0, 0, cadence.Days),
		Purpose:       visitPurpose(assessment),
		Worker:        assignedWorker(),
	}
}

// visitPurpose builds the visit checklist: the standard items plus one
// line per concerning factor.
func visitPurpose(assessment risk.Assessment) []string {
	purpose := []string{
		"Check vital signs (BP, weight)",
		"Review medication compliance",
		"Assess nutrition status",
	}
	for _, f := range assessment.Concerns() {
		switch f.Factor {
		case risk.FactorBloodPressure:
			purpose = append(purpose, "Monitor blood pressure closely")
		case risk.FactorHemoglobin:
			purpose = append(purpose, "Check for anemia symptoms")
		case risk.FactorBMI:
			purpose = append(purpose, "Nutritional counseling")
		}
	}
	return append(purpose, "Answer any questions or concerns")
}

// assignedWorker resolves the ASHA worker for the mother's area. Worker
// rosters live outside this service; a fixed assignment stands in until
// the roster integration lands.
func assignedWorker() Worker {
	return Worker{
		Name:  "Asha Devi",
		Phone: "+91-9876543210",
		Area:  "Sector 5",
	}
}

// Advice is the defined fallback reply for community-health turns.
func Advice() string {
	return "Your ASHA worker can help with home visits, vaccination schedules and " +
		"government maternal-health schemes. Visit your nearest anganwadi center or " +
		"ask here to schedule a home visit."
}
