// Package plan holds the informational plan generators executed on every
// full assessment: care plan, nutrition plan and medication review. They
// read the snapshot and the risk level but are never risk-gated, and they
// are pure, so the orchestrator may run them concurrently.
package plan

import (
	"matruraksha/internal/emergency"
	"matruraksha/internal/mother"
	"matruraksha/internal/risk"
)

// Task is one recurring daily care task.
type Task struct {
	Task     string `json:"task"`
	Time     string `json:"time"`
	Priority string `json:"priority"`
}

// CarePlan is the personalized daily routine for a mother.
type CarePlan struct {
	DailyTasks     []Task             `json:"daily_tasks"`
	Checkups       CheckupSchedule    `json:"weekly_checkups"`
	Exercise       ExercisePlan       `json:"exercise_plan"`
	Rest           RestGuidelines     `json:"rest_guidelines"`
	WarningSigns   []string           `json:"warning_signs"`
	EmergencyLines emergency.Contacts `json:"emergency_contacts"`
}

type CheckupSchedule struct {
	Frequency string `json:"frequency"`
	Type      string `json:"type"`
}

type ExercisePlan struct {
	Type       string   `json:"type"`
	Duration   string   `json:"duration"`
	Activities []string `json:"activities"`
}

type RestGuidelines struct {
	Sleep    string `json:"sleep"`
	Naps     string `json:"naps"`
	Position string `json:"position"`
	Breaks   string `json:"breaks"`
}

// GenerateCarePlan builds the care plan for one assessment.
func GenerateCarePlan(snap mother.Snapshot, level risk.Tier) CarePlan {
	return CarePlan{
		DailyTasks:     dailyTasks(level),
		Checkups:       checkupSchedule(level),
		Exercise:       exercisePlan(level),
		Rest:           restGuidelines(),
		WarningSigns:   warningSigns(),
		EmergencyLines: emergency.Directory(),
	}
}

func dailyTasks(level risk.Tier) []Task {
	tasks := []Task{
		{Task: "Take prenatal vitamins", Time: "09:00 AM", Priority: "high"},
		{Task: "Drink 8 glasses of water", Time: "Throughout day", Priority: "high"},
		{Task: "Monitor baby movements", Time: "Multiple times", Priority: "medium"},
	}
	if level.AtLeast(risk.TierHigh) {
		tasks = append(tasks,
			Task{Task: "Check blood pressure", Time: "Morning & Evening", Priority: "high"},
			Task{Task: "Rest for 2 hours", Time: "Afternoon", Priority: "high"},
		)
	}
	return tasks
}

func checkupSchedule(level risk.Tier) CheckupSchedule {
	switch level {
	case risk.TierCritical:
		return CheckupSchedule{Frequency: "Every 2-3 days", Type: "Doctor visit"}
	case risk.TierHigh:
		return CheckupSchedule{Frequency: "Weekly", Type: "Doctor visit"}
	case risk.TierMedium:
		return CheckupSchedule{Frequency: "Bi-weekly", Type: "ASHA checkup"}
	default:
		return CheckupSchedule{Frequency: "Monthly", Type: "ASHA checkup"}
	}
}

func exercisePlan(level risk.Tier) ExercisePlan {
	if level.AtLeast(risk.TierHigh) {
		return ExercisePlan{
			Type:       "Light activities only",
			Duration:   "10-15 minutes",
			Activities: []string{"Gentle walking", "Breathing exercises"},
		}
	}
	return ExercisePlan{
		Type:       "Moderate exercise",
		Duration:   "30 minutes daily",
		Activities: []string{"Walking", "Prenatal yoga", "Swimming"},
	}
}

func restGuidelines() RestGuidelines {
	return RestGuidelines{
		Sleep:    "8-9 hours at night",
		Naps:     "1-2 hours during day",
		Position: "Left side sleeping recommended",
		Breaks:   "Take breaks every 2 hours",
	}
}

func warningSigns() []string {
	return []string{
		"Severe headache or vision changes",
		"Severe abdominal pain",
		"Vaginal bleeding",
		"Decreased baby movements",
		"Severe swelling in face or hands",
		"Fever above 100.4 F",
	}
}

// CareAdvice answers a conversational care turn with a defined fallback
// text when no generative collaborator is wired in.
func CareAdvice() string {
	return "Follow your personalized care plan: attend all scheduled checkups, " +
		"take your prenatal vitamins daily, and rest on your left side. " +
		"Contact your ASHA worker or doctor if anything feels wrong."
}
