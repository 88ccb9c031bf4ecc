// Package orchestrator sequences the assessment pipeline and routes
// conversational turns. It holds no per-mother state: every call builds
// its result from the snapshot it was given.
package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"matruraksha/internal/agent"
	"matruraksha/internal/asha"
	"matruraksha/internal/emergency"
	"matruraksha/internal/intent"
	"matruraksha/internal/mother"
	"matruraksha/internal/plan"
	"matruraksha/internal/risk"
)

// Notifier delivers messages to the outside world. Delivery is
// best-effort: the orchestrator fires it in the background and never
// blocks an assessment on the outcome.
type Notifier interface {
	NotifyEmergency(ctx context.Context, alert asha.Alert, e emergency.Assessment) error
}

// AssessmentStore persists completed assessments for the audit trail.
type AssessmentStore interface {
	SaveAssessment(ctx context.Context, motherID uuid.UUID, assessment any) error
}

// Subject identifies who is being assessed; name and location only feed
// the outgoing alert text.
type Subject struct {
	ID       uuid.UUID
	Name     string
	Location string
}

// Result is the combined output of one full assessment run.
type Result struct {
	MotherID   uuid.UUID              `json:"mother_id"`
	Timestamp  time.Time              `json:"timestamp"`
	Risk       risk.Assessment        `json:"risk_assessment"`
	Emergency  *emergency.Assessment  `json:"emergency_assessment,omitempty"`
	CarePlan   *plan.CarePlan         `json:"care_plan,omitempty"`
	Nutrition  *plan.NutritionPlan    `json:"nutrition_plan,omitempty"`
	Medication *plan.MedicationReview `json:"medication_plan,omitempty"`
	FollowUp   *asha.FollowUp         `json:"asha_schedule,omitempty"`
	Stages     []string               `json:"stages_executed"`
	Status     string                 `json:"overall_status"`
	Error      string                 `json:"error,omitempty"`
}

// RouteResult is the outcome of one conversational turn.
type RouteResult struct {
	Intent intent.Label `json:"intent"`
	Reply  string       `json:"handler_reply"`
}

type Orchestrator struct {
	classifier *intent.Classifier
	notifier   Notifier
	store      AssessmentStore
	llm        agent.Client
	logger     *zap.Logger
}

// New builds an orchestrator. notifier, store and llm may be nil; the
// pipeline then runs with those side paths disabled.
func New(notifier Notifier, store AssessmentStore, llm agent.Client, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	var fallback intent.FallbackClassifier
	if llm != nil {
		fallback = llm
	}
	return &Orchestrator{
		classifier: intent.NewClassifier(fallback, logger),
		notifier:   notifier,
		store:      store,
		llm:        llm,
		logger:     logger,
	}
}

// Assess runs the full pipeline for one snapshot:
//
//  1. risk aggregation, never skipped
//  2. emergency evaluation when risk is high or critical, with a
//     background alert on a flagged emergency
//  3. the three plan generators, always, concurrently
//  4. a follow-up visit unless an emergency was flagged
//
// Later stages never discard earlier results: if anything panics
// mid-pipeline, the result carries status "error" plus whatever the
// completed stages produced.
func (o *Orchestrator) Assess(ctx context.Context, subject Subject, snap mother.Snapshot) (res *Result) {
	res = &Result{
		MotherID:  subject.ID,
		Timestamp: time.Now(),
		Stages:    []string{},
		Status:    "processing",
	}
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("assessment stage panicked", zap.Any("panic", r))
			res.Status = "error"
			res.Error = fmt.Sprint(r)
		}
	}()

	res.Risk = risk.Assess(snap)
	res.Stages = append(res.Stages, "risk")
	o.logger.Info("risk assessed",
		zap.String("mother_id", subject.ID.String()),
		zap.String("risk_level", string(res.Risk.RiskLevel)),
		zap.Float64("max_score", res.Risk.MaxScore),
	)

	if res.Risk.RiskLevel.AtLeast(risk.TierHigh) {
		e := emergency.Evaluate(snap, res.Risk)
		res.Emergency = &e
		res.Stages = append(res.Stages, "emergency")

		if e.IsEmergency {
			o.logger.Warn("emergency detected",
				zap.String("mother_id", subject.ID.String()),
				zap.String("type", e.Type),
				zap.String("severity", string(e.Severity)),
			)
			o.sendAlert(subject, e)
			res.Stages = append(res.Stages, "asha_alert")
		}
	}

	// Plan generators are informational, not risk-gated, and independent
	// of each other, so they run concurrently.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		p := plan.GenerateCarePlan(snap, res.Risk.RiskLevel)
		res.CarePlan = &p
	}()
	go func() {
		defer wg.Done()
		p := plan.GenerateNutritionPlan(snap, res.Risk)
		res.Nutrition = &p
	}()
	go func() {
		defer wg.Done()
		p := plan.GenerateMedicationReview(snap, res.Risk)
		res.Medication = &p
	}()
	wg.Wait()
	res.Stages = append(res.Stages, "care", "nutrition", "medication")

	if res.Emergency == nil || !res.Emergency.IsEmergency {
		f := asha.ScheduleFollowUp(subject.ID, res.Risk, res.Timestamp)
		res.FollowUp = &f
		res.Stages = append(res.Stages, "follow_up")
	}

	res.Status = "completed"
	o.persist(subject.ID, res)
	return res
}

// sendAlert hands the emergency off to the messaging collaborator in the
// background. The assessment returns without waiting for delivery.
func (o *Orchestrator) sendAlert(subject Subject, e emergency.Assessment) {
	if o.notifier == nil {
		return
	}
	alert := asha.BuildAlert(subject.ID, subject.Name, subject.Location, e)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := o.notifier.NotifyEmergency(ctx, alert, e); err != nil {
			o.logger.Error("emergency notification failed",
				zap.String("mother_id", subject.ID.String()), zap.Error(err))
		}
	}()
}

// persist stores the completed result in the background; a storage
// failure degrades to a log line, never to a failed assessment.
func (o *Orchestrator) persist(motherID uuid.UUID, res *Result) {
	if o.store == nil {
		return
	}
	snapshot := *res
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := o.store.SaveAssessment(ctx, motherID, snapshot); err != nil {
			o.logger.Error("failed to persist assessment",
				zap.String("mother_id", motherID.String()), zap.Error(err))
		}
	}()
}

// Route classifies one free-text query and dispatches it to the matching
// domain handler. The full assessment pipeline is not involved.
func (o *Orchestrator) Route(ctx context.Context, text string) RouteResult {
	label := o.classifier.Classify(ctx, text)
	o.logger.Info("query routed", zap.String("intent", string(label)))

	switch label {
	case intent.Emergency:
		return RouteResult{Intent: label, Reply: emergency.HandleQuery(text)}
	case intent.Medication:
		return RouteResult{Intent: label, Reply: o.answer(ctx, text, plan.MedicationAdvice())}
	case intent.Nutrition:
		return RouteResult{Intent: label, Reply: o.answer(ctx, text, plan.NutritionAdvice())}
	case intent.Risk:
		return RouteResult{Intent: label, Reply: o.answer(ctx, text, riskAdvice)}
	case intent.CommunityHealth:
		return RouteResult{Intent: label, Reply: o.answer(ctx, text, asha.Advice())}
	default:
		return RouteResult{Intent: label, Reply: o.answer(ctx, text, plan.CareAdvice())}
	}
}

const riskAdvice = "Keep track of your blood pressure, weight and any unusual symptoms, and " +
	"share them at every checkup. A risk signal is not a diagnosis - your doctor or ASHA " +
	"worker will confirm what it means for you."

// answer asks the generative collaborator for a tailored reply and falls
// back to the domain's canned text when it is absent or failing.
func (o *Orchestrator) answer(ctx context.Context, query, fallback string) string {
	if o.llm == nil {
		return fallback
	}
	reply, err := o.llm.Answer(ctx, query)
	if err != nil || reply == "" {
		o.logger.Warn("generative reply unavailable, using fallback", zap.Error(err))
		return fallback
	}
	return reply
}
