package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"matruraksha/internal/mother"
	"matruraksha/internal/orchestrator"
	"matruraksha/internal/risk"
)

// ReportService sends the doctor-facing PDF after an escalated assessment.
type ReportService interface {
	SendDoctorReport(ctx context.Context, motherName string, res orchestrator.Result) error
}

// SummarySender messages the mother her assessment summary.
type SummarySender interface {
	SendAssessmentSummary(ctx context.Context, chatID int64, assessment risk.Assessment) error
}

type Handler struct {
	repo      mother.Repository
	orch      *orchestrator.Orchestrator
	reportSvc ReportService
	summaries SummarySender
	logger    *zap.Logger
}

func NewHandler(repo mother.Repository, orch *orchestrator.Orchestrator, reportSvc ReportService, summaries SummarySender, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, orch: orch, reportSvc: reportSvc, summaries: summaries, logger: logger}
}

type registerRequest struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Age            int     `json:"age"`
	BMI            float64 `json:"bmi"`
	Location       string  `json:"location"`
	Language       string  `json:"preferred_language"`
	TelegramChatID int64   `json:"telegram_chat_id"`
	DueDate        string  `json:"due_date"` // "2006-01-02"
}

func (h *Handler) RegisterMother(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		http.Error(w, "Invalid due_date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	p := &mother.Profile{
		ID:             uuid.New(),
		Name:           req.Name,
		Phone:          req.Phone,
		Age:            req.Age,
		BMI:            req.BMI,
		Location:       req.Location,
		Language:       req.Language,
		TelegramChatID: req.TelegramChatID,
		DueDate:        dueDate,
	}
	if p.Language == "" {
		p.Language = "en"
	}
	if err := p.Validate(); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.SaveProfile(r.Context(), p); err != nil {
		h.logger.Error("failed to save profile", zap.Error(err))
		http.Error(w, "Failed to register mother", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"mother_id": p.ID.String()})
}

func (h *Handler) GetMother(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid mother ID", http.StatusBadRequest)
		return
	}
	p, err := h.repo.GetProfile(r.Context(), id)
	if err != nil {
		http.Error(w, "Mother not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) ListMothers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.repo.ListProfiles(r.Context())
	if err != nil {
		h.logger.Error("failed to list profiles", zap.Error(err))
		http.Error(w, "Failed to list mothers", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"mothers": profiles, "count": len(profiles)})
}

// AssessMother runs the full pipeline for a registered mother. The request
// body supplies the visit vitals; age, BMI and pregnancy week come from
// the profile unless overridden.
func (h *Handler) AssessMother(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid mother ID", http.StatusBadRequest)
		return
	}

	var snap mother.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	p, err := h.repo.GetProfile(r.Context(), id)
	if err != nil {
		http.Error(w, "Mother not found", http.StatusNotFound)
		return
	}
	if snap.Age == 0 {
		snap.Age = p.Age
	}
	if snap.BMI == 0 && snap.WeightKg == 0 {
		snap.BMI = p.BMI
	}
	if snap.PregnancyWeek == 0 {
		snap.PregnancyWeek = p.PregnancyWeek(time.Now())
	}

	// InvalidRange is a boundary concern: the evaluators assume
	// pre-validated input.
	if err := snap.Validate(); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	subject := orchestrator.Subject{ID: p.ID, Name: p.Name, Location: p.Location}
	res := h.orch.Assess(r.Context(), subject, snap)

	h.deliverFollowups(p, res)
	writeJSON(w, http.StatusOK, res)
}

type assessRequest struct {
	Name     string          `json:"name,omitempty"`
	Location string          `json:"location,omitempty"`
	Snapshot mother.Snapshot `json:"snapshot"`
}

// Assess runs the pipeline for an unregistered snapshot, for callers that
// hold the vitals themselves (ASHA tools, document-analysis ingestion).
func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := req.Snapshot.Validate(); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	subject := orchestrator.Subject{ID: uuid.New(), Name: req.Name, Location: req.Location}
	res := h.orch.Assess(r.Context(), subject, req.Snapshot)
	writeJSON(w, http.StatusOK, res)
}

type queryRequest struct {
	Query string `json:"query"`
}

func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		http.Error(w, "Query is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.orch.Route(r.Context(), req.Query))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "matruraksha",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// deliverFollowups hands post-assessment messaging to the collaborators in
// the background: the mother's summary always, the doctor PDF when the
// risk level escalated.
func (h *Handler) deliverFollowups(p *mother.Profile, res *orchestrator.Result) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if h.summaries != nil && p.TelegramChatID != 0 {
			if err := h.summaries.SendAssessmentSummary(ctx, p.TelegramChatID, res.Risk); err != nil {
				h.logger.Warn("failed to send assessment summary", zap.Error(err))
			}
		}
		if h.reportSvc != nil && res.Risk.RiskLevel.AtLeast(risk.TierHigh) {
			if err := h.reportSvc.SendDoctorReport(ctx, p.Name, *res); err != nil {
				h.logger.Warn("failed to send doctor report", zap.Error(err))
			}
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/health", h.Health)
	r.Post("/mothers", h.RegisterMother)
	r.Get("/mothers", h.ListMothers)
	r.Get("/mothers/{id}", h.GetMother)
	r.Post("/mothers/{id}/assess", h.AssessMother)
	r.Post("/assess", h.Assess)
	r.Post("/query", h.Query)
}
