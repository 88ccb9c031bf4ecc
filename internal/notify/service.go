// Package notify is the messaging collaborator: it delivers emergency
// alerts and assessment summaries over Telegram on a best-effort basis.
// The orchestrator fires it in the background and never waits for it.
package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"matruraksha/internal/asha"
	"matruraksha/internal/emergency"
	"matruraksha/internal/risk"
)

type TelegramClient interface {
	SendMessage(chatID int64, text string) error
}

// Service sends alerts to the ASHA coordination chat and summaries to the
// mother's own chat when she has one linked.
type Service struct {
	tg         TelegramClient
	ashaChatID int64
	logger     *zap.Logger
}

func NewService(tg TelegramClient, ashaChatID int64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{tg: tg, ashaChatID: ashaChatID, logger: logger}
}

// NotifyEmergency delivers the emergency alert to the ASHA coordination
// chat. Implements orchestrator.Notifier.
func (s *Service) NotifyEmergency(ctx context.Context, alert asha.Alert, e emergency.Assessment) error {
	if s.tg == nil || s.ashaChatID == 0 {
		s.logger.Warn("emergency alert dropped: no telegram channel configured",
			zap.String("mother_id", alert.MotherID.String()))
		return nil
	}
	if err := s.tg.SendMessage(s.ashaChatID, alert.Message(e)); err != nil {
		return fmt.Errorf("emergency alert delivery failed: %w", err)
	}
	s.logger.Info("emergency alert delivered",
		zap.String("mother_id", alert.MotherID.String()),
		zap.String("type", alert.EmergencyType),
	)
	return nil
}

// SendAssessmentSummary messages the mother her own risk summary.
func (s *Service) SendAssessmentSummary(ctx context.Context, chatID int64, assessment risk.Assessment) error {
	if s.tg == nil || chatID == 0 {
		return nil
	}
	msg := fmt.Sprintf("%s Health Update\n\nRisk level: %s\nNext checkup: %s\n",
		riskEmoji(assessment.RiskLevel), assessment.RiskLevel, assessment.NextCheckup)
	for i, rec := range assessment.Recommendations {
		if i == 5 {
			break
		}
		msg += fmt.Sprintf("\n- %s", rec)
	}
	msg += "\n\nThis is a risk signal, not a diagnosis. Your ASHA worker or doctor will confirm."
	return s.tg.SendMessage(chatID, msg)
}

func riskEmoji(level risk.Tier) string {
	switch level {
	case risk.TierCritical:
		return "🔴"
	case risk.TierHigh:
		return "🟠"
	case risk.TierMedium:
		return "🟡"
	default:
		return "🟢"
	}
}
