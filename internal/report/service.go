package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/signintech/gopdf"
	"go.uber.org/zap"

	"matruraksha/internal/orchestrator"
)

type TelegramClient interface {
	SendMessage(chatID int64, text string) error
	SendDocument(chatID int64, fileData []byte, fileName string) error
}

// Service renders assessment results as PDF reports and delivers them to
// the supervising doctor's chat.
type Service struct {
	tgClient     TelegramClient
	doctorChatID int64
	logger       *zap.Logger
}

func NewService(tg TelegramClient, doctorChatID int64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		tgClient:     tg,
		doctorChatID: doctorChatID,
		logger:       logger,
	}
}

// SendDoctorReport renders one assessment and sends it as a PDF document.
func (s *Service) SendDoctorReport(ctx context.Context, motherName string, res orchestrator.Result) error {
	s.logger.Info("generating assessment report", zap.String("mother_id", res.MotherID.String()))

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	// Try multiple common font paths for Alpine Linux
	fontPaths := []string{
		"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return fmt.Errorf("failed to load font for PDF, ensure ttf-dejavu is installed: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return err
	}
	pdf.Cell(nil, "MatruRaksha Risk Assessment Report")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil { return err }
	pdf.Cell(nil, fmt.Sprintf("Date: %s", time.Now().Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Mother: %s (ID: %s)", motherName, res.MotherID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Risk Level: %s (avg %.2f, max %.2f)",
		res.Risk.RiskLevel, res.Risk.AverageScore, res.Risk.MaxScore))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Next checkup: %s", res.Risk.NextCheckup))
	pdf.Br(25)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil { return err }
	pdf.Cell(nil, "Concerning factors:")
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil { return err }
	concerns := res.Risk.Concerns()
	if len(concerns) == 0 {
		pdf.Cell(nil, "- No concerning factors identified.")
		pdf.Br(15)
	}
	for _, f := range concerns {
		line := fmt.Sprintf("- [%s] %s (%s): %s", f.Tier, f.Factor, f.Value, f.Message)
		lines, _ := pdf.SplitText(line, 500)
		for _, l := range lines {
			pdf.Cell(nil, l)
			pdf.Br(12)
		}
		pdf.Br(5)
	}
	pdf.Br(15)

	if res.Emergency != nil && res.Emergency.IsEmergency {
		if err := pdf.SetFont("DejaVu", "", 14); err != nil { return err }
		pdf.Cell(nil, fmt.Sprintf("EMERGENCY: %s (severity %s)", res.Emergency.Type, res.Emergency.Severity))
		pdf.Br(15)
		if err := pdf.SetFont("DejaVu", "", 11); err != nil { return err }
		for _, action := range res.Emergency.Actions {
			pdf.Cell(nil, "- "+action)
			pdf.Br(12)
		}
		pdf.Br(15)
	}

	if len(res.Risk.Recommendations) > 0 {
		if err := pdf.SetFont("DejaVu", "", 14); err != nil { return err }
		pdf.Cell(nil, "Recommendations:")
		pdf.Br(15)
		if err := pdf.SetFont("DejaVu", "", 11); err != nil { return err }
		for _, rec := range res.Risk.Recommendations {
			lines, _ := pdf.SplitText("- "+rec, 500)
			for _, l := range lines {
				pdf.Cell(nil, l)
				pdf.Br(12)
			}
		}
	}

	pdf.SetY(270)
	if err := pdf.SetFont("DejaVu", "", 9); err != nil { return err }
	pdf.Cell(nil, "Risk signals only - clinical confirmation by a doctor is required.")

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fileName := fmt.Sprintf("assessment_%s.pdf", res.MotherID)
	if err := s.tgClient.SendDocument(s.doctorChatID, buf.Bytes(), fileName); err != nil {
		s.logger.Error("failed to send report document", zap.Error(err))
		return err
	}
	s.logger.Info("assessment report sent", zap.Int64("doctor_chat_id", s.doctorChatID))
	return nil
}
