package intent

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// FallbackClassifier is the optional generative-text collaborator used
// when keyword scoring finds nothing. It returns a single category token.
type FallbackClassifier interface {
	ClassifyFreeText(ctx context.Context, text string) (string, error)
}

// Classifier maps free text onto a Label. Deterministic and total:
// emergency keywords override everything, then domain keyword counts are
// compared, then the fallback tier runs, and any remaining ambiguity
// resolves to Care.
type Classifier struct {
	fallback FallbackClassifier
	logger   *zap.Logger
}

// NewClassifier builds a classifier. fallback may be nil; classification
// then degrades to the documented Care default on zero keyword hits.
func NewClassifier(fallback FallbackClassifier, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{fallback: fallback, logger: logger}
}

// Classify returns the domain label for one query.
func (c *Classifier) Classify(ctx context.Context, text string) Label {
	lower := strings.ToLower(text)

	for _, kw := range emergencyKeywords {
		if strings.Contains(lower, kw) {
			c.logger.Info("emergency keyword matched", zap.String("keyword", kw))
			return Emergency
		}
	}

	best := Label("")
	bestCount := 0
	for _, domain := range domainKeywords {
		count := 0
		for _, kw := range domain.Keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		// Strictly greater: on a tie the earlier domain keeps the slot.
		if count > bestCount {
			best = domain.Label
			bestCount = count
		}
	}
	if bestCount > 0 {
		return best
	}

	if c.fallback != nil {
		token, err := c.fallback.ClassifyFreeText(ctx, text)
		if err != nil {
			c.logger.Warn("fallback classification failed", zap.Error(err))
			return Care
		}
		return mapToken(token)
	}
	return Care
}

// mapToken maps the collaborator's single-word category onto the label
// set. Anything unknown defaults to Care.
func mapToken(token string) Label {
	switch Label(strings.ToLower(strings.TrimSpace(token))) {
	case Emergency:
		return Emergency
	case Medication:
		return Medication
	case Nutrition:
		return Nutrition
	case Risk:
		return Risk
	case CommunityHealth:
		return CommunityHealth
	case Care:
		return Care
	case General:
		return General
	default:
		return Care
	}
}
