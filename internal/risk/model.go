package risk

// Tier is the ordinal severity bucket for a single factor or the aggregate.
type Tier string

const (
	TierLow      Tier = "low"
	TierMedium   Tier = "medium"
	TierHigh     Tier = "high"
	TierCritical Tier = "critical"
)

// rank orders tiers for comparisons. Unknown tiers rank lowest.
func (t Tier) rank() int {
	switch t {
	case TierCritical:
		return 3
	case TierHigh:
		return 2
	case TierMedium:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether t is as severe as other.
func (t Tier) AtLeast(other Tier) bool {
	return t.rank() >= other.rank()
}

// FactorResult is the output of one evaluator: the factor name, the value
// it observed, its tier and weight, and a user-facing reason when the tier
// is not low.
type FactorResult struct {
	Factor  string  `json:"factor"`
	Value   string  `json:"observed_value"`
	Tier    Tier    `json:"risk_tier"`
	Score   float64 `json:"score"`
	Message string  `json:"message,omitempty"`
}

// Assessment combines the six factor results into one overall picture.
// Factors always holds all six results in evaluation order, including the
// low ones; only non-low entries surface in user-facing summaries.
type Assessment struct {
	RiskLevel       Tier           `json:"risk_level"`
	AverageScore    float64        `json:"average_score"`
	MaxScore        float64        `json:"max_score"`
	Factors         []FactorResult `json:"factor_results"`
	Recommendations []string       `json:"recommendations"`
	NextCheckup     string         `json:"next_checkup"`
}

// Concerns returns the non-low factor results, the ones worth showing to
// the mother or an ASHA worker.
func (a Assessment) Concerns() []FactorResult {
	var out []FactorResult
	for _, f := range a.Factors {
		if f.Tier != TierLow {
			out = append(out, f)
		}
	}
	return out
}
