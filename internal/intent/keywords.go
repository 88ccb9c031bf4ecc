package intent

// Label is the classified topical domain of a free-text query. Closed set.
type Label string

const (
	Emergency       Label = "emergency"
	Medication      Label = "medication"
	Nutrition       Label = "nutrition"
	Risk            Label = "risk"
	CommunityHealth Label = "community_health"
	Care            Label = "care"
	General         Label = "general"
)

// emergencyKeywords short-circuit all domain scoring. A query containing
// any of these routes to the emergency handler no matter what else it
// mentions; safety phrases must never lose to a higher keyword count in
// another domain.
var emergencyKeywords = []string{
	"bleeding",
	"severe pain",
	"can't breathe",
	"cannot breathe",
	"chest pain",
	"dizzy",
	"dizziness",
	"fainting",
	"fainted",
	"contractions",
	"baby not moving",
	"baby stopped moving",
	"water broke",
	"fluid leaking",
	"unconscious",
	"seizure",
	"stroke",
	"emergency",
	"urgent help",
}

// domainKeywords are scored by substring count. The slice order is the
// documented tie-break: domains are scanned in this order and the first
// one reaching the maximal count wins.
var domainKeywords = []struct {
	Label    Label
	Keywords []string
}{
	{Medication, []string{
		"medicine", "medication", "tablet", "dose", "pill",
		"iron tablet", "folic", "calcium", "supplement", "prescri",
	}},
	{Nutrition, []string{
		"food", "nutrition", "diet", "eat", "meal",
		"recipe", "hungry", "vitamin", "milk", "fruit",
	}},
	{Risk, []string{
		"risk", "assess", "check my", "blood pressure", "sugar",
		"diabetes", "complication", "danger", "safe for", "anemia",
	}},
	{CommunityHealth, []string{
		"asha", "anganwadi", "home visit", "appointment", "scheme",
		"health worker", "vaccination", "checkup", "hospital near", "clinic",
	}},
	{Care, []string{
		"sleep", "rest", "exercise", "yoga", "walk",
		"routine", "tired", "care plan", "travel", "work",
	}},
}
