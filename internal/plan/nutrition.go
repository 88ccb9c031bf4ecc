package plan

import (
	"matruraksha/internal/mother"
	"matruraksha/internal/risk"
)

// NutritionPlan is the diet guidance generated on every assessment.
type NutritionPlan struct {
	DailyMeals     []string `json:"daily_meals"`
	KeyNutrients   []string `json:"key_nutrients"`
	FoodsToAvoid   []string `json:"foods_to_avoid"`
	SpecialAdvice  []string `json:"special_advice,omitempty"`
	HydrationGoal  string   `json:"hydration_goal"`
	TrimesterFocus string   `json:"trimester_focus"`
}

// GenerateNutritionPlan builds trimester-aware diet guidance, with extra
// items when the hemoglobin factor or a diabetes flag calls for them.
func GenerateNutritionPlan(snap mother.Snapshot, assessment risk.Assessment) NutritionPlan {
	p := NutritionPlan{
		DailyMeals: []string{
			"Breakfast: whole grains with milk and fruit",
			"Mid-morning: a handful of nuts or a banana",
			"Lunch: dal, rice or roti, green vegetables, curd",
			"Evening: sprouts or roasted chana",
			"Dinner: light meal with vegetables and protein",
		},
		KeyNutrients: []string{
			"Folic acid 400-800 mcg daily",
			"Iron 27 mg daily",
			"Calcium 1000 mg daily",
			"Protein 70-100 g daily",
		},
		FoodsToAvoid: []string{
			"Raw or undercooked meat, fish and eggs",
			"Unpasteurized dairy",
			"High-mercury fish",
			"Excessive caffeine",
			"Alcohol, completely",
		},
		HydrationGoal:  "8-10 glasses of water daily",
		TrimesterFocus: trimesterFocus(snap.PregnancyWeek),
	}

	for _, f := range assessment.Factors {
		if f.Factor == risk.FactorHemoglobin && f.Tier != risk.TierLow {
			p.SpecialAdvice = append(p.SpecialAdvice,
				"Anemia diet: green leafy vegetables, jaggery, dates, with lemon or amla for absorption",
				"Avoid tea or coffee within 2 hours of iron-rich meals",
			)
		}
	}
	if snap.History.Diabetes || snap.History.GestationalDiabetes {
		p.SpecialAdvice = append(p.SpecialAdvice,
			"Diabetic diet: small frequent meals, whole grains over refined, avoid sugary drinks",
		)
	}
	return p
}

func trimesterFocus(week int) string {
	switch {
	case week < 13:
		return "First trimester: folic acid and small frequent meals to manage nausea"
	case week < 28:
		return "Second trimester: iron and calcium for the baby's rapid growth"
	default:
		return "Third trimester: protein and energy-dense foods, smaller portions more often"
	}
}

// NutritionAdvice is the defined fallback reply for conversational
// nutrition turns.
func NutritionAdvice() string {
	return "Eat balanced meals with dal, green vegetables, whole grains and dairy. " +
		"Take iron-rich foods like leafy greens and jaggery with a source of vitamin C, " +
		"and drink 8-10 glasses of water daily. Avoid raw foods and alcohol entirely."
}
