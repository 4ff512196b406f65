package service

import "github.com/group8-health/health/internal"

// The advice categories every bundle carries, in presentation order.
var RecommendationCategories = []string{
	"Proteins",
	"Food Items",
	"Exercise",
	"Mental Wellness",
	"Hydration",
	"Sleep Hygiene",
}

// catalog is the fixed care-advice lookup keyed by risk tier. Built once;
// callers must treat returned bundles as read-only.
var catalog = map[internal.RiskTier]internal.RecommendationBundle{
	internal.RiskLow: {
		"Proteins":        {"Lean chicken, Fish, Eggs, Greek yogurt, Tofu, Lentils"},
		"Food Items":      {"Leafy greens, Berries, Whole grains, Almonds, Olive oil"},
		"Exercise":        {"30 mins of moderate exercise daily"},
		"Mental Wellness": {"Practice mindfulness meditation for 10 minutes a day"},
		"Hydration":       {"Drink 8-10 glasses of water daily"},
		"Sleep Hygiene":   {"Aim for 7-8 hours of sleep per night"},
	},
	internal.RiskHigh: {
		"Proteins":        {"Skinless poultry, Low-fat dairy, Beans, Soy milk"},
		"Food Items":      {"High-fiber vegetables, Low-sodium foods, Potassium-rich foods"},
		"Exercise":        {"20-30 mins of light to moderate exercise, 3-5 days a week"},
		"Mental Wellness": {"Engage in relaxation techniques and reduce stress"},
		"Hydration":       {"Increase water intake, limit caffeine and alcohol"},
		"Sleep Hygiene":   {"Prioritize 7-8 hours of sleep, reduce caffeine intake"},
	},
}

// RecommendationsFor returns the fixed advice bundle for the tier.
func RecommendationsFor(tier internal.RiskTier) (internal.RecommendationBundle, error) {
	bundle, ok := catalog[tier]
	if !ok {
		return nil, internal.ErrUnknownTier
	}
	return bundle, nil
}
