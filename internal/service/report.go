package service

import (
	"fmt"
	"strings"

	"github.com/group8-health/health/internal"
)

// BuildHealthReport renders the plain-text health summary handed to the
// notification channel. Layout: labeled metrics block followed by the full
// recommendation bundle grouped by category.
func BuildHealthReport(user *internal.User, a *RiskAssessment) string {
	var b strings.Builder

	name := user.Name
	if name == "" {
		name = "User"
	}
	fmt.Fprintf(&b, "Health Report for %s\n\n", name)
	fmt.Fprintf(&b, "BMI: %.1f\n", a.Vitals.BMI)
	fmt.Fprintf(&b, "Blood Pressure: %s\n", a.Vitals.BloodPressure)
	fmt.Fprintf(&b, "Heart Rate: %.0f bpm\n", a.Vitals.HeartRate)
	fmt.Fprintf(&b, "Oxygen Level: %.0f%%\n", a.Vitals.Oxygen)
	fmt.Fprintf(&b, "Hypertension Risk Level: %s\n", a.Tier)

	for _, category := range RecommendationCategories {
		items, ok := a.Recommendations[category]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s Recommendations:\n", category)
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return b.String()
}
