package service

import (
	"context"
	"fmt"

	"github.com/group8-health/health/internal"
	"github.com/group8-health/health/internal/predict"
)

// RiskAssessment is the triage result handed to the presentation layer.
type RiskAssessment struct {
	Tier            internal.RiskTier             `json:"-"`
	Risk            string                        `json:"risk"`
	Vitals          internal.Vitals               `json:"vitals"`
	Recommendations internal.RecommendationBundle `json:"recommendations"`
}

// LatestVitals derives the model's feature set from the user profile and the
// newest daily record. Records are expected sorted ascending by date.
func LatestVitals(user *internal.User, records []internal.DailyRecord) (internal.Vitals, error) {
	if len(records) == 0 {
		return internal.Vitals{}, fmt.Errorf("no daily records for user %s", user.ID)
	}
	latest := records[len(records)-1]
	systolic, diastolic := internal.ParseBloodPressure(latest.BloodPressure)
	return internal.Vitals{
		BMI:           latest.BMI(),
		HeartRate:     latest.HeartRate,
		Systolic:      systolic,
		Diastolic:     diastolic,
		Age:           user.Age,
		BloodPressure: latest.BloodPressure,
		Oxygen:        latest.Oxygen,
	}, nil
}

// ClassifyRisk forwards the vitals to the predictor and maps its discrete
// output onto a risk tier. Any output outside {0, 1} is a model fault.
func ClassifyRisk(ctx context.Context, p predict.Predictor, v internal.Vitals) (internal.RiskTier, error) {
	features := []float64{v.BMI, v.HeartRate, float64(v.Systolic), float64(v.Diastolic), float64(v.Age)}
	out, err := p.Predict(ctx, features)
	if err != nil {
		return 0, err
	}
	switch out {
	case 0:
		return internal.RiskLow, nil
	case 1:
		return internal.RiskHigh, nil
	}
	return 0, fmt.Errorf("%w: model returned class %d", internal.ErrModelUnavailable, out)
}

// AssessRisk runs the full triage pipeline: latest vitals, classification,
// and the matching recommendation bundle.
func AssessRisk(ctx context.Context, p predict.Predictor, user *internal.User, records []internal.DailyRecord) (*RiskAssessment, error) {
	vitals, err := LatestVitals(user, records)
	if err != nil {
		return nil, err
	}
	tier, err := ClassifyRisk(ctx, p, vitals)
	if err != nil {
		return nil, err
	}
	bundle, err := RecommendationsFor(tier)
	if err != nil {
		return nil, err
	}
	return &RiskAssessment{
		Tier:            tier,
		Risk:            tier.String(),
		Vitals:          vitals,
		Recommendations: bundle,
	}, nil
}
