package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/group8-health/health/internal"
)

// stubPredictor returns a fixed class, recording the features it saw.
type stubPredictor struct {
	class    int
	err      error
	features []float64
}

func (s *stubPredictor) Predict(ctx context.Context, features []float64) (int, error) {
	s.features = features
	return s.class, s.err
}

func TestRecommendationsFor_AllTiersComplete(t *testing.T) {
	for _, tier := range []internal.RiskTier{internal.RiskLow, internal.RiskHigh} {
		bundle, err := RecommendationsFor(tier)
		assert.NoError(t, err)
		assert.Len(t, bundle, len(RecommendationCategories))
		for _, category := range RecommendationCategories {
			assert.NotEmpty(t, bundle[category], "tier %s category %s", tier, category)
		}
	}
}

func TestRecommendationsFor_UnknownTier(t *testing.T) {
	_, err := RecommendationsFor(internal.RiskTier(5))
	assert.ErrorIs(t, err, internal.ErrUnknownTier)
}

func TestClassifyRisk_FeatureOrder(t *testing.T) {
	p := &stubPredictor{class: 1}
	v := internal.Vitals{BMI: 31.2, HeartRate: 95, Systolic: 150, Diastolic: 95, Age: 52}

	tier, err := ClassifyRisk(context.Background(), p, v)
	assert.NoError(t, err)
	assert.Equal(t, internal.RiskHigh, tier)
	assert.Equal(t, []float64{31.2, 95, 150, 95, 52}, p.features)
}

func TestClassifyRisk_ModelError(t *testing.T) {
	p := &stubPredictor{err: internal.ErrModelUnavailable}
	_, err := ClassifyRisk(context.Background(), p, internal.Vitals{})
	assert.ErrorIs(t, err, internal.ErrModelUnavailable)
}

func TestClassifyRisk_OutOfRangeClass(t *testing.T) {
	p := &stubPredictor{class: 3}
	_, err := ClassifyRisk(context.Background(), p, internal.Vitals{})
	assert.ErrorIs(t, err, internal.ErrModelUnavailable)
}

func TestAssessRisk_HighTierBundle(t *testing.T) {
	user := &internal.User{ID: "u1", Name: "Jane", Age: 52}
	records := []internal.DailyRecord{
		{UserID: "u1", Date: time.Now().AddDate(0, 0, -1), Weight: 70, Height: 165, BloodPressure: "118/78", HeartRate: 72},
		{UserID: "u1", Date: time.Now(), Weight: 78, Height: 158, BloodPressure: "150/95", HeartRate: 95, Oxygen: 97},
	}

	a, err := AssessRisk(context.Background(), &stubPredictor{class: 1}, user, records)
	assert.NoError(t, err)
	assert.Equal(t, "High", a.Risk)
	assert.Equal(t, 150, a.Vitals.Systolic)
	assert.Equal(t, 95, a.Vitals.Diastolic)
	assert.Equal(t, 52, a.Vitals.Age)
	assert.Contains(t, a.Recommendations["Proteins"], "Skinless poultry, Low-fat dairy, Beans, Soy milk")
}

func TestAssessRisk_NoRecords(t *testing.T) {
	user := &internal.User{ID: "u1"}
	_, err := AssessRisk(context.Background(), &stubPredictor{}, user, nil)
	assert.Error(t, err)
}

func TestLatestVitals_MalformedBloodPressure(t *testing.T) {
	user := &internal.User{ID: "u1", Age: 40}
	records := []internal.DailyRecord{
		{UserID: "u1", Date: time.Now(), Weight: 70, Height: 170, BloodPressure: "n/a", HeartRate: 80},
	}

	v, err := LatestVitals(user, records)
	assert.NoError(t, err)
	assert.Equal(t, 0, v.Systolic)
	assert.Equal(t, 0, v.Diastolic)
}

func TestAssessRisk_ModelErrorPropagates(t *testing.T) {
	user := &internal.User{ID: "u1", Age: 40}
	records := []internal.DailyRecord{
		{UserID: "u1", Date: time.Now(), Weight: 70, Height: 170, BloodPressure: "120/80", HeartRate: 80},
	}
	_, err := AssessRisk(context.Background(), &stubPredictor{err: errors.New("boom")}, user, records)
	assert.Error(t, err)
}
