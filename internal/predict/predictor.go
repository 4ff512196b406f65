package predict

import "context"

// Predictor is the narrow seam around the pretrained hypertension risk model.
// Predict takes the feature vector [bmi, heart_rate, systolic, diastolic, age]
// and returns the model's discrete class (0 or 1).
type Predictor interface {
	Predict(ctx context.Context, features []float64) (int, error)
}
