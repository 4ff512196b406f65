package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/group8-health/health/internal"
)

// modelParams is the on-disk form of the exported model: a linear scorer
// with a sigmoid link, written out when the model was trained.
type modelParams struct {
	Weights   []float64 `json:"weights"`
	Bias      float64   `json:"bias"`
	Threshold float64   `json:"threshold"`
}

type LocalModel struct {
	params modelParams
	logger internal.Logger
}

// NewLocalModel loads model parameters from path. A missing or malformed
// model file surfaces as ErrModelUnavailable so callers fail closed.
func NewLocalModel(path string, logger internal.Logger) (*LocalModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf("predict: failed to read model file %s: %v", path, err)
		return nil, fmt.Errorf("%w: %v", internal.ErrModelUnavailable, err)
	}
	var p modelParams
	if err := json.Unmarshal(data, &p); err != nil {
		logger.Errorf("predict: failed to parse model file %s: %v", path, err)
		return nil, fmt.Errorf("%w: %v", internal.ErrModelUnavailable, err)
	}
	if len(p.Weights) == 0 {
		return nil, fmt.Errorf("%w: model file has no weights", internal.ErrModelUnavailable)
	}
	if p.Threshold == 0 {
		p.Threshold = 0.5
	}
	return &LocalModel{params: p, logger: logger}, nil
}

func (m *LocalModel) Predict(ctx context.Context, features []float64) (int, error) {
	if len(features) != len(m.params.Weights) {
		return 0, fmt.Errorf("%w: expected %d features, got %d",
			internal.ErrModelUnavailable, len(m.params.Weights), len(features))
	}
	z := m.params.Bias
	for i, w := range m.params.Weights {
		z += w * features[i]
	}
	score := 1 / (1 + math.Exp(-z))
	if score >= m.params.Threshold {
		return 1, nil
	}
	return 0, nil
}

var _ Predictor = (*LocalModel)(nil)
