package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/group8-health/health/internal"
)

// RemoteModel forwards the feature vector to an external inference service.
type RemoteModel struct {
	inferURL   string
	httpClient *http.Client
	logger     internal.Logger
}

func NewRemoteModel(url string, logger internal.Logger) *RemoteModel {
	return &RemoteModel{
		inferURL:   url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type inferRequest struct {
	Features []float64 `json:"features"`
}

type inferResponse struct {
	Prediction int `json:"prediction"`
}

func (m *RemoteModel) Predict(ctx context.Context, features []float64) (int, error) {
	body, err := json.Marshal(inferRequest{Features: features})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", internal.ErrModelUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.inferURL+"/infer", bytes.NewBuffer(body))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", internal.ErrModelUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.Errorf("predict: inference call failed: %v", err)
		return 0, fmt.Errorf("%w: %v", internal.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		m.logger.Errorf("predict: inference service returned %d: %s", resp.StatusCode, string(b))
		return 0, fmt.Errorf("%w: inference service returned %d", internal.ErrModelUnavailable, resp.StatusCode)
	}

	var out inferResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("%w: %v", internal.ErrModelUnavailable, err)
	}
	return out.Prediction, nil
}

var _ Predictor = (*RemoteModel)(nil)
