package predict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/group8-health/health/internal"
)

func testLogger() internal.Logger {
	return internal.NewZapLogger(zap.NewNop().Sugar())
}

func writeModelFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "model.json")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLocalModel_Predict(t *testing.T) {
	path := writeModelFile(t, `{"weights": [0.09, 0.03, 0.05, 0.04, 0.02], "bias": -15.5, "threshold": 0.5}`)
	model, err := NewLocalModel(path, testLogger())
	assert.NoError(t, err)

	// Elevated vitals score above threshold.
	out, err := model.Predict(context.Background(), []float64{31.2, 95, 150, 95, 52})
	assert.NoError(t, err)
	assert.Equal(t, 1, out)

	// Normal vitals score below it.
	out, err = model.Predict(context.Background(), []float64{22, 70, 120, 80, 30})
	assert.NoError(t, err)
	assert.Equal(t, 0, out)
}

func TestLocalModel_Deterministic(t *testing.T) {
	path := writeModelFile(t, `{"weights": [0.09, 0.03, 0.05, 0.04, 0.02], "bias": -15.5}`)
	model, err := NewLocalModel(path, testLogger())
	assert.NoError(t, err)

	features := []float64{25, 80, 130, 85, 45}
	first, err := model.Predict(context.Background(), features)
	assert.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := model.Predict(context.Background(), features)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLocalModel_FeatureCountMismatch(t *testing.T) {
	path := writeModelFile(t, `{"weights": [0.1, 0.2], "bias": 0}`)
	model, err := NewLocalModel(path, testLogger())
	assert.NoError(t, err)

	_, err = model.Predict(context.Background(), []float64{1, 2, 3})
	assert.ErrorIs(t, err, internal.ErrModelUnavailable)
}

func TestLocalModel_LoadFailures(t *testing.T) {
	_, err := NewLocalModel(filepath.Join(t.TempDir(), "missing.json"), testLogger())
	assert.ErrorIs(t, err, internal.ErrModelUnavailable)

	badJSON := writeModelFile(t, `{weights}`)
	_, err = NewLocalModel(badJSON, testLogger())
	assert.ErrorIs(t, err, internal.ErrModelUnavailable)

	noWeights := writeModelFile(t, `{"bias": 1.0}`)
	_, err = NewLocalModel(noWeights, testLogger())
	assert.ErrorIs(t, err, internal.ErrModelUnavailable)
}

func TestRemoteModel_Predict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/infer", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prediction": 1}`))
	}))
	defer srv.Close()

	model := NewRemoteModel(srv.URL, testLogger())
	out, err := model.Predict(context.Background(), []float64{31.2, 95, 150, 95, 52})
	assert.NoError(t, err)
	assert.Equal(t, 1, out)
}

func TestRemoteModel_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	model := NewRemoteModel(srv.URL, testLogger())
	_, err := model.Predict(context.Background(), []float64{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, internal.ErrModelUnavailable)
}

func TestRemoteModel_Unreachable(t *testing.T) {
	model := NewRemoteModel("http://127.0.0.1:1", testLogger())
	_, err := model.Predict(context.Background(), []float64{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, internal.ErrModelUnavailable)
}
