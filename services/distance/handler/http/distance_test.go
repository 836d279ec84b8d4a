package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazelia/storefront/internal/pkg/models"
)

type fakeDistanceUC struct {
	result *models.BatchResult
	err    error
	calls  int
}

func (f *fakeDistanceUC) EstimateBatch(_ context.Context, _ *models.Coordinate, _ []models.Destination, _ models.TravelMode) (*models.BatchResult, error) {
	f.calls++
	return f.result, f.err
}

func performEstimate(t *testing.T, uc *fakeDistanceUC, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/distances", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewDistanceHandler(uc)
	require.NoError(t, handler.Estimate(c))
	return rec
}

func validEstimateBody() map[string]interface{} {
	return map[string]interface{}{
		"origin": map[string]float64{"latitude": 48.8566, "longitude": 2.3522},
		"destinations": []map[string]interface{}{
			{"id": "r1", "coordinate": map[string]float64{"latitude": 48.86, "longitude": 2.35}},
		},
		"mode": "driving",
	}
}

func TestEstimate_Success(t *testing.T) {
	uc := &fakeDistanceUC{
		result: &models.BatchResult{
			Results: map[string]models.DistanceResult{
				"r1": models.NewDistanceResult(820, 240),
			},
		},
	}

	rec := performEstimate(t, uc, validEstimateBody())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.calls)

	var resp struct {
		Data models.BatchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "820 m", resp.Data.Results["r1"].Distance)
	assert.Equal(t, "4 min", resp.Data.Results["r1"].Duration)
}

func TestEstimate_MissingOrigin(t *testing.T) {
	// No origin still answers 200, with an empty batch
	uc := &fakeDistanceUC{result: &models.BatchResult{Results: map[string]models.DistanceResult{}}}
	body := validEstimateBody()
	delete(body, "origin")

	rec := performEstimate(t, uc, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.calls)
}

func TestEstimate_MissingDestinations(t *testing.T) {
	uc := &fakeDistanceUC{}
	body := validEstimateBody()
	body["destinations"] = []map[string]interface{}{}

	rec := performEstimate(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.calls)
}

func TestEstimate_InvalidCoordinate(t *testing.T) {
	uc := &fakeDistanceUC{}
	body := validEstimateBody()
	body["origin"] = map[string]float64{"latitude": 123.0, "longitude": 2.35}

	rec := performEstimate(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.calls)
}

func TestEstimate_InvalidMode(t *testing.T) {
	uc := &fakeDistanceUC{}
	body := validEstimateBody()
	body["mode"] = "teleport"

	rec := performEstimate(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.calls)
}

func TestEstimate_UsecaseError(t *testing.T) {
	uc := &fakeDistanceUC{err: errors.New("routing service unavailable")}

	rec := performEstimate(t, uc, validEstimateBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
