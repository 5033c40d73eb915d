package restapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"facilitator_balances/internal/domain/entity"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type stubSource struct {
	snapshot entity.Snapshot
	err      error
	ttl      int
}

func (s *stubSource) Get(context.Context) (entity.Snapshot, error) { return s.snapshot, s.err }
func (s *stubSource) TTLSeconds() int                              { return s.ttl }

func newTestRouter(source *stubSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(NewBalanceHandler(source, zap.NewNop()), nil)
}

func strPtr(s string) *string { return &s }

func TestGetBalancesReturnsEnvelope(t *testing.T) {
	producedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	source := &stubSource{
		snapshot: entity.Snapshot{
			Results: map[string]entity.BalanceResult{
				"evmMainnet":    {NetworkID: "evmMainnet", Balance: strPtr("1.2345")},
				"solanaMainnet": {NetworkID: "solanaMainnet", Balance: nil},
			},
			ProducedAt: producedAt,
		},
		ttl: 60,
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/balances", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	newTestRouter(source).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=60", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var body struct {
		Balances   map[string]*string `json:"balances"`
		CachedAt   int64              `json:"cached_at"`
		TTLSeconds int                `json:"ttl_seconds"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Balances, 2)
	require.NotNil(t, body.Balances["evmMainnet"])
	assert.Equal(t, "1.2345", *body.Balances["evmMainnet"])

	// The unavailable network is present as an explicit null, not dropped.
	value, present := body.Balances["solanaMainnet"]
	assert.True(t, present)
	assert.Nil(t, value)

	assert.Equal(t, producedAt.Unix(), body.CachedAt)
	assert.Equal(t, 60, body.TTLSeconds)
}

func TestGetBalancesErrorKeepsCORS(t *testing.T) {
	source := &stubSource{err: errors.New("aggregation aborted"), ttl: 60}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/balances", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	newTestRouter(source).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Cache-Control"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed to fetch balances", body["error"])
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	newTestRouter(&stubSource{ttl: 60}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
