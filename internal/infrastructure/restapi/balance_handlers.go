package restapi

import (
	"fmt"
	"net/http"

	"facilitator_balances/internal/app/port"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIBalancesResponse is the envelope returned by the balances endpoint.
// Unavailable networks appear with a null balance rather than being dropped,
// so clients always see the full network set.
type APIBalancesResponse struct {
	Balances   map[string]*string `json:"balances"`
	CachedAt   int64              `json:"cached_at"`
	TTLSeconds int                `json:"ttl_seconds"`
}

// BalanceHandler serves HTTP requests for the aggregated balance snapshot.
type BalanceHandler struct {
	source port.SnapshotSource
	logger *zap.Logger
}

// NewBalanceHandler creates a new BalanceHandler backed by the given
// snapshot source.
func NewBalanceHandler(source port.SnapshotSource, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		source: source,
		logger: logger.Named("BalanceHandler"),
	}
}

// GetBalancesHandler returns the native balance of every registered network.
func (h *BalanceHandler) GetBalancesHandler(c *gin.Context) {
	snapshot, err := h.source.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to produce balance snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch balances"})
		return
	}

	ttl := h.source.TTLSeconds()
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", ttl))
	c.JSON(http.StatusOK, APIBalancesResponse{
		Balances:   snapshot.BalanceMap(),
		CachedAt:   snapshot.ProducedAt.Unix(),
		TTLSeconds: ttl,
	})
}

// HealthHandler answers liveness probes.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
