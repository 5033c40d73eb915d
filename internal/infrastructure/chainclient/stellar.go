package chainclient

import (
	"errors"
	"fmt"
	"time"

	"facilitator_balances/internal/domain/entity"
	"facilitator_balances/internal/pkg/utils"

	"github.com/valyala/fasthttp"
)

// ErrNoNativeStellarBalance marks a Horizon account response without a
// native-asset entry.
var ErrNoNativeStellarBalance = errors.New("no native asset balance in account response")

// StellarCodec reads a Horizon per-account REST endpoint. The native balance
// is already a decimal string and only needs reformatting.
type StellarCodec struct {
	timeout time.Duration
}

func NewStellarCodec(timeout time.Duration) *StellarCodec {
	return &StellarCodec{timeout: timeout}
}

func (c *StellarCodec) Kind() entity.ProtocolKind { return entity.ProtocolStellar }

func (c *StellarCodec) CallTimeout() time.Duration { return c.timeout }

type stellarAccountResponse struct {
	Balances []struct {
		AssetType string `json:"asset_type"`
		Balance   string `json:"balance"`
	} `json:"balances"`
}

func (c *StellarCodec) BuildRequest(string) (Request, error) {
	// The account address is baked into the per-account endpoint URL.
	return Request{Method: fasthttp.MethodGet}, nil
}

func (c *StellarCodec) ParseResponse(raw []byte) (string, error) {
	var resp stellarAccountResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode account response: %w", err)
	}

	for _, b := range resp.Balances {
		if b.AssetType == "native" {
			return utils.FormatDecimalString(b.Balance)
		}
	}
	return "", ErrNoNativeStellarBalance
}
