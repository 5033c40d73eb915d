package chainclient

import (
	"fmt"
	"math/big"
	"time"

	"facilitator_balances/internal/domain/entity"
	"facilitator_balances/internal/pkg/utils"

	"github.com/valyala/fasthttp"
)

const algorandDecimals = 6

// AlgorandCodec reads an algod per-account REST endpoint. The amount is an
// integer microAlgo count.
type AlgorandCodec struct {
	timeout time.Duration
}

func NewAlgorandCodec(timeout time.Duration) *AlgorandCodec {
	return &AlgorandCodec{timeout: timeout}
}

func (c *AlgorandCodec) Kind() entity.ProtocolKind { return entity.ProtocolAlgorand }

func (c *AlgorandCodec) CallTimeout() time.Duration { return c.timeout }

type algorandAccountResponse struct {
	// Pointer so a missing amount field is distinguishable from a zero
	// balance.
	Amount *uint64 `json:"amount"`
}

func (c *AlgorandCodec) BuildRequest(string) (Request, error) {
	// The account address is baked into the per-account endpoint URL.
	return Request{Method: fasthttp.MethodGet}, nil
}

func (c *AlgorandCodec) ParseResponse(raw []byte) (string, error) {
	var resp algorandAccountResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode account response: %w", err)
	}
	if resp.Amount == nil {
		return "", fmt.Errorf("account response missing amount")
	}

	microAlgos := new(big.Int).SetUint64(*resp.Amount)
	return utils.FormatUnits(microAlgos, algorandDecimals)
}
