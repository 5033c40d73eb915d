package chainclient

import (
	"fmt"
	"math/big"
	"time"

	"facilitator_balances/internal/domain/entity"
	"facilitator_balances/internal/pkg/utils"

	"github.com/valyala/fasthttp"
)

const nearDecimals = 24

// NEARCodec speaks the query method with a view_account request. The account
// amount is a decimal-string yoctoNEAR count.
type NEARCodec struct {
	timeout time.Duration
}

func NewNEARCodec(timeout time.Duration) *NEARCodec {
	return &NEARCodec{timeout: timeout}
}

func (c *NEARCodec) Kind() entity.ProtocolKind { return entity.ProtocolNEAR }

func (c *NEARCodec) CallTimeout() time.Duration { return c.timeout }

type nearRequest struct {
	JSONRPC string     `json:"jsonrpc"`
	ID      string     `json:"id"`
	Method  string     `json:"method"`
	Params  nearParams `json:"params"`
}

type nearParams struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
}

type nearResponse struct {
	Result *struct {
		Amount string `json:"amount"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}

func (c *NEARCodec) BuildRequest(address string) (Request, error) {
	body, err := json.Marshal(nearRequest{
		JSONRPC: "2.0",
		ID:      "balance",
		Method:  "query",
		Params: nearParams{
			RequestType: "view_account",
			Finality:    "final",
			AccountID:   address,
		},
	})
	if err != nil {
		return Request{}, err
	}
	return Request{Method: fasthttp.MethodPost, Body: body}, nil
}

func (c *NEARCodec) ParseResponse(raw []byte) (string, error) {
	var resp nearResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode view_account response: %w", err)
	}
	if resp.Error != nil {
		return "", resp.Error
	}
	if resp.Result == nil || resp.Result.Amount == "" {
		return "", fmt.Errorf("view_account response missing result.amount")
	}

	yocto, ok := new(big.Int).SetString(resp.Result.Amount, 10)
	if !ok {
		return "", fmt.Errorf("invalid amount %q", resp.Result.Amount)
	}
	return utils.FormatUnits(yocto, nearDecimals)
}
