package chainclient

import (
	"fmt"
	"math/big"
	"time"

	"facilitator_balances/internal/domain/entity"
	"facilitator_balances/internal/pkg/utils"

	"github.com/gagliardetto/solana-go"
	"github.com/valyala/fasthttp"
)

const solanaDecimals = 9

// SolanaCodec speaks getBalance for Solana-family chains (Solana itself and
// Fogo). The response value is an integer lamport count.
type SolanaCodec struct {
	timeout time.Duration
}

func NewSolanaCodec(timeout time.Duration) *SolanaCodec {
	return &SolanaCodec{timeout: timeout}
}

func (c *SolanaCodec) Kind() entity.ProtocolKind { return entity.ProtocolSolana }

func (c *SolanaCodec) CallTimeout() time.Duration { return c.timeout }

type solanaRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type solanaResponse struct {
	Result *struct {
		Value *uint64 `json:"value"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}

func (c *SolanaCodec) BuildRequest(address string) (Request, error) {
	key, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return Request{}, fmt.Errorf("invalid Solana address %q: %w", address, err)
	}
	body, err := json.Marshal(solanaRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getBalance",
		Params:  []any{key.String()},
	})
	if err != nil {
		return Request{}, err
	}
	return Request{Method: fasthttp.MethodPost, Body: body}, nil
}

func (c *SolanaCodec) ParseResponse(raw []byte) (string, error) {
	var resp solanaResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode getBalance response: %w", err)
	}
	if resp.Error != nil {
		return "", resp.Error
	}
	if resp.Result == nil || resp.Result.Value == nil {
		return "", fmt.Errorf("getBalance response missing result.value")
	}

	lamports := new(big.Int).SetUint64(*resp.Result.Value)
	return utils.FormatUnits(lamports, solanaDecimals)
}
