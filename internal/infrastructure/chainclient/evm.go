package chainclient

import (
	"fmt"
	"time"

	"facilitator_balances/internal/domain/entity"
	"facilitator_balances/internal/pkg/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/valyala/fasthttp"
)

const evmDecimals = 18

// EVMCodec speaks eth_getBalance for EVM-compatible chains. The response
// result is a 0x-prefixed hex wei count.
type EVMCodec struct {
	timeout time.Duration
}

func NewEVMCodec(timeout time.Duration) *EVMCodec {
	return &EVMCodec{timeout: timeout}
}

func (c *EVMCodec) Kind() entity.ProtocolKind { return entity.ProtocolEVM }

func (c *EVMCodec) CallTimeout() time.Duration { return c.timeout }

type evmRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type evmResponse struct {
	Result string    `json:"result"`
	Error  *rpcError `json:"error"`
}

func (c *EVMCodec) BuildRequest(address string) (Request, error) {
	if !common.IsHexAddress(address) {
		return Request{}, fmt.Errorf("invalid EVM address %q", address)
	}
	body, err := json.Marshal(evmRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "eth_getBalance",
		Params:  []any{common.HexToAddress(address).Hex(), "latest"},
	})
	if err != nil {
		return Request{}, err
	}
	return Request{Method: fasthttp.MethodPost, Body: body}, nil
}

func (c *EVMCodec) ParseResponse(raw []byte) (string, error) {
	var resp evmResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode eth_getBalance response: %w", err)
	}
	if resp.Error != nil {
		return "", resp.Error
	}
	if resp.Result == "" {
		return "", fmt.Errorf("eth_getBalance response missing result")
	}

	wei, err := hexutil.DecodeBig(resp.Result)
	if err != nil {
		return "", fmt.Errorf("decode hex balance %q: %w", resp.Result, err)
	}
	return utils.FormatUnits(wei, evmDecimals)
}
