package chainclient

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"facilitator_balances/internal/domain/entity"
	"facilitator_balances/internal/pkg/utils"

	"github.com/valyala/fasthttp"
)

const (
	suiDecimals = 9

	// suiNativeCoinType identifies SUI itself among the coin balances the
	// node returns; only this entry is tracked.
	suiNativeCoinType = "0x2::sui::SUI"
)

// ErrNoNativeSuiCoin marks a well-formed suix_getAllBalances response that
// contains no SUI entry. Kept distinct from a zero balance so logs can tell
// the two apart; callers see both as unavailable.
var ErrNoNativeSuiCoin = errors.New("no native SUI coin balance in response")

// SuiCodec speaks suix_getAllBalances. The result is a list of per-coin-type
// balances; the SUI entry's totalBalance is an integer MIST count.
type SuiCodec struct {
	timeout time.Duration
}

func NewSuiCodec(timeout time.Duration) *SuiCodec {
	return &SuiCodec{timeout: timeout}
}

func (c *SuiCodec) Kind() entity.ProtocolKind { return entity.ProtocolSui }

func (c *SuiCodec) CallTimeout() time.Duration { return c.timeout }

type suiRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type suiCoinBalance struct {
	CoinType     string `json:"coinType"`
	TotalBalance string `json:"totalBalance"`
}

type suiResponse struct {
	Result []suiCoinBalance `json:"result"`
	Error  *rpcError        `json:"error"`
}

func (c *SuiCodec) BuildRequest(address string) (Request, error) {
	body, err := json.Marshal(suiRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "suix_getAllBalances",
		Params:  []any{address},
	})
	if err != nil {
		return Request{}, err
	}
	return Request{Method: fasthttp.MethodPost, Body: body}, nil
}

func (c *SuiCodec) ParseResponse(raw []byte) (string, error) {
	var resp suiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode suix_getAllBalances response: %w", err)
	}
	if resp.Error != nil {
		return "", resp.Error
	}
	if resp.Result == nil {
		return "", fmt.Errorf("suix_getAllBalances response missing result")
	}

	for _, coin := range resp.Result {
		if coin.CoinType != suiNativeCoinType {
			continue
		}
		mist, ok := new(big.Int).SetString(coin.TotalBalance, 10)
		if !ok {
			return "", fmt.Errorf("invalid totalBalance %q", coin.TotalBalance)
		}
		return utils.FormatUnits(mist, suiDecimals)
	}
	return "", ErrNoNativeSuiCoin
}
