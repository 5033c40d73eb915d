package entity

import "time"

// BalanceResult is the outcome of one network's balance fetch within an
// aggregation run. Balance is the native balance as a decimal string already
// scaled by the network's decimal exponent and formatted to 4 decimal places,
// or nil if every endpoint for the network failed. Results are immutable once
// produced; a fresh aggregation replaces them wholesale.
type BalanceResult struct {
	NetworkID string  `json:"networkId"`
	Balance   *string `json:"balance"`
}

// Snapshot is one complete, immutable result of an aggregation run across all
// configured networks. Its key set is always the full fixed network set, with
// a nil balance standing in for any network whose fetch failed.
type Snapshot struct {
	Results    map[string]BalanceResult `json:"results"`
	ProducedAt time.Time                `json:"producedAt"`
}

// BalanceMap flattens the snapshot into the networkId -> balance mapping the
// API serves.
func (s Snapshot) BalanceMap() map[string]*string {
	out := make(map[string]*string, len(s.Results))
	for id, r := range s.Results {
		out[id] = r.Balance
	}
	return out
}
