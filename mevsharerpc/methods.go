package mevsharerpc

import "encoding/json"

// Method names the relay accepts, grouped by the surface they belong to:
// classic Flashbots eth_* bundle/tx RPCs, the MEV-Share mev_* RPCs, and
// the flashbots_* reporting RPCs.
const (
	MethodEthSendBundle               = "eth_sendBundle"
	MethodEthCallBundle               = "eth_callBundle"
	MethodEthCancelBundle             = "eth_cancelBundle"
	MethodEthSendPrivateTransaction   = "eth_sendPrivateTransaction"
	MethodEthSendPrivateRawTransaction = "eth_sendPrivateRawTransaction"
	MethodEthCancelPrivateTransaction = "eth_cancelPrivateTransaction"

	MethodMevSendBundle = "mev_sendBundle"
	MethodMevSimBundle  = "mev_simBundle"

	MethodFlashbotsGetUserStatsV2   = "flashbots_getUserStatsV2"
	MethodFlashbotsGetBundleStatsV2 = "flashbots_getBundleStatsV2"
)

// rpcReq is a single JSON-RPC 2.0 request envelope.
type rpcReq struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// rpcError is the JSON-RPC 2.0 error object.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// rpcResp is a single JSON-RPC 2.0 response envelope.
type rpcResp struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

// NewRequest builds a JSON-RPC request body for method with a single
// params object, matching the shape every relay RPC in this package
// uses.
func NewRequest(method string, id int, params interface{}) ([]byte, error) {
	return json.Marshal(rpcReq{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  []interface{}{params},
	})
}

// DecodeResponse unmarshals a JSON-RPC response body and surfaces its
// error field, if any, as a Go error.
func DecodeResponse(body []byte, out interface{}) error {
	var resp rpcResp
	if err := json.Unmarshal(body, &resp); err != nil {
		return &SerdeError{Err: err}
	}
	if resp.Error != nil {
		return &RelayError{Code: resp.Error.Code, Message: resp.Error.Message}
	}
	if out == nil || len(resp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return &SerdeError{Err: err}
	}
	return nil
}
