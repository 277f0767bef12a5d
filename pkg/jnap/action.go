package jnap

import "encoding/json"

const (
	ActionTransaction           = "http://linksys.com/jnap/core/Transaction"
	ActionGetDevices            = "http://linksys.com/jnap/devicelist/GetDevices"
	ActionGetNetworkConnections = "http://linksys.com/jnap/networkconnections/GetNetworkConnections"
)

const (
	ResultOK = "OK"
)

// Request is one action inside a transaction.
type Request struct {
	Action  string      `json:"action"`
	Request interface{} `json:"request"`
}

type GetDevicesRequest struct {
	SinceRevision int64 `json:"sinceRevision"`
}

func GetDevices(sinceRevision int64) Request {
	return Request{
		Action:  ActionGetDevices,
		Request: GetDevicesRequest{SinceRevision: sinceRevision},
	}
}

func GetNetworkConnections() Request {
	return Request{
		Action:  ActionGetNetworkConnections,
		Request: struct{}{},
	}
}

// Response is the body of a transaction. Outputs are kept raw, callers
// decode the ones they asked for.
type Response struct {
	Result    string   `json:"result,omitempty"`
	Responses []Output `json:"responses"`
}

type Output struct {
	Result string          `json:"result,omitempty"`
	Output json.RawMessage `json:"output"`
}

// Slot decodes the output of the i-th request into v.
func (r *Response) Slot(i int, v interface{}) error {
	if i >= len(r.Responses) {
		return &Error{Kind: ErrMalformed, Reason: "missing responses[" + itoa(i) + "]"}
	}
	out := r.Responses[i]
	if out.Result != "" && out.Result != ResultOK {
		return &Error{Kind: ErrMalformed, Reason: "responses[" + itoa(i) + "] result " + out.Result}
	}
	if len(out.Output) == 0 || string(out.Output) == "null" {
		return &Error{Kind: ErrMalformed, Reason: "missing responses[" + itoa(i) + "].output"}
	}
	if err := json.Unmarshal(out.Output, v); err != nil {
		return &Error{Kind: ErrMalformed, Reason: "responses[" + itoa(i) + "].output", Err: err}
	}
	return nil
}
