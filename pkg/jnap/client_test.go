package jnap

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newFakeRouter(handler http.HandlerFunc) (*httptest.Server, Options) {
	srv := httptest.NewTLSServer(handler)
	opts := Options{
		Host:     strings.TrimPrefix(srv.URL, "https://"),
		Username: "admin",
		Password: "secret",
		Verify:   false,
	}
	return srv, opts
}

const fakeBody = `{
  "result": "OK",
  "responses": [
    {"result": "OK", "output": {"revision": 7, "devices": [
      {"friendlyName": "Phone", "connections": [{"macAddress": "aa:bb", "ipAddress": "1.2.3.4"}]}
    ]}},
    {"result": "OK", "output": {"connections": [
      {"macAddress": "aa:bb", "wireless": {"band": "5GHz"}},
      {"macAddress": "cc:dd"}
    ]}}
  ]
}`

func TestClient_Transaction(t *testing.T) {
	srv, opts := newFakeRouter(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method, "be the same.")
		assert.Equal(t, "/JNAP/", r.URL.Path, "be the same.")
		assert.Equal(t, ActionTransaction, r.Header.Get("X-JNAP-Action"), "be the same.")
		assert.Equal(t, "Basic YWRtaW46c2VjcmV0", r.Header.Get("X-JNAP-Authorization"), "be the same.")

		body, _ := io.ReadAll(r.Body)
		var reqs []map[string]interface{}
		assert.Nil(t, json.Unmarshal(body, &reqs))
		assert.Equal(t, 2, len(reqs), "be the same.")
		assert.Equal(t, ActionGetDevices, reqs[0]["action"], "be the same.")
		assert.Equal(t, map[string]interface{}{"sinceRevision": float64(1653327)}, reqs[0]["request"])
		assert.Equal(t, ActionGetNetworkConnections, reqs[1]["action"], "be the same.")
		assert.Equal(t, map[string]interface{}{}, reqs[1]["request"])

		_, _ = w.Write([]byte(fakeBody))
	})
	defer srv.Close()

	c := NewClient(opts)
	resp, err := c.Transaction(context.Background(), GetDevices(1653327), GetNetworkConnections())
	assert.Nil(t, err)
	assert.Equal(t, ResultOK, resp.Result, "be the same.")
	assert.Equal(t, 2, len(resp.Responses), "be the same.")

	devs := DevicesOutput{}
	assert.Nil(t, resp.Slot(0, &devs))
	assert.Equal(t, "Phone", devs.Devices[0].FriendlyName, "be the same.")
	assert.Equal(t, "1.2.3.4", devs.Devices[0].Connections[0].IpAddress, "be the same.")

	conns := ConnectionsOutput{}
	assert.Nil(t, resp.Slot(1, &conns))
	assert.True(t, conns.Connections[0].IsWireless())
	assert.False(t, conns.Connections[1].IsWireless())

	err = resp.Slot(2, &conns)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestClient_Status(t *testing.T) {
	srv, opts := newFakeRouter(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := NewClient(opts).Transaction(context.Background(), GetNetworkConnections())
	assert.True(t, errors.Is(err, ErrStatus))
	assert.False(t, errors.Is(err, ErrTransport))
	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, http.StatusInternalServerError, e.Status, "be the same.")
}

func TestClient_Timeout(t *testing.T) {
	srv, opts := newFakeRouter(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	defer srv.Close()

	opts.Timeout = 50 * time.Millisecond
	start := time.Now()
	_, err := NewClient(opts).Transaction(context.Background(), GetNetworkConnections())
	assert.True(t, errors.Is(err, ErrTimeout), "%v", err)
	assert.True(t, time.Since(start) < time.Second)
}

func TestClient_Transport(t *testing.T) {
	srv, opts := newFakeRouter(func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := NewClient(opts).Transaction(context.Background(), GetNetworkConnections())
	assert.True(t, errors.Is(err, ErrTransport), "%v", err)
}

func TestClient_Verify(t *testing.T) {
	srv, opts := newFakeRouter(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fakeBody))
	})
	defer srv.Close()

	opts.Verify = true
	_, err := NewClient(opts).Transaction(context.Background(), GetNetworkConnections())
	assert.True(t, errors.Is(err, ErrTransport), "self-signed must fail: %v", err)
}

func TestClient_Malformed(t *testing.T) {
	srv, opts := newFakeRouter(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>login</html>"))
	})
	defer srv.Close()

	_, err := NewClient(opts).Transaction(context.Background(), GetNetworkConnections())
	assert.True(t, errors.Is(err, ErrMalformed), "%v", err)
}

func TestResponse_Slot(t *testing.T) {
	resp := &Response{
		Responses: []Output{
			{Result: "_ErrorUnauthorized"},
			{Result: ResultOK},
			{Result: ResultOK, Output: json.RawMessage(`{"connections": "bad"}`)},
		},
	}
	conns := ConnectionsOutput{}
	assert.True(t, errors.Is(resp.Slot(0, &conns), ErrMalformed))
	assert.True(t, errors.Is(resp.Slot(1, &conns), ErrMalformed))
	assert.True(t, errors.Is(resp.Slot(2, &conns), ErrMalformed))
}

func TestNetworkConnection_IsWireless(t *testing.T) {
	for raw, want := range map[string]bool{
		`{"macAddress": "a"}`:                    false,
		`{"macAddress": "a", "wireless": false}`: false,
		`{"macAddress": "a", "wireless": null}`:  false,
		`{"macAddress": "a", "wireless": true}`:  true,
		`{"macAddress": "a", "wireless": {}}`:    true,
	} {
		c := NetworkConnection{}
		assert.Nil(t, json.Unmarshal([]byte(raw), &c))
		assert.Equal(t, want, c.IsWireless(), raw)
	}
}
