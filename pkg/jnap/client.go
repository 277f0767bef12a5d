package jnap

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/luscis/smartwifi/pkg/libol"
)

const DefaultTimeout = 10 * time.Second

type Options struct {
	Host     string
	Username string
	Password string
	Verify   bool
	Timeout  time.Duration
	// Scheme defaults to https.
	Scheme string
}

// Client talks to the JNAP endpoint of one router. It keeps its transport
// between transactions and is safe for concurrent use.
type Client struct {
	opts   Options
	url    string
	client *http.Client
	out    *libol.SubLogger
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Scheme == "" {
		opts.Scheme = "https"
	}
	tr := libol.NewTransport(&tls.Config{InsecureSkipVerify: !opts.Verify})
	return &Client{
		opts:   opts,
		url:    opts.Scheme + "://" + opts.Host + "/JNAP/",
		client: &http.Client{Transport: tr},
		out:    libol.NewSubLogger(opts.Host),
	}
}

func (c *Client) Header() map[string]string {
	return map[string]string{
		"Content-Type":  "application/json; charset=UTF-8",
		"X-JNAP-Action": ActionTransaction,
		// The router answers without it, but newer firmware may not.
		"X-JNAP-Authorization": libol.BasicAuth(c.opts.Username, c.opts.Password),
	}
}

// Transaction posts all requests in one batch and returns the raw
// responses in request order. It never takes longer than the timeout.
func (c *Client) Transaction(ctx context.Context, requests ...Request) (*Response, error) {
	data, err := json.Marshal(requests)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	hc := &libol.HttpClient{
		Method:  "POST",
		Url:     c.url,
		Payload: bytes.NewReader(data),
		Header:  c.Header(),
		Client:  c.client,
	}
	c.out.Debug("Client.Transaction -> %s %s", hc.Url, data)
	r, err := hc.DoContext(ctx)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, classify(ctx, err)
	}
	if r.StatusCode != http.StatusOK {
		return nil, &Error{Kind: ErrStatus, Status: r.StatusCode, Reason: c.url}
	}
	c.out.Debug("Client.Transaction <- %s", body)

	resp := &Response{}
	if err := json.Unmarshal(body, resp); err != nil {
		return nil, &Error{Kind: ErrMalformed, Reason: "body", Err: err}
	}
	return resp, nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &Error{Kind: ErrTimeout, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: ErrTimeout, Err: err}
	}
	return &Error{Kind: ErrTransport, Err: err}
}
