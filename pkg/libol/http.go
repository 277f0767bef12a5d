package libol

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"io"
	"net/http"

	"golang.org/x/net/http2"
)

type Auth struct {
	Type     string
	Username string
	Password string
}

func BasicAuth(username, password string) string {
	auth := username + ":"
	if password != "" {
		auth += password
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(auth))
}

// NewTransport returns a transport speaking HTTP/1.1 or h2, whichever the
// server offers over TLS.
func NewTransport(tlsConf *tls.Config) *http.Transport {
	tr := &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: tlsConf,
	}
	if err := http2.ConfigureTransport(tr); err != nil {
		Warn("NewTransport: %s", err)
	}
	return tr
}

type HttpClient struct {
	Method    string
	Url       string
	Payload   io.Reader
	Auth      Auth
	Header    map[string]string
	TlsConfig *tls.Config
	Client    *http.Client
}

func (cl *HttpClient) Do() (*http.Response, error) {
	return cl.DoContext(context.Background())
}

func (cl *HttpClient) DoContext(ctx context.Context) (*http.Response, error) {
	if cl.Method == "" {
		cl.Method = "GET"
	}
	req, err := http.NewRequestWithContext(ctx, cl.Method, cl.Url, cl.Payload)
	if err != nil {
		return nil, err
	}
	if cl.Auth.Type == "basic" {
		req.Header.Set("Authorization", BasicAuth(cl.Auth.Username, cl.Auth.Password))
	}
	for k, v := range cl.Header {
		req.Header.Set(k, v)
	}
	if cl.Client == nil {
		if cl.TlsConfig == nil {
			cl.TlsConfig = &tls.Config{InsecureSkipVerify: true}
		}
		cl.Client = &http.Client{
			Transport: NewTransport(cl.TlsConfig),
		}
	}
	return cl.Client.Do(req)
}

func (cl *HttpClient) Close() {
	if cl.Client != nil {
		cl.Client.CloseIdleConnections()
	}
}
