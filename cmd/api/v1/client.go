package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/luscis/smartwifi/cmd/api"
	"github.com/luscis/smartwifi/pkg/libol"
)

type Client struct {
	Auth libol.Auth
	Host string
}

func (cl Client) NewRequest(url string) *libol.HttpClient {
	client := &libol.HttpClient{
		Auth: libol.Auth{
			Type:     "basic",
			Username: cl.Auth.Username,
			Password: cl.Auth.Password,
		},
		Url: url,
	}
	return client
}

func (cl Client) JSON(client *libol.HttpClient, i, o interface{}) error {
	out := cl.Log()
	defer client.Close()
	if i != nil {
		data, err := json.Marshal(i)
		if err != nil {
			return err
		}
		out.Debug("Client.JSON -> %s", string(data))
		client.Payload = bytes.NewReader(data)
	}
	out.Debug("Client.JSON -> %s %s", client.Method, client.Url)
	r, err := client.Do()
	if err != nil {
		return err
	}
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	out.Debug("Client.JSON <- %s", string(body))
	if r.StatusCode != http.StatusOK {
		return libol.NewErr("%s %s", r.Status, strings.TrimSpace(string(body)))
	} else if o != nil {
		if err := json.Unmarshal(body, o); err != nil {
			return err
		}
	}
	return nil
}

func (cl Client) GetJSON(url string, v interface{}) error {
	client := cl.NewRequest(url)
	client.Method = "GET"
	return cl.JSON(client, nil, v)
}

func (cl Client) PostJSON(url string, i, o interface{}) error {
	client := cl.NewRequest(url)
	client.Method = "POST"
	return cl.JSON(client, i, o)
}

func (cl Client) Log() *libol.SubLogger {
	return libol.NewSubLogger("cli")
}

type Cmd struct {
}

func (c Cmd) NewHttp(token string) Client {
	values := strings.SplitN(token, ":", 2)
	username := values[0]
	password := values[0]
	if len(values) == 2 {
		password = values[1]
	}
	client := Client{
		Auth: libol.Auth{
			Username: username,
			Password: password,
		},
	}
	return client
}

func (c Cmd) Out(data interface{}, format string, tmpl string) error {
	if tmpl == "" && format == "table" {
		format = "yaml"
	}
	return api.Out(data, format, tmpl)
}
