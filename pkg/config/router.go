package config

import (
	"time"

	"github.com/luscis/smartwifi/pkg/libol"
)

const (
	// SinceRevision is sent with every GetDevices call.
	SinceRevision = 1653327
	RouterTimeout = 10
	RouterMinInt  = 5
)

// Router is the connection to one Linksys Smart Wi-Fi router.
type Router struct {
	Host        string `json:"host" yaml:"host"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	VerifySsl   *bool  `json:"verifySsl,omitempty" yaml:"verifySsl,omitempty"`
	Timeout     int    `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	MinInterval int    `json:"minInterval,omitempty" yaml:"minInterval,omitempty"`
}

func (r *Router) Correct() {
	if r.VerifySsl == nil {
		verify := true
		r.VerifySsl = &verify
	}
	if r.Timeout <= 0 {
		r.Timeout = RouterTimeout
	}
	if r.MinInterval <= 0 {
		r.MinInterval = RouterMinInt
	}
}

func (r *Router) Validate() error {
	if r.Host == "" {
		return libol.NewErr("router: host required")
	}
	if r.Username == "" {
		return libol.NewErr("router %s: username required", r.Host)
	}
	if r.Password == "" {
		return libol.NewErr("router %s: password required", r.Host)
	}
	return nil
}

func (r *Router) Verify() bool {
	return r.VerifySsl == nil || *r.VerifySsl
}

func (r *Router) GetTimeout() time.Duration {
	if r.Timeout <= 0 {
		return RouterTimeout * time.Second
	}
	return time.Duration(r.Timeout) * time.Second
}

func (r *Router) GetMinInterval() time.Duration {
	if r.MinInterval <= 0 {
		return RouterMinInt * time.Second
	}
	return time.Duration(r.MinInterval) * time.Second
}
