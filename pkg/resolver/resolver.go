package resolver

import (
	"net"
	"strings"
	"time"

	"github.com/luscis/smartwifi/pkg/libol"
	"github.com/miekg/dns"
)

// Resolver finds hostnames of clients by PTR lookups against one
// nameserver, usually the router itself.
type Resolver struct {
	server string
	client *dns.Client
	names  *libol.SafeMap[string]
	out    *libol.SubLogger
}

// Address appends port 53 when server has none. IPv6 servers may be given
// bare or in brackets.
func Address(server string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	host := strings.TrimSuffix(strings.TrimPrefix(server, "["), "]")
	return net.JoinHostPort(host, "53")
}

func New(server string, timeout time.Duration) *Resolver {
	server = Address(server)
	return &Resolver{
		server: server,
		client: &dns.Client{
			Net:          "udp",
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		names: libol.NewSafeMap[string](1024),
		out:   libol.NewSubLogger(server),
	}
}

func (r *Resolver) Server() string {
	return r.server
}

// Lookup returns the name of ip, from cache when it was resolved before.
func (r *Resolver) Lookup(ip string) (string, error) {
	if name, ok := r.names.Get(ip); ok {
		return name, nil
	}
	addr, err := dns.ReverseAddr(ip)
	if err != nil {
		return "", err
	}
	m := new(dns.Msg)
	m.SetQuestion(addr, dns.TypePTR)
	m.RecursionDesired = true

	resp, _, err := r.client.Exchange(m, r.server)
	if err != nil {
		r.out.Debug("Resolver.Lookup %s: %v", ip, err)
		return "", err
	}
	if resp.Rcode != dns.RcodeSuccess {
		return "", libol.NewErr("%s: %s", ip, dns.RcodeToString[resp.Rcode])
	}
	for _, rr := range resp.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			name := strings.TrimSuffix(ptr.Ptr, ".")
			_ = r.names.Put(ip, name)
			return name, nil
		}
	}
	return "", libol.NewErr("%s: no PTR record", ip)
}

// Forget drops the cached name of ip, the address may be handed to
// another client.
func (r *Resolver) Forget(ip string) {
	r.names.Del(ip)
}
