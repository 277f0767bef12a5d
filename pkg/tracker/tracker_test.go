package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/luscis/smartwifi/pkg/cache"
	"github.com/luscis/smartwifi/pkg/config"
	"github.com/luscis/smartwifi/pkg/jnap"
	"github.com/luscis/smartwifi/pkg/scanner"
	"github.com/stretchr/testify/assert"
)

type fakeRouter struct {
	lock  sync.Mutex
	macs  []string
	fails bool
}

func (f *fakeRouter) Set(macs ...string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.macs = macs
}

func (f *fakeRouter) Transaction(ctx context.Context, requests ...jnap.Request) (*jnap.Response, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.fails {
		return nil, &jnap.Error{Kind: jnap.ErrTransport}
	}
	devices := make([]string, 0, len(f.macs))
	conns := make([]string, 0, len(f.macs))
	for i, mac := range f.macs {
		devices = append(devices, fmt.Sprintf(
			`{"friendlyName": "dev%d", "connections": [{"macAddress": "%s", "ipAddress": "192.168.1.%d"}]}`, i, mac, i+10))
		conns = append(conns, fmt.Sprintf(`{"macAddress": "%s", "wireless": {}}`, mac))
	}
	body := fmt.Sprintf(`{"result": "OK", "responses": [
		{"result": "OK", "output": {"devices": [%s]}},
		{"result": "OK", "output": {"connections": [%s]}}]}`,
		strings.Join(devices, ","), strings.Join(conns, ","))
	resp := &jnap.Response{}
	err := json.Unmarshal([]byte(body), resp)
	return resp, err
}

type fakeClock struct {
	lock sync.Mutex
	now  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = c.now.Add(d)
}

func newTracker(t *testing.T, routers map[string]*fakeRouter) (*Tracker, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1600000000, 0)}
	cfg := &config.Tracker{
		TokenFile: filepath.Join(t.TempDir(), "token"),
	}
	for host := range routers {
		cfg.Routers = append(cfg.Routers, &config.Router{
			Host:     host,
			Username: "admin",
			Password: "secret",
		})
	}
	cfg.Correct()
	cfg.Http = nil
	tr := New(cfg,
		WithClock(clock.Now),
		WithScanner(func(rc *config.Router) *scanner.Scanner {
			return scanner.New(rc, scanner.WithQuerier(routers[rc.Host]), scanner.WithClock(clock.Now))
		}))
	tr.Initialize()
	return tr, clock
}

func TestTracker_Initialize(t *testing.T) {
	good := &fakeRouter{}
	bad := &fakeRouter{fails: true}
	tr, _ := newTracker(t, map[string]*fakeRouter{
		"192.168.1.1": good,
		"192.168.2.1": bad,
	})
	assert.Equal(t, 1, cache.Scanner.Len(), "be the same.")
	assert.NotNil(t, cache.Scanner.Get("192.168.1.1"))
	assert.Nil(t, cache.Scanner.Get("192.168.2.1"))
	assert.Nil(t, tr.http)
	assert.Nil(t, tr.resolver)
}

func TestTracker_Invalid(t *testing.T) {
	cfg := &config.Tracker{
		Routers: []*config.Router{{Host: "192.168.1.1"}},
	}
	cfg.Correct()
	cfg.Http = nil
	called := 0
	tr := New(cfg, WithScanner(func(rc *config.Router) *scanner.Scanner {
		called++
		return nil
	}))
	tr.Initialize()
	assert.Equal(t, 0, called, "be the same.")
	assert.Equal(t, 0, cache.Scanner.Len(), "be the same.")
}

func TestTracker_ScanNow(t *testing.T) {
	r := &fakeRouter{}
	r.Set("aa:00:00:00:00:01", "aa:00:00:00:00:02")
	tr, clock := newTracker(t, map[string]*fakeRouter{"192.168.1.1": r})

	ret := tr.ScanNow(context.Background())
	assert.Equal(t, 1, ret.Scanners, "be the same.")
	assert.Equal(t, 2, ret.Devices, "be the same.")
	assert.Equal(t, 2, ret.Home, "be the same.")

	p, ok := cache.Presence.Get("AA:00:00:00:00:01")
	assert.True(t, ok)
	assert.Equal(t, "dev0", p.Name, "be the same.")
	assert.Equal(t, "192.168.1.10", p.Ip, "be the same.")
	assert.Equal(t, "192.168.1.1", p.Host, "be the same.")

	// second device leaves the network.
	r.Set("aa:00:00:00:00:01")
	clock.Add(100 * time.Second)
	ret = tr.ScanNow(context.Background())
	assert.Equal(t, 1, ret.Devices, "be the same.")
	assert.Equal(t, 2, ret.Home, "still in considerHome.")

	clock.Add(100 * time.Second)
	ret = tr.ScanNow(context.Background())
	assert.Equal(t, 1, ret.Home, "be the same.")
	p, _ = cache.Presence.Get("AA:00:00:00:00:02")
	assert.False(t, p.Home)
	p, _ = cache.Presence.Get("AA:00:00:00:00:01")
	assert.True(t, p.Home)
	assert.Equal(t, clock.Now().Unix(), p.LastSeen, "be the same.")
}

func TestTracker_KeepLastResults(t *testing.T) {
	r := &fakeRouter{}
	r.Set("aa:00:00:00:00:01")
	tr, clock := newTracker(t, map[string]*fakeRouter{"192.168.1.1": r})

	r.lock.Lock()
	r.fails = true
	r.lock.Unlock()
	clock.Add(10 * time.Second)
	ret := tr.ScanNow(context.Background())
	assert.Equal(t, 1, ret.Devices, "be the same.")
	assert.Equal(t, 1, ret.Home, "be the same.")
}

func TestTracker_UpTime(t *testing.T) {
	tr, clock := newTracker(t, map[string]*fakeRouter{})
	clock.Add(30 * time.Second)
	assert.Equal(t, int64(30), tr.UpTime(), "be the same.")
}

func TestHttp_Auth(t *testing.T) {
	r := &fakeRouter{}
	r.Set("aa:00:00:00:00:01")
	tr, _ := newTracker(t, map[string]*fakeRouter{"192.168.1.1": r})
	tr.cfg.Http = &config.Http{Listen: "127.0.0.1:0"}

	h := NewHttp(tr)
	h.Initialize()
	assert.Equal(t, 32, len(h.Token()), "be the same.")

	srv := httptest.NewServer(h.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/device")
	assert.Nil(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "be the same.")
	resp.Body.Close()

	get := func(path string) *http.Response {
		req, _ := http.NewRequest("GET", srv.URL+path, nil)
		req.SetBasicAuth(h.Token(), "")
		resp, err := http.DefaultClient.Do(req)
		assert.Nil(t, err)
		return resp
	}
	resp = get("/api/device")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "be the same.")
	resp.Body.Close()

	resp = get("/api/nothing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "be the same.")
	resp.Body.Close()

	resp = get("/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "be the same.")
	resp.Body.Close()

	// token survives a restart.
	h2 := NewHttp(tr)
	h2.LoadToken()
	assert.Equal(t, h.Token(), h2.Token(), "be the same.")
}

func freeListen(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	_ = l.Close()
	return addr
}

func TestTracker_StartStop(t *testing.T) {
	listen := freeListen(t)
	cfg := &config.Tracker{
		TokenFile: filepath.Join(t.TempDir(), "token"),
		Http:      &config.Http{Listen: listen},
		Interval:  1,
	}
	cfg.Correct()
	tr := New(cfg)
	tr.Initialize()
	assert.NotNil(t, tr.http)

	tr.Start()
	tr.Stop()
	tr.Stop()

	time.Sleep(300 * time.Millisecond)
	conn, err := net.DialTimeout("tcp", listen, time.Second)
	if err == nil {
		conn.Close()
	}
	assert.NotNil(t, err, "admin server must be down after Stop.")
}

func TestTracker_StopBeforeStart(t *testing.T) {
	listen := freeListen(t)
	cfg := &config.Tracker{
		TokenFile: filepath.Join(t.TempDir(), "token"),
		Http:      &config.Http{Listen: listen},
	}
	cfg.Correct()
	tr := New(cfg)
	tr.Initialize()
	tr.Stop()
	tr.http.Start()

	time.Sleep(100 * time.Millisecond)
	conn, err := net.DialTimeout("tcp", listen, time.Second)
	if err == nil {
		conn.Close()
	}
	assert.NotNil(t, err, "a stopped server never listens.")
}
