package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/luscis/smartwifi/pkg/cache"
	"github.com/luscis/smartwifi/pkg/config"
	"github.com/luscis/smartwifi/pkg/libol"
	"github.com/luscis/smartwifi/pkg/models"
	"github.com/luscis/smartwifi/pkg/resolver"
	"github.com/luscis/smartwifi/pkg/scanner"
	"github.com/luscis/smartwifi/pkg/schema"
)

type Option func(t *Tracker)

// WithScanner replaces how a scanner is built for one router.
func WithScanner(call func(cfg *config.Router) *scanner.Scanner) Option {
	return func(t *Tracker) {
		t.newScanner = call
	}
}

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// Tracker keeps the presence table of all routers up to date.
type Tracker struct {
	cfg        *config.Tracker
	out        *libol.SubLogger
	http       *Http
	resolver   *resolver.Resolver
	newScanner func(cfg *config.Router) *scanner.Scanner
	now        func() time.Time
	lock       sync.Mutex
	ticker     *time.Ticker
	done       chan struct{}
	stop       sync.Once
	startTime  int64
}

func New(cfg *config.Tracker, opts ...Option) *Tracker {
	t := &Tracker{
		cfg: cfg,
		out: libol.NewSubLogger("tracker"),
		newScanner: func(cfg *config.Router) *scanner.Scanner {
			return scanner.New(cfg)
		},
		now:  time.Now,
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Initialize() {
	cache.Init(t.cfg)
	for _, rc := range t.cfg.Routers {
		if err := rc.Validate(); err != nil {
			t.out.Error("Tracker.Initialize: %s", err)
			continue
		}
		s := t.newScanner(rc)
		if !s.Ok() {
			t.out.Error("Tracker.Initialize: discard %s", rc.Host)
			continue
		}
		cache.Scanner.Add(s)
		t.out.Info("Tracker.Initialize: scanning %s", rc.Host)
	}
	if t.cfg.Nameserver != "" {
		t.resolver = resolver.New(t.cfg.Nameserver, 2*time.Second)
		t.out.Info("Tracker.Initialize: resolve names via %s", t.resolver.Server())
	}
	if t.cfg.Http != nil && t.cfg.Http.Listen != "" {
		t.http = NewHttp(t)
		t.http.Initialize()
	}
	t.startTime = t.now().Unix()
}

func (t *Tracker) UpTime() int64 {
	return t.now().Unix() - t.startTime
}

// ScanNow runs one pass over all scanners and updates the presence table.
func (t *Tracker) ScanNow(ctx context.Context) schema.Scan {
	t.lock.Lock()
	defer t.lock.Unlock()

	result := schema.Scan{}
	now := t.now()
	for s := range cache.Scanner.List() {
		if s == nil {
			break
		}
		result.Scanners++
		for _, d := range s.Scan(ctx) {
			result.Devices++
			t.see(d, s.Host(), now)
		}
	}
	for _, p := range cache.Presence.Expire(now, t.cfg.GetConsiderHome()) {
		t.out.Info("Tracker.ScanNow: %s (%s) left %s", p.Mac, p.Name, p.Host)
		if t.resolver != nil && p.Ip != models.Unknown {
			t.resolver.Forget(p.Ip)
		}
	}
	for p := range cache.Presence.List() {
		if p == nil {
			break
		}
		if p.Home {
			result.Home++
		}
	}
	t.out.Debug("Tracker.ScanNow: %v", result)
	return result
}

func (t *Tracker) see(d models.Device, host string, now time.Time) {
	p, arrived := cache.Presence.See(d, host, now)
	if !arrived {
		return
	}
	t.out.Info("Tracker.ScanNow: %s (%s) joined %s", p.Mac, p.Name, host)
	if t.resolver == nil || p.Ip == models.Unknown {
		return
	}
	libol.Go(func() {
		if name, err := t.resolver.Lookup(p.Ip); err == nil {
			cache.Presence.SetHostname(p.Mac, name)
		}
	})
}

func (t *Tracker) loop() {
	t.ScanNow(context.Background())
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			t.ScanNow(context.Background())
		}
	}
}

func (t *Tracker) Start() {
	t.out.Info("Tracker.Start: every %s", t.cfg.GetInterval())
	t.ticker = time.NewTicker(t.cfg.GetInterval())
	libol.Go(t.loop)
	if t.http != nil {
		libol.Go(t.http.Start)
	}
}

func (t *Tracker) Stop() {
	t.stop.Do(func() {
		t.out.Info("Tracker.Stop")
		if t.http != nil {
			t.http.Shutdown()
		}
		if t.ticker != nil {
			t.ticker.Stop()
		}
		close(t.done)
	})
}
