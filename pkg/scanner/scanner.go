package scanner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/luscis/smartwifi/pkg/config"
	"github.com/luscis/smartwifi/pkg/jnap"
	"github.com/luscis/smartwifi/pkg/libol"
	"github.com/luscis/smartwifi/pkg/models"
)

var ErrThrottled = errors.New("refresh throttled")

// Querier runs one batched JNAP transaction, *jnap.Client is the real one.
type Querier interface {
	Transaction(ctx context.Context, requests ...jnap.Request) (*jnap.Response, error)
}

type Option func(s *Scanner)

func WithQuerier(q Querier) Option {
	return func(s *Scanner) {
		s.client = q
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Scanner) {
		s.now = now
	}
}

type Status struct {
	Host        string
	Ok          bool
	LastRefresh int64
	LastSuccess int64
	LastError   string
	Devices     int
}

// Scanner polls one router and keeps the last good snapshot of its
// wireless clients.
type Scanner struct {
	host    string
	minInt  time.Duration
	client  Querier
	now     func() time.Time
	out     *libol.SubLogger
	ok      bool
	results *libol.SafeVar[models.Snapshot]

	lock        sync.Mutex
	running     bool
	lastRefresh time.Time
	lastSuccess time.Time
	lastError   string
}

// New builds a scanner and refreshes it once. Check Ok before using it,
// a scanner whose first refresh failed should be dropped.
func New(cfg *config.Router, opts ...Option) *Scanner {
	s := &Scanner{
		host:    cfg.Host,
		minInt:  cfg.GetMinInterval(),
		now:     time.Now,
		out:     libol.NewSubLogger(cfg.Host),
		results: libol.NewSafeVar(models.Snapshot{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = jnap.NewClient(jnap.Options{
			Host:     cfg.Host,
			Username: cfg.Username,
			Password: cfg.Password,
			Verify:   cfg.Verify(),
			Timeout:  cfg.GetTimeout(),
		})
	}
	s.ok = s.Refresh(context.Background()) == nil
	if !s.ok {
		s.out.Error("Scanner.New: %s is not accessible", s.host)
	}
	return s
}

func (s *Scanner) Host() string {
	return s.host
}

func (s *Scanner) Ok() bool {
	return s.ok
}

// Scan refreshes when the throttle window allows it and returns the
// current snapshot either way.
func (s *Scanner) Scan(ctx context.Context) models.Snapshot {
	if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrThrottled) {
		s.out.Debug("Scanner.Scan: keep last results: %s", err)
	}
	return s.Devices()
}

// ScanDevices returns the MACs of Scan.
func (s *Scanner) ScanDevices(ctx context.Context) []string {
	return s.Scan(ctx).Macs()
}

// GetDeviceName looks mac up in the current snapshot without refreshing.
func (s *Scanner) GetDeviceName(mac string) (string, bool) {
	return s.Devices().Name(mac)
}

func (s *Scanner) Devices() models.Snapshot {
	return s.results.Get()
}

func (s *Scanner) Status() Status {
	s.lock.Lock()
	defer s.lock.Unlock()
	st := Status{
		Host:      s.host,
		Ok:        s.ok,
		LastError: s.lastError,
		Devices:   s.Devices().Len(),
	}
	if !s.lastRefresh.IsZero() {
		st.LastRefresh = s.lastRefresh.Unix()
	}
	if !s.lastSuccess.IsZero() {
		st.LastSuccess = s.lastSuccess.Unix()
	}
	return st
}

// begin passes the throttle gate and records the attempt.
func (s *Scanner) begin() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.running {
		return false
	}
	now := s.now()
	if !s.lastRefresh.IsZero() && now.Sub(s.lastRefresh) < s.minInt {
		return false
	}
	s.lastRefresh = now
	s.running = true
	return true
}

func (s *Scanner) end(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.running = false
	if err == nil {
		s.lastSuccess = s.now()
		s.lastError = ""
	} else {
		s.lastError = err.Error()
	}
}

// Refresh queries the router and replaces the snapshot on success. Calls
// inside the throttle window, or while another refresh runs, return
// ErrThrottled without touching the network.
func (s *Scanner) Refresh(ctx context.Context) (err error) {
	if !s.begin() {
		refreshMetric.WithLabelValues(s.host, resultOf(ErrThrottled)).Inc()
		return ErrThrottled
	}
	defer func() {
		s.end(err)
		refreshMetric.WithLabelValues(s.host, resultOf(err)).Inc()
	}()

	s.out.Debug("Scanner.Refresh: connecting to %s", s.host)
	start := time.Now()
	resp, err := s.client.Transaction(ctx, jnap.GetDevices(config.SinceRevision), jnap.GetNetworkConnections())
	durationMetric.WithLabelValues(s.host).Observe(time.Since(start).Seconds())
	if err != nil {
		s.report(err)
		return err
	}
	results, err := Reconcile(resp)
	if err != nil {
		s.report(err)
		return err
	}
	s.results.Set(results)
	devicesMetric.WithLabelValues(s.host).Set(float64(len(results)))
	s.out.Debug("Scanner.Refresh: %d wireless devices", len(results))
	return nil
}

func (s *Scanner) report(err error) {
	switch {
	case errors.Is(err, jnap.ErrStatus):
		s.out.Warn("Scanner.Refresh: %s", err)
	case errors.Is(err, jnap.ErrTimeout):
		s.out.Error("Scanner.Refresh: timeout when connecting to %s", s.host)
	default:
		s.out.Error("Scanner.Refresh: %s", err)
	}
}
