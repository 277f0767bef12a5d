package tracker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/luscis/smartwifi/pkg/api"
	"github.com/luscis/smartwifi/pkg/libol"
	"github.com/luscis/smartwifi/pkg/scanner"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Oops!", http.StatusNotFound)
}

func NotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Oops!", http.StatusMethodNotAllowed)
}

type Http struct {
	tracker    api.Tracker
	listen     string
	adminToken string
	adminFile  string
	server     *http.Server
	router     *mux.Router
	lock       sync.Mutex
	stopped    bool
}

func NewHttp(t *Tracker) (h *Http) {
	h = &Http{
		tracker:   t,
		listen:    t.cfg.Http.Listen,
		adminFile: t.cfg.TokenFile,
	}
	return
}

func (h *Http) Initialize() {
	h.lock.Lock()
	defer h.lock.Unlock()

	r := h.Router()
	if h.server == nil {
		h.server = &http.Server{
			Addr:         h.listen,
			Handler:      r,
			ReadTimeout:  time.Minute,
			WriteTimeout: 2 * time.Minute,
		}
	}
	h.LoadToken()
	h.SaveToken()
	h.LoadRouter()
}

func (h *Http) PProf(r *mux.Router) {
	if r != nil {
		r.HandleFunc("/debug/pprof/", pprof.Index)
		r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		r.HandleFunc("/debug/pprof/profile", pprof.Profile)
		r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		r.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
}

func (h *Http) Prome(r *mux.Router) {
	if r != nil {
		handler := promhttp.HandlerFor(scanner.Metrics, promhttp.HandlerOpts{})
		r.Handle("/metrics", handler)
	}
}

func (h *Http) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		libol.Debug("Http.Middleware %s %s", r.Method, r.URL.Path)
		if h.IsAuth(w, r) {
			latst := time.Now().Unix()
			next.ServeHTTP(w, r)
			dt := time.Now().Unix() - latst
			if dt > 2 {
				libol.Warn("Http.Middleware %s %s long time %d", r.Method, r.URL.Path, dt)
			}
		} else {
			w.Header().Set("WWW-Authenticate", "Basic")
			http.Error(w, "Authorization Required", http.StatusUnauthorized)
		}
	})
}

func (h *Http) Router() *mux.Router {
	if h.router == nil {
		h.router = mux.NewRouter()
		h.router.NotFoundHandler = http.HandlerFunc(NotFound)
		h.router.MethodNotAllowedHandler = http.HandlerFunc(NotAllowed)
		h.router.Use(h.Middleware)
	}

	return h.router
}

func (h *Http) LoadRouter() {
	router := h.Router()

	h.PProf(router)
	h.Prome(router)
	router.HandleFunc("/api/urls", h.GetApi).Methods("GET")
	api.Add(router, h.tracker)
}

func (h *Http) SaveToken() {
	f, err := libol.CreateFile(h.adminFile)
	if err != nil {
		libol.Error("Http.SaveToken: %s", err)
		return
	}
	defer f.Close()
	if _, err := f.Write([]byte(h.adminToken)); err != nil {
		libol.Error("Http.SaveToken: %s", err)
		return
	}
}

func (h *Http) LoadToken() {
	token := ""
	if _, err := os.Stat(h.adminFile); os.IsNotExist(err) {
		libol.Info("Http.LoadToken: file:%s does not exist", h.adminFile)
	} else {
		contents, err := os.ReadFile(h.adminFile)
		if err != nil {
			libol.Error("Http.LoadToken: file:%s %s", h.adminFile, err)
		} else {
			token = strings.TrimSpace(string(contents))
		}
	}
	if token == "" {
		token = libol.GenString(32)
	}
	h.SetToken(token)
}

func (h *Http) SetToken(value string) {
	h.adminToken = value
}

func (h *Http) Token() string {
	return h.adminToken
}

// Start serves the server built by Initialize until Shutdown.
func (h *Http) Start() {
	h.lock.Lock()
	server, stopped := h.server, h.stopped
	h.lock.Unlock()
	if server == nil || stopped {
		return
	}

	libol.Info("Http.Start %s", h.listen)
	promise := libol.NewPromise()
	promise.Go(func() error {
		if err := server.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			libol.Error("Http.Start on %s: %s", h.listen, err)
			return err
		}
		return nil
	})
}

func (h *Http) Shutdown() {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.stopped = true
	if h.server == nil {
		return
	}
	libol.Info("Http.Shutdown %s", h.listen)
	if err := h.server.Shutdown(context.Background()); err != nil {
		libol.Error("Http.Shutdown: %v", err)
	}
}

func (h *Http) IsAuth(w http.ResponseWriter, r *http.Request) bool {
	user, _, ok := r.BasicAuth()
	if !ok {
		return false
	}
	return user == h.adminToken
}

func (h *Http) GetApi(w http.ResponseWriter, r *http.Request) {
	var urls []string
	_ = h.router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil || !strings.HasPrefix(path, "/api") {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		for _, m := range methods {
			urls = append(urls, fmt.Sprintf("%-6s %s", m, path))
		}
		return nil
	})
	api.ResponseYaml(w, urls)
}
