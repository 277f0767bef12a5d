package api

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/luscis/smartwifi/pkg/cache"
	"github.com/luscis/smartwifi/pkg/scanner"
	"github.com/luscis/smartwifi/pkg/schema"
)

type Scanner struct {
}

func (h Scanner) Router(router *mux.Router) {
	router.HandleFunc("/api/scanner", h.List).Methods("GET")
	router.HandleFunc("/api/scanner/{host}", h.Get).Methods("GET")
}

func NewScannerSchema(s *scanner.Scanner) schema.Scanner {
	sts := s.Status()
	return schema.Scanner{
		Host:        sts.Host,
		Ok:          sts.Ok,
		LastRefresh: sts.LastRefresh,
		LastSuccess: sts.LastSuccess,
		LastError:   sts.LastError,
		Devices:     sts.Devices,
	}
}

func (h Scanner) List(w http.ResponseWriter, r *http.Request) {
	items := make([]schema.Scanner, 0, 8)
	for s := range cache.Scanner.List() {
		if s == nil {
			break
		}
		items = append(items, NewScannerSchema(s))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Host < items[j].Host
	})
	Response(w, r, items)
}

func (h Scanner) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if s := cache.Scanner.Get(vars["host"]); s != nil {
		Response(w, r, NewScannerSchema(s))
	} else {
		http.Error(w, vars["host"], http.StatusNotFound)
	}
}
