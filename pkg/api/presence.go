package api

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/luscis/smartwifi/pkg/cache"
	"github.com/luscis/smartwifi/pkg/models"
	"github.com/luscis/smartwifi/pkg/schema"
)

type Presence struct {
}

func (h Presence) Router(router *mux.Router) {
	router.HandleFunc("/api/presence", h.List).Methods("GET")
	router.HandleFunc("/api/presence/{mac}", h.Get).Methods("GET")
}

func (h Presence) List(w http.ResponseWriter, r *http.Request) {
	home := GetQueryOne(r, "home") == "true"
	items := make([]schema.Presence, 0, 32)
	for p := range cache.Presence.List() {
		if p == nil {
			break
		}
		if home && !p.Home {
			continue
		}
		items = append(items, models.NewPresenceSchema(p))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Mac < items[j].Mac
	})
	Response(w, r, items)
}

func (h Presence) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if p, ok := cache.Presence.Get(vars["mac"]); ok {
		Response(w, r, models.NewPresenceSchema(&p))
	} else {
		http.Error(w, vars["mac"], http.StatusNotFound)
	}
}
