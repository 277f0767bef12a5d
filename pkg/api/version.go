package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/luscis/smartwifi/pkg/schema"
)

type Version struct {
	Tracker Tracker
}

func (l Version) Router(router *mux.Router) {
	router.HandleFunc("/api/version", l.List).Methods("GET")
}

func (l Version) List(w http.ResponseWriter, r *http.Request) {
	ver := schema.NewVersionSchema()
	ver.Uptime = l.Tracker.UpTime()
	Response(w, r, ver)
}
