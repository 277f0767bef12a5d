package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Scan struct {
	Tracker Tracker
}

func (h Scan) Router(router *mux.Router) {
	router.HandleFunc("/api/scan", h.Add).Methods("POST")
}

func (h Scan) Add(w http.ResponseWriter, r *http.Request) {
	Response(w, r, h.Tracker.ScanNow(r.Context()))
}
