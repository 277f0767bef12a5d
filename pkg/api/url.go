package api

import "github.com/gorilla/mux"

func Add(router *mux.Router, tracker Tracker) {
	Device{}.Router(router)
	Scanner{}.Router(router)
	Presence{}.Router(router)
	Scan{Tracker: tracker}.Router(router)
	Log{}.Router(router)
	Version{Tracker: tracker}.Router(router)
}
