package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/luscis/smartwifi/pkg/libol"
	"github.com/luscis/smartwifi/pkg/schema"
)

type Log struct {
}

func (l Log) Router(router *mux.Router) {
	router.HandleFunc("/api/log", l.List).Methods("GET")
	router.HandleFunc("/api/log", l.Add).Methods("POST")
}

func (l Log) List(w http.ResponseWriter, r *http.Request) {
	size, _ := strconv.Atoi(GetQueryOne(r, "size"))
	if size <= 0 {
		size = 32
	}
	log := schema.NewLogSchema()
	for m := range libol.Logger.List() {
		if m == nil {
			break
		}
		if len(log.Messages) < size {
			log.Messages = append(log.Messages, *m)
		}
	}
	Response(w, r, log)
}

func (l Log) Add(w http.ResponseWriter, r *http.Request) {
	log := &schema.Log{}
	if err := GetData(r, log); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	libol.SetLevel(log.Level)
	ResponseMsg(w, 0, "")
}
