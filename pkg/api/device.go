package api

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/luscis/smartwifi/pkg/cache"
	"github.com/luscis/smartwifi/pkg/models"
	"github.com/luscis/smartwifi/pkg/schema"
)

type Device struct {
}

func (h Device) Router(router *mux.Router) {
	router.HandleFunc("/api/device", h.List).Methods("GET")
	router.HandleFunc("/api/device/{mac}", h.Get).Methods("GET")
}

func ListDevices() []schema.Device {
	items := make([]schema.Device, 0, 32)
	for s := range cache.Scanner.List() {
		if s == nil {
			break
		}
		for _, d := range s.Devices() {
			items = append(items, models.NewDeviceSchema(d, s.Host()))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		ii := items[i]
		jj := items[j]
		return ii.Host+ii.Mac < jj.Host+jj.Mac
	})
	return items
}

func (h Device) List(w http.ResponseWriter, r *http.Request) {
	Response(w, r, ListDevices())
}

func (h Device) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mac := models.NormalizeMac(vars["mac"])
	found := false
	for s := range cache.Scanner.List() {
		if s == nil {
			break
		}
		if found {
			continue
		}
		if name, ok := s.GetDeviceName(mac); ok {
			Response(w, r, schema.DeviceName{Mac: mac, Name: name})
			found = true
		}
	}
	if !found {
		http.Error(w, vars["mac"], http.StatusNotFound)
	}
}
