package models

import "strings"

const Unknown = "Unknown"

// Device is one client seen on a router. Build it with NewDevice and treat
// it as a value.
type Device struct {
	Mac  string `json:"mac"`
	Name string `json:"name"`
	Ip   string `json:"ip"`
}

func NewDevice(mac, name, ip string) Device {
	if name == "" {
		name = Unknown
	}
	if ip == "" {
		ip = Unknown
	}
	return Device{
		Mac:  NormalizeMac(mac),
		Name: name,
		Ip:   ip,
	}
}

func (d Device) String() string {
	return d.Mac + ":" + d.Ip + ":" + d.Name
}

// NormalizeMac returns the canonical AA:BB:CC form.
func NormalizeMac(mac string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(mac), "-", ":"))
}

// Snapshot is the device list of one refresh. It is published once and
// never modified afterwards.
type Snapshot []Device

func (s Snapshot) Len() int {
	return len(s)
}

func (s Snapshot) Macs() []string {
	macs := make([]string, 0, len(s))
	for _, d := range s {
		macs = append(macs, d.Mac)
	}
	return macs
}

func (s Snapshot) Name(mac string) (string, bool) {
	mac = NormalizeMac(mac)
	for _, d := range s {
		if d.Mac == mac {
			return d.Name, true
		}
	}
	return "", false
}

func (s Snapshot) Get(mac string) (Device, bool) {
	mac = NormalizeMac(mac)
	for _, d := range s {
		if d.Mac == mac {
			return d, true
		}
	}
	return Device{}, false
}
