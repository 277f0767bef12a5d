package models

import "time"

type Presence struct {
	Mac       string `json:"mac"`
	Name      string `json:"name"`
	Ip        string `json:"ip"`
	Host      string `json:"host"`
	Hostname  string `json:"hostname,omitempty"`
	FirstSeen int64  `json:"firstSeen"`
	LastSeen  int64  `json:"lastSeen"`
	Home      bool   `json:"home"`
}

func NewPresence(d Device, host string, now time.Time) *Presence {
	return &Presence{
		Mac:       d.Mac,
		Name:      d.Name,
		Ip:        d.Ip,
		Host:      host,
		FirstSeen: now.Unix(),
		LastSeen:  now.Unix(),
		Home:      true,
	}
}

// See refreshes p from a device found again on host. It reports whether
// the device came back home.
func (p *Presence) See(d Device, host string, now time.Time) bool {
	back := !p.Home
	p.Name = d.Name
	p.Ip = d.Ip
	p.Host = host
	p.LastSeen = now.Unix()
	p.Home = true
	return back
}

// Expire marks p away once it has not been seen for timeout. It reports
// whether p just left.
func (p *Presence) Expire(now time.Time, timeout time.Duration) bool {
	if !p.Home {
		return false
	}
	if now.Unix()-p.LastSeen < int64(timeout/time.Second) {
		return false
	}
	p.Home = false
	return true
}

func (p *Presence) UpTime() int64 {
	return time.Now().Unix() - p.FirstSeen
}
