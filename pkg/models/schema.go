package models

import (
	"github.com/luscis/smartwifi/pkg/schema"
)

func NewDeviceSchema(d Device, host string) schema.Device {
	return schema.Device{
		Mac:  d.Mac,
		Name: d.Name,
		Ip:   d.Ip,
		Host: host,
	}
}

func NewPresenceSchema(p *Presence) schema.Presence {
	return schema.Presence{
		Mac:       p.Mac,
		Name:      p.Name,
		Ip:        p.Ip,
		Host:      p.Host,
		Hostname:  p.Hostname,
		FirstSeen: p.FirstSeen,
		LastSeen:  p.LastSeen,
		Home:      p.Home,
		Uptime:    p.UpTime(),
	}
}
