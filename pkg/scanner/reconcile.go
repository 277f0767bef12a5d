package scanner

import (
	"github.com/luscis/smartwifi/pkg/jnap"
	"github.com/luscis/smartwifi/pkg/models"
)

type named struct {
	name string
	ip   string
}

// Reconcile joins the device list (slot 0) with the network connections
// (slot 1) on MAC address. Only wireless connections are kept, in the order
// the router reported them.
func Reconcile(resp *jnap.Response) (models.Snapshot, error) {
	devs := jnap.DevicesOutput{}
	if err := resp.Slot(0, &devs); err != nil {
		return nil, err
	}
	if devs.Devices == nil {
		return nil, &jnap.Error{Kind: jnap.ErrMalformed, Reason: "missing responses[0].output.devices"}
	}
	conns := jnap.ConnectionsOutput{}
	if err := resp.Slot(1, &conns); err != nil {
		return nil, err
	}
	if conns.Connections == nil {
		return nil, &jnap.Error{Kind: jnap.ErrMalformed, Reason: "missing responses[1].output.connections"}
	}

	names := make(map[string]named, len(devs.Devices))
	for _, dev := range devs.Devices {
		name := dev.FriendlyName
		if name == "" {
			name = models.Unknown
		}
		for _, conn := range dev.Connections {
			if conn.IpAddress == "" {
				continue
			}
			names[models.NormalizeMac(conn.MacAddress)] = named{name: name, ip: conn.IpAddress}
		}
	}

	results := make(models.Snapshot, 0, len(conns.Connections))
	for _, conn := range conns.Connections {
		if conn.MacAddress == "" || !conn.IsWireless() {
			continue
		}
		mac := models.NormalizeMac(conn.MacAddress)
		if n, ok := names[mac]; ok {
			results = append(results, models.NewDevice(mac, n.name, n.ip))
		} else {
			results = append(results, models.NewDevice(mac, models.Unknown, models.Unknown))
		}
	}
	return results, nil
}
