package jnap

import (
	"bytes"
	"encoding/json"
)

type DeviceConnection struct {
	MacAddress string `json:"macAddress"`
	IpAddress  string `json:"ipAddress,omitempty"`
}

type DeviceInfo struct {
	DeviceID     string             `json:"deviceID,omitempty"`
	FriendlyName string             `json:"friendlyName,omitempty"`
	Connections  []DeviceConnection `json:"connections"`
}

type DevicesOutput struct {
	Revision int64        `json:"revision,omitempty"`
	Devices  []DeviceInfo `json:"devices"`
}

type NetworkConnection struct {
	MacAddress string          `json:"macAddress"`
	Wireless   json.RawMessage `json:"wireless,omitempty"`
}

// IsWireless reports a radio client. Routers send an object with radio
// details under wireless, so anything but an absent key, false or null counts.
func (c NetworkConnection) IsWireless() bool {
	w := bytes.TrimSpace(c.Wireless)
	if len(w) == 0 {
		return false
	}
	switch string(w) {
	case "false", "null":
		return false
	}
	return true
}

type ConnectionsOutput struct {
	Connections []NetworkConnection `json:"connections"`
}
