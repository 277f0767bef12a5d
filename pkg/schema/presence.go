package schema

type Presence struct {
	Mac       string `json:"mac"`
	Name      string `json:"name"`
	Ip        string `json:"ip"`
	Host      string `json:"host"`
	Hostname  string `json:"hostname,omitempty"`
	FirstSeen int64  `json:"firstSeen"`
	LastSeen  int64  `json:"lastSeen"`
	Home      bool   `json:"home"`
	Uptime    int64  `json:"uptime"`
}
