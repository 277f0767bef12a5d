package schema

type Scanner struct {
	Host        string `json:"host"`
	Ok          bool   `json:"ok"`
	LastRefresh int64  `json:"lastRefresh"`
	LastSuccess int64  `json:"lastSuccess"`
	LastError   string `json:"lastError,omitempty"`
	Devices     int    `json:"devices"`
}
