package schema

type Message struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Scan is the result of one tracker pass.
type Scan struct {
	Scanners int `json:"scanners"`
	Devices  int `json:"devices"`
	Home     int `json:"home"`
}
