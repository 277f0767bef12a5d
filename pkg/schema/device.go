package schema

type Device struct {
	Mac  string `json:"mac"`
	Name string `json:"name"`
	Ip   string `json:"ip"`
	Host string `json:"host"`
}

type DeviceName struct {
	Mac  string `json:"mac"`
	Name string `json:"name"`
}
