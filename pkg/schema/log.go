package schema

import "github.com/luscis/smartwifi/pkg/libol"

type Log struct {
	Level    int             `json:"level"`
	Messages []libol.Message `json:"messages,omitempty"`
}

func NewLogSchema() Log {
	return Log{
		Level: libol.GetLevel(),
	}
}
