package cache

import (
	"github.com/luscis/smartwifi/pkg/config"
)

func Init(cfg *config.Tracker) {
	Scanner.Init(len(cfg.Routers))
	Presence.Init()
}
