package main

import (
	"log"

	"github.com/luscis/smartwifi/pkg/config"
	"github.com/luscis/smartwifi/pkg/libol"
	"github.com/luscis/smartwifi/pkg/tracker"
)

func main() {
	log.SetFlags(0)
	c := config.NewTracker()
	libol.SetLogger(c.Log.File, c.Log.Verbose)
	libol.Debug("main %s", c.Conf)
	t := tracker.New(c)
	libol.PreNotify()
	t.Initialize()
	t.Start()
	libol.SdNotify()
	libol.Wait()
	t.Stop()
}
