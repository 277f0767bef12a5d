package config

import (
	"flag"
	"time"

	"github.com/luscis/smartwifi/pkg/libol"
)

type Tracker struct {
	Conf         string    `json:"-" yaml:"-"`
	Log          Log       `json:"log" yaml:"log"`
	Http         *Http     `json:"http,omitempty" yaml:"http,omitempty"`
	TokenFile    string    `json:"tokenFile,omitempty" yaml:"tokenFile,omitempty"`
	Interval     int       `json:"interval,omitempty" yaml:"interval,omitempty"`
	ConsiderHome int       `json:"considerHome,omitempty" yaml:"considerHome,omitempty"`
	Nameserver   string    `json:"nameserver,omitempty" yaml:"nameserver,omitempty"`
	Routers      []*Router `json:"routers" yaml:"routers"`
}

func DefaultTracker() *Tracker {
	obj := &Tracker{
		Conf: EtcDir("tracker.yaml"),
		Log: Log{
			File:    LogFile("smartwifi.log"),
			Verbose: libol.INFO,
		},
		Http:         &Http{},
		TokenFile:    EtcDir("token"),
		Interval:     12,
		ConsiderHome: 180,
	}
	obj.Correct()
	return obj
}

// NewTracker parses the command line, loads the configuration file and
// fills in defaults.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.Flags(flag.CommandLine)
	flag.Parse()
	t.Initialize()
	Manager.Tracker = t
	return t
}

func (t *Tracker) Flags(fs *flag.FlagSet) {
	obj := DefaultTracker()
	if t.Http == nil {
		t.Http = &Http{}
	}
	fs.StringVar(&t.Conf, "conf", obj.Conf, "The configuration file")
	fs.StringVar(&t.Log.File, "log:file", obj.Log.File, "File log saved to")
	fs.IntVar(&t.Log.Verbose, "log:level", obj.Log.Verbose, "Log level value")
	fs.StringVar(&t.Http.Listen, "http:listen", "", "Http listen for admin api")
}

func (t *Tracker) Initialize() {
	if err := t.Load(); err != nil {
		libol.Warn("Tracker.Initialize %s", err)
	}
	t.Correct()
	libol.SetLogger(t.Log.File, t.Log.Verbose)
}

// Load merges the file over the values given on the command line.
func (t *Tracker) Load() error {
	flags := *t
	if t.Http != nil {
		http := *t.Http
		flags.Http = &http
	}
	if err := libol.UnmarshalLoad(t, t.Conf); err != nil {
		return err
	}
	if flags.Http != nil && flags.Http.Listen != "" {
		if t.Http == nil {
			t.Http = &Http{}
		}
		t.Http.Listen = flags.Http.Listen
	}
	return nil
}

func (t *Tracker) Correct() {
	t.Log.Correct()
	if t.Http == nil {
		t.Http = &Http{}
	}
	t.Http.Correct()
	if t.TokenFile == "" {
		t.TokenFile = EtcDir("token")
	}
	if t.Interval <= 0 {
		t.Interval = 12
	}
	if t.ConsiderHome <= 0 {
		t.ConsiderHome = 180
	}
	for _, r := range t.Routers {
		r.Correct()
	}
}

func (t *Tracker) GetInterval() time.Duration {
	return time.Duration(t.Interval) * time.Second
}

func (t *Tracker) GetConsiderHome() time.Duration {
	return time.Duration(t.ConsiderHome) * time.Second
}
