package config

type manager struct {
	Tracker *Tracker
}

var Manager = manager{}

func Get() *Tracker {
	if Manager.Tracker == nil {
		Manager.Tracker = DefaultTracker()
	}
	return Manager.Tracker
}
