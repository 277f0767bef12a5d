package libol

import (
	"github.com/coreos/go-systemd/v22/daemon"
)

func sdNotify(state string) bool {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		Warn("SdNotify: %s %s", state, err)
		return false
	}
	return sent
}

// PreNotify tells systemd we are still starting, it is a no-op outside
// of a notify unit.
func PreNotify() {
	sdNotify("STATUS=starting")
}

func SdNotify() {
	if sdNotify(daemon.SdNotifyReady) {
		Info("SdNotify: ready")
	}
}
