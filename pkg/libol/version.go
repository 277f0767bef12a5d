package libol

// Set with -ldflags "-X github.com/luscis/smartwifi/pkg/libol.Version=...".
var (
	Version = "v0.1.0"
	Date    = ""
	Commit  = ""
)
