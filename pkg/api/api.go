package api

import (
	"context"

	"github.com/luscis/smartwifi/pkg/schema"
)

// Tracker is what the handlers need from the running daemon.
type Tracker interface {
	UpTime() int64
	ScanNow(ctx context.Context) schema.Scan
}
