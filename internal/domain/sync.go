package domain

import "time"

// SyncStats holds statistics about one full sync pass.
type SyncStats struct {
	Categories int
	Feeds      int
	Articles   int
	Reconciled int
	Purged     int64
	Errors     int
	Duration   time.Duration
}
