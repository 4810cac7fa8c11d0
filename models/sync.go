package models

import "time"

// SyncState is a phase of the currency sync state machine.
type SyncState string

const (
	SyncIdle        SyncState = "idle"
	SyncFetching    SyncState = "fetching"
	SyncReconciling SyncState = "reconciling"
	SyncDone        SyncState = "done"
	SyncFailed      SyncState = "failed"
)

// IsTerminal reports whether the sync finished, successfully or not.
func (s SyncState) IsTerminal() bool {
	return s == SyncDone || s == SyncFailed
}

// SyncStatus is a point-in-time snapshot of the currency sync.
type SyncStatus struct {
	State       SyncState        `json:"state"`
	Attempt     int              `json:"attempt"`
	MaxAttempts int              `json:"max_attempts"`
	LastError   string           `json:"last_error,omitempty"`
	Result      *ReconcileResult `json:"result,omitempty"`
	StartedAt   *time.Time       `json:"started_at,omitempty"`
	FinishedAt  *time.Time       `json:"finished_at,omitempty"`
}
