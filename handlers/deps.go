package handlers

import (
	"github.com/Zoh007/WealthScore/llm"
	"github.com/Zoh007/WealthScore/models"
	"github.com/Zoh007/WealthScore/nessie"
	"github.com/Zoh007/WealthScore/store"
)

// SnapshotSource is the slice of the poller the handlers read from.
type SnapshotSource interface {
	Snapshot() models.Snapshot
	IsRunning() bool
}

// Package-level collaborators, wired up in main before the router starts.
var (
	Bank       *nessie.Client
	EventStore *store.Store
	Chat       *llm.Client
	Snapshots  SnapshotSource
)
