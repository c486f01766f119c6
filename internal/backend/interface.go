package backend

import (
	"salesboard/internal/store"
)

// Backend bundles everything the HTTP layer needs from a dataset store.
type Backend interface {
	store.DatasetWriter
	store.RecordLister
	store.TotalsReader
}

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result contains the backend instance and optional cleanup function.
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}
