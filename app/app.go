// Package app is the root bubbletea model. It owns the navigation stack
// and routes every message that mutates navigation state through one loop.
package app

import (
	"time"

	"goway/coordinator"
	"goway/destination"
	"goway/kvstore"
	gowaylog "goway/utils/log"
	"goway/venue"

	_ "goway/commands" // registers the palette commands
)

const version = "dev"

func l() *gowaylog.Logger {
	return gowaylog.Component("app")
}

// Deps are the collaborators the app is built from. The coordinator must
// be the only one in the process.
type Deps struct {
	Catalog     *venue.Static
	Coordinator *coordinator.Coordinator
	// Store is polled for requests written by other processes.
	Store kvstore.Store
	// SettleDelay separates a stack reset from the following push.
	SettleDelay time.Duration
	// PollInterval of the store; zero disables polling.
	PollInterval time.Duration
	// Open is shown on start in place of the restored screen.
	Open *destination.Destination
}

// lastDestinationKey holds the screen shown when the app last quit.
const lastDestinationKey = "lastDestination"

// ForegroundMsg is sent when the app becomes active. Reset marks an
// activation from outside the terminal, which starts from the home screen.
type ForegroundMsg struct {
	Reset bool
}

// BackgroundMsg is sent when the app stops being active.
type BackgroundMsg struct{}

// persistedMsg reports the request keys currently in the store.
type persistedMsg struct {
	keys []coordinator.PersistedKey
}
