package domain

import (
	"context"
	"time"
)

// Brew talks to the local Homebrew installation and its remote
// metadata feeds. All calls block until complete.
type Brew interface {
	// Catalog fetches the full catalog of both kinds, keyed by
	// name/token. Slow: shells out to brew.
	Catalog(ctx context.Context) (*Catalog, error)

	// ExecutableIndex fetches the formula name to provided
	// executables mapping.
	ExecutableIndex(ctx context.Context) (Store[StringSet], error)

	// InstallCounts fetches 30-day install counts per formula name.
	InstallCounts(ctx context.Context) (Store[uint64], error)

	// InstalledReceipts scans the local prefix for install receipts,
	// keyed by formula name.
	InstalledReceipts() (Store[Receipt], error)

	// InstalledCaskVersions scans the Caskroom for installed version
	// directories, keyed by cask token.
	InstalledCaskVersions() (Store[StringSet], error)

	Install(ctx context.Context, keg Keg) error
	Uninstall(ctx context.Context, keg Keg) error
}

// StateStore persists exactly one catalog snapshot together with the
// time it was written.
type StateStore interface {
	// LastUpdate reports when the snapshot was last written; the bool
	// is false if none has ever been.
	LastUpdate() (time.Time, bool, error)

	// State returns the persisted catalog, or nil if none exists.
	// Corrupt data is an error, not an empty result.
	State() (*Catalog, error)

	// SetState atomically replaces the snapshot and its timestamp.
	SetState(c *Catalog) error
}
