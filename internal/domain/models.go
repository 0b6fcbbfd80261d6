package domain

// Formula is a catalog entry for a formula as reported by brew,
// enriched with the executables it provides and optional analytics.
type Formula struct {
	Name              string    `json:"name"`
	Tap               string    `json:"tap"`
	Desc              string    `json:"desc"`
	Homepage          string    `json:"homepage"`
	Versions          Versions  `json:"versions"`
	Dependencies      []string  `json:"dependencies"`
	BuildDependencies []string  `json:"build_dependencies"`
	Aliases           StringSet `json:"aliases"`
	OldNames          StringSet `json:"oldnames"`
	Deprecated        bool      `json:"deprecated"`
	Disabled          bool      `json:"disabled"`

	// Executables is never nil in a built catalog; formulae with no
	// known executables carry an empty set.
	Executables StringSet  `json:"executables"`
	Analytics   *Analytics `json:"analytics,omitempty"`
}

type Versions struct {
	Stable string `json:"stable"`
	Head   string `json:"head,omitempty"`
}

// Analytics holds the 30-day install count from the Homebrew
// analytics feed.
type Analytics struct {
	Install30d uint64 `json:"install_30d"`
}

// Cask is a catalog entry for a cask, keyed by token.
type Cask struct {
	Token        string    `json:"token"`
	Tap          string    `json:"tap"`
	Desc         string    `json:"desc"`
	Homepage     string    `json:"homepage"`
	Version      string    `json:"version"`
	Names        StringSet `json:"names"`
	Dependencies []string  `json:"dependencies"`
	Deprecated   bool      `json:"deprecated"`
	Disabled     bool      `json:"disabled"`
}

// InstalledFormula pairs a catalog formula with the install receipt
// found on disk.
type InstalledFormula struct {
	Upstream Formula `json:"upstream"`
	Receipt  Receipt `json:"receipt"`
}

// InstalledCask pairs a catalog cask with the version directories
// found under the Caskroom.
type InstalledCask struct {
	Upstream Cask      `json:"upstream"`
	Versions StringSet `json:"versions"`
}

// KegState is the pair of views kept per unit kind: the full catalog
// and the installed subset. Every installed key is present in All.
type KegState[A any, I any] struct {
	All       Store[A] `json:"all"`
	Installed Store[I] `json:"installed"`
}

// State is the full merged snapshot handed to callers.
type State struct {
	Formulae KegState[Formula, InstalledFormula] `json:"formulae"`
	Casks    KegState[Cask, InstalledCask]       `json:"casks"`
}

// Catalog is the persisted portion of a State: both catalogs, no
// installation evidence.
type Catalog struct {
	Formulae Store[Formula] `json:"formulae"`
	Casks    Store[Cask]    `json:"casks"`
}
