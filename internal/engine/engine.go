package engine

import (
	"context"
	"time"

	"github.com/teamcutter/brewer/internal/domain"
)

// DefaultTTL is how long a cached catalog is trusted when no policy
// is configured.
const DefaultTTL = 24 * time.Hour

// CachePolicy decides when a persisted catalog must be refetched.
type CachePolicy struct {
	never bool
	ttl   time.Duration
}

// NeverExpire keeps the cached catalog forever; only an explicit
// update replaces it.
func NeverExpire() CachePolicy {
	return CachePolicy{never: true}
}

// ExpireAfter invalidates the cached catalog d after its last write.
func ExpireAfter(d time.Duration) CachePolicy {
	return CachePolicy{ttl: d}
}

// Config assembles an Engine. A zero Policy means ExpireAfter(DefaultTTL).
type Config struct {
	Store  domain.StateStore
	Brew   domain.Brew
	Policy CachePolicy
}

// Engine reconciles the brew catalog with locally observed
// installation evidence and keeps the persisted snapshot fresh. It
// never logs or prints; failures surface to the caller unchanged.
type Engine struct {
	store  domain.StateStore
	brew   domain.Brew
	policy CachePolicy
}

func New(cfg Config) *Engine {
	if cfg.Policy == (CachePolicy{}) {
		cfg.Policy = ExpireAfter(DefaultTTL)
	}

	return &Engine{
		store:  cfg.Store,
		brew:   cfg.Brew,
		policy: cfg.Policy,
	}
}

// Cache merges the persisted catalog, if any, with freshly observed
// installation evidence. Returns nil if no catalog has ever been
// persisted.
func (e *Engine) Cache() (*domain.State, error) {
	catalog, err := e.store.State()
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, nil
	}

	return e.observe(catalog)
}

// CacheExpired reports whether the persisted catalog is past its TTL.
// A store with no update timestamp counts as expired.
func (e *Engine) CacheExpired() (bool, error) {
	if e.policy.never {
		return false, nil
	}

	last, ok, err := e.store.LastUpdate()
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}

	return !time.Now().Before(last.Add(e.policy.ttl)), nil
}

// CacheOrLatest is the primary entry point: it returns the cached
// state when fresh, and otherwise performs a full fetch, persists the
// new catalog and returns the fresh state.
func (e *Engine) CacheOrLatest(ctx context.Context) (*domain.State, error) {
	cached, err := e.Cache()
	if err != nil {
		return nil, err
	}

	expired, err := e.CacheExpired()
	if err != nil {
		return nil, err
	}

	if cached != nil && !expired {
		return cached, nil
	}

	latest, err := e.Latest(ctx)
	if err != nil {
		return nil, err
	}

	if err := e.UpdateCache(latest); err != nil {
		return nil, err
	}

	return latest, nil
}

// UpdateCache persists the catalog portion of state, regardless of
// the expiry policy.
func (e *Engine) UpdateCache(state *domain.State) error {
	return e.store.SetState(&domain.Catalog{
		Formulae: state.Formulae.All,
		Casks:    state.Casks.All,
	})
}

// Latest performs an unconditional full fetch and merge. The
// persisted cache is neither read nor written.
func (e *Engine) Latest(ctx context.Context) (*domain.State, error) {
	catalog, err := e.brew.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	executables, err := e.brew.ExecutableIndex(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := e.brew.InstallCounts(ctx)
	if err != nil {
		return nil, err
	}

	for name, f := range catalog.Formulae {
		set, ok := executables.Get(name)
		if !ok {
			set = domain.NewStringSet()
		}
		f.Executables = set

		if count, ok := counts.Get(name); ok {
			f.Analytics = &domain.Analytics{Install30d: count}
		}

		catalog.Formulae.Insert(name, f)
	}

	return e.observe(catalog)
}

// observe rescans local installation evidence and merges it against
// the given catalog.
func (e *Engine) observe(catalog *domain.Catalog) (*domain.State, error) {
	receipts, err := e.brew.InstalledReceipts()
	if err != nil {
		return nil, err
	}

	versions, err := e.brew.InstalledCaskVersions()
	if err != nil {
		return nil, err
	}

	return &domain.State{
		Formulae: domain.KegState[domain.Formula, domain.InstalledFormula]{
			All: catalog.Formulae,
			Installed: merge(catalog.Formulae, receipts, func(f domain.Formula, r domain.Receipt) domain.InstalledFormula {
				return domain.InstalledFormula{Upstream: f, Receipt: r}
			}),
		},
		Casks: domain.KegState[domain.Cask, domain.InstalledCask]{
			All: catalog.Casks,
			Installed: merge(catalog.Casks, versions, func(c domain.Cask, v domain.StringSet) domain.InstalledCask {
				return domain.InstalledCask{Upstream: c, Versions: v}
			}),
		},
	}, nil
}
