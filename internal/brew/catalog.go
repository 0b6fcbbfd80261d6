package brew

import (
	"encoding/json"
	"io"

	"github.com/teamcutter/brewer/internal/domain"
)

// Wire shapes of `brew info --json=v2`. Only the fields we keep are
// listed; brew emits far more.
type formulaJSON struct {
	Name     string `json:"name"`
	Tap      string `json:"tap"`
	Desc     string `json:"desc"`
	Homepage string `json:"homepage"`
	Versions struct {
		Stable string `json:"stable"`
		Head   string `json:"head"`
	} `json:"versions"`
	Dependencies      []string `json:"dependencies"`
	BuildDependencies []string `json:"build_dependencies"`
	Aliases           []string `json:"aliases"`
	OldNames          []string `json:"oldnames"`
	Deprecated        bool     `json:"deprecated"`
	Disabled          bool     `json:"disabled"`
}

type caskJSON struct {
	Token     string   `json:"token"`
	Tap       string   `json:"tap"`
	Desc      string   `json:"desc"`
	Homepage  string   `json:"homepage"`
	Version   string   `json:"version"`
	Names     []string `json:"name"`
	DependsOn struct {
		Formula []string `json:"formula"`
		Cask    []string `json:"cask"`
	} `json:"depends_on"`
	Deprecated bool `json:"deprecated"`
	Disabled   bool `json:"disabled"`
}

func decodeCatalog(r io.Reader) (*domain.Catalog, error) {
	var payload struct {
		Formulae []formulaJSON `json:"formulae"`
		Casks    []caskJSON    `json:"casks"`
	}

	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, err
	}

	formulae := make(domain.Store[domain.Formula], len(payload.Formulae))
	for _, f := range payload.Formulae {
		formulae.Insert(f.Name, toFormula(f))
	}

	casks := make(domain.Store[domain.Cask], len(payload.Casks))
	for _, c := range payload.Casks {
		casks.Insert(c.Token, toCask(c))
	}

	return &domain.Catalog{Formulae: formulae, Casks: casks}, nil
}

func toFormula(f formulaJSON) domain.Formula {
	return domain.Formula{
		Name:     f.Name,
		Tap:      f.Tap,
		Desc:     f.Desc,
		Homepage: f.Homepage,
		Versions: domain.Versions{
			Stable: f.Versions.Stable,
			Head:   f.Versions.Head,
		},
		Dependencies:      f.Dependencies,
		BuildDependencies: f.BuildDependencies,
		Aliases:           domain.NewStringSet(f.Aliases...),
		OldNames:          domain.NewStringSet(f.OldNames...),
		Deprecated:        f.Deprecated,
		Disabled:          f.Disabled,
		Executables:       domain.NewStringSet(),
	}
}

func toCask(c caskJSON) domain.Cask {
	deps := make([]string, 0, len(c.DependsOn.Formula)+len(c.DependsOn.Cask))
	deps = append(deps, c.DependsOn.Formula...)
	deps = append(deps, c.DependsOn.Cask...)

	return domain.Cask{
		Token:        c.Token,
		Tap:          c.Tap,
		Desc:         c.Desc,
		Homepage:     c.Homepage,
		Version:      c.Version,
		Names:        domain.NewStringSet(c.Names...),
		Dependencies: deps,
		Deprecated:   c.Deprecated,
		Disabled:     c.Disabled,
	}
}
