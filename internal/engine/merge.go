package engine

import "github.com/teamcutter/brewer/internal/domain"

// merge builds the installed view from catalog entries and locally
// observed evidence. The catalog is the authoritative key set:
// evidence for keys it does not contain (renamed or removed units) is
// dropped, never errored.
func merge[A, E, I any](all domain.Store[A], evidence domain.Store[E], combine func(A, E) I) domain.Store[I] {
	installed := make(domain.Store[I], evidence.Len())

	for key, ev := range evidence {
		unit, ok := all.Get(key)
		if !ok {
			continue
		}
		installed.Insert(key, combine(unit, ev))
	}

	return installed
}
