package engine

import (
	"reflect"
	"testing"

	"github.com/teamcutter/brewer/internal/domain"
)

func TestMergeIntersection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		all      []string
		evidence []string
		want     []string
	}{
		{"both empty", nil, nil, nil},
		{"no evidence", []string{"a", "b"}, nil, nil},
		{"no catalog", nil, []string{"a", "b"}, nil},
		{"full overlap", []string{"a", "b"}, []string{"a", "b"}, []string{"a", "b"}},
		{"partial overlap", []string{"a", "b", "c"}, []string{"b", "c", "d"}, []string{"b", "c"}},
		{"disjoint", []string{"a"}, []string{"b"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			all := domain.NewStore[string]()
			for _, k := range tt.all {
				all.Insert(k, "unit-"+k)
			}

			evidence := domain.NewStore[int]()
			for _, k := range tt.evidence {
				evidence.Insert(k, len(k))
			}

			merged := merge(all, evidence, func(unit string, ev int) string {
				return unit
			})

			var want []string
			want = append(want, tt.want...)
			got := merged.Keys()
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("merged keys = %v, want %v", got, want)
			}
		})
	}
}

func TestMergeCombines(t *testing.T) {
	t.Parallel()

	all := domain.Store[domain.Formula]{"jq": {Name: "jq", Desc: "JSON processor"}}
	evidence := domain.Store[domain.Receipt]{
		"jq": {InstalledOnRequest: true},
	}

	merged := merge(all, evidence, func(f domain.Formula, r domain.Receipt) domain.InstalledFormula {
		return domain.InstalledFormula{Upstream: f, Receipt: r}
	})

	unit, ok := merged.Get("jq")
	if !ok {
		t.Fatal("jq missing from merged store")
	}
	if unit.Upstream.Desc != "JSON processor" {
		t.Errorf("upstream not carried over: %+v", unit.Upstream)
	}
	if !unit.Receipt.InstalledOnRequest {
		t.Error("receipt not carried over")
	}
}
