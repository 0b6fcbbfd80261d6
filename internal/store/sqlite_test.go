package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/teamcutter/brewer/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Formulae: domain.Store[domain.Formula]{
			"wget": {
				Name:         "wget",
				Tap:          "homebrew/core",
				Desc:         "Internet file retriever",
				Homepage:     "https://www.gnu.org/software/wget/",
				Versions:     domain.Versions{Stable: "1.24.5", Head: "HEAD"},
				Dependencies: []string{"libidn2", "openssl@3"},
				Aliases:      domain.NewStringSet(),
				OldNames:     domain.NewStringSet(),
				Executables:  domain.NewStringSet("wget"),
				Analytics:    &domain.Analytics{Install30d: 123456},
			},
			"jq": {
				Name:        "jq",
				Tap:         "homebrew/core",
				Desc:        "Lightweight and flexible command-line JSON processor",
				Versions:    domain.Versions{Stable: "1.7.1"},
				Aliases:     domain.NewStringSet("jq@1.7"),
				OldNames:    domain.NewStringSet(),
				Executables: domain.NewStringSet(),
			},
		},
		Casks: domain.Store[domain.Cask]{
			"firefox": {
				Token:    "firefox",
				Tap:      "homebrew/cask",
				Desc:     "Web browser",
				Version:  "133.0",
				Names:    domain.NewStringSet("Firefox", "Mozilla Firefox"),
				Homepage: "https://www.mozilla.org/firefox/",
			},
		},
	}
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("full catalog", func(t *testing.T) {
		t.Parallel()
		s := openTestStore(t)

		want := testCatalog()
		if err := s.SetState(want); err != nil {
			t.Fatalf("SetState: %v", err)
		}

		got, err := s.State()
		if err != nil {
			t.Fatalf("State: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("State() = %+v, want %+v", got, want)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()
		s := openTestStore(t)

		want := &domain.Catalog{
			Formulae: domain.NewStore[domain.Formula](),
			Casks:    domain.NewStore[domain.Cask](),
		}
		if err := s.SetState(want); err != nil {
			t.Fatalf("SetState: %v", err)
		}

		got, err := s.State()
		if err != nil {
			t.Fatalf("State: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("State() = %+v, want %+v", got, want)
		}
	})

	t.Run("wholesale overwrite", func(t *testing.T) {
		t.Parallel()
		s := openTestStore(t)

		if err := s.SetState(testCatalog()); err != nil {
			t.Fatalf("SetState: %v", err)
		}

		want := &domain.Catalog{
			Formulae: domain.Store[domain.Formula]{
				"ripgrep": {Name: "ripgrep", Executables: domain.NewStringSet("rg")},
			},
			Casks: domain.NewStore[domain.Cask](),
		}
		if err := s.SetState(want); err != nil {
			t.Fatalf("SetState: %v", err)
		}

		got, err := s.State()
		if err != nil {
			t.Fatalf("State: %v", err)
		}
		if got.Formulae.Len() != 1 {
			t.Fatalf("got %d formulae after overwrite, want 1", got.Formulae.Len())
		}
		if _, ok := got.Formulae.Get("wget"); ok {
			t.Error("wget survived a wholesale overwrite")
		}
	})
}

func TestStateAbsent(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	got, err := s.State()
	if err != nil {
		t.Fatalf("State on fresh store: %v", err)
	}
	if got != nil {
		t.Errorf("State on fresh store = %+v, want nil", got)
	}
}

func TestStateCorrupt(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	if _, err := s.db.Exec(
		"INSERT OR REPLACE INTO kv (bucket, key, value) VALUES (?, ?, ?)",
		stateBucket, stateKey, []byte("not zstd at all"),
	); err != nil {
		t.Fatalf("injecting corrupt state: %v", err)
	}

	if _, err := s.State(); err == nil {
		t.Error("State returned no error for corrupt bytes")
	}
}

func TestLastUpdate(t *testing.T) {
	t.Parallel()

	t.Run("absent before any write", func(t *testing.T) {
		t.Parallel()
		s := openTestStore(t)

		_, ok, err := s.LastUpdate()
		if err != nil {
			t.Fatalf("LastUpdate: %v", err)
		}
		if ok {
			t.Error("LastUpdate reported a timestamp on a fresh store")
		}
	})

	t.Run("within write window", func(t *testing.T) {
		t.Parallel()
		s := openTestStore(t)

		before := time.Now().Add(-time.Second)
		if err := s.SetState(testCatalog()); err != nil {
			t.Fatalf("SetState: %v", err)
		}
		after := time.Now().Add(time.Second)

		got, ok, err := s.LastUpdate()
		if err != nil {
			t.Fatalf("LastUpdate: %v", err)
		}
		if !ok {
			t.Fatal("LastUpdate reported no timestamp after SetState")
		}
		if got.Before(before) || got.After(after) {
			t.Errorf("LastUpdate = %v, want within [%v, %v]", got, before, after)
		}
	})
}
