package domain

import (
	"reflect"
	"testing"
)

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("insert overwrites", func(t *testing.T) {
		t.Parallel()
		s := NewStore[int]()
		s.Insert("wget", 1)
		s.Insert("wget", 2)

		if s.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", s.Len())
		}
		if v, _ := s.Get("wget"); v != 2 {
			t.Errorf("Get(wget) = %d, want 2", v)
		}
	})

	t.Run("get miss", func(t *testing.T) {
		t.Parallel()
		s := NewStore[int]()
		if _, ok := s.Get("absent"); ok {
			t.Error("Get on empty store reported a hit")
		}
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()
		s := NewStore[string]()
		s.Insert("jq", "1.7")
		s.Remove("jq")
		if s.Len() != 0 {
			t.Errorf("Len() = %d after remove, want 0", s.Len())
		}
	})

	t.Run("keys sorted", func(t *testing.T) {
		t.Parallel()
		s := NewStore[struct{}]()
		s.Insert("zsh", struct{}{})
		s.Insert("bash", struct{}{})
		s.Insert("fish", struct{}{})

		want := []string{"bash", "fish", "zsh"}
		if got := s.Keys(); !reflect.DeepEqual(got, want) {
			t.Errorf("Keys() = %v, want %v", got, want)
		}
	})
}

func TestStringSet(t *testing.T) {
	t.Parallel()

	set := NewStringSet("curl", "curl-config", "curl")

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	if !set.Contains("curl") {
		t.Error("Contains(curl) = false")
	}
	if set.Contains("wget") {
		t.Error("Contains(wget) = true")
	}

	want := []string{"curl", "curl-config"}
	if got := set.Slice(); !reflect.DeepEqual(got, want) {
		t.Errorf("Slice() = %v, want %v", got, want)
	}
}
