package brew

import (
	"strings"
	"testing"
)

const catalogFixture = `{
	"formulae": [
		{
			"name": "wget",
			"tap": "homebrew/core",
			"desc": "Internet file retriever",
			"homepage": "https://www.gnu.org/software/wget/",
			"versions": {"stable": "1.24.5", "head": "HEAD"},
			"dependencies": ["libidn2", "openssl@3"],
			"build_dependencies": ["pkgconf"],
			"aliases": [],
			"oldnames": [],
			"deprecated": false,
			"disabled": false
		},
		{
			"name": "python@3.12",
			"tap": "homebrew/core",
			"desc": "Interpreted, interactive, object-oriented programming language",
			"homepage": "https://www.python.org/",
			"versions": {"stable": "3.12.7", "head": null},
			"dependencies": [],
			"aliases": ["python3.12"],
			"oldnames": ["python"],
			"deprecated": true,
			"disabled": false
		}
	],
	"casks": [
		{
			"token": "firefox",
			"tap": "homebrew/cask",
			"name": ["Firefox", "Mozilla Firefox"],
			"desc": "Web browser",
			"homepage": "https://www.mozilla.org/firefox/",
			"version": "133.0",
			"depends_on": {"formula": ["libfoo"], "cask": ["bar-helper"]},
			"deprecated": false,
			"disabled": false
		}
	]
}`

func TestDecodeCatalog(t *testing.T) {
	t.Parallel()

	catalog, err := decodeCatalog(strings.NewReader(catalogFixture))
	if err != nil {
		t.Fatalf("decodeCatalog: %v", err)
	}

	if catalog.Formulae.Len() != 2 {
		t.Fatalf("got %d formulae, want 2", catalog.Formulae.Len())
	}
	if catalog.Casks.Len() != 1 {
		t.Fatalf("got %d casks, want 1", catalog.Casks.Len())
	}

	wget, ok := catalog.Formulae.Get("wget")
	if !ok {
		t.Fatal("wget not keyed by name")
	}
	if wget.Versions.Stable != "1.24.5" || wget.Versions.Head != "HEAD" {
		t.Errorf("wget versions = %+v", wget.Versions)
	}
	if len(wget.Dependencies) != 2 || len(wget.BuildDependencies) != 1 {
		t.Errorf("wget deps = %v / %v", wget.Dependencies, wget.BuildDependencies)
	}
	if wget.Executables == nil || wget.Executables.Len() != 0 {
		t.Errorf("wget executables = %v, want empty set", wget.Executables)
	}

	python, _ := catalog.Formulae.Get("python@3.12")
	if !python.Aliases.Contains("python3.12") {
		t.Error("python aliases not decoded")
	}
	if !python.OldNames.Contains("python") {
		t.Error("python oldnames not decoded")
	}
	if !python.Deprecated {
		t.Error("python deprecated flag lost")
	}
	if python.Versions.Head != "" {
		t.Errorf("null head decoded to %q", python.Versions.Head)
	}

	firefox, ok := catalog.Casks.Get("firefox")
	if !ok {
		t.Fatal("firefox not keyed by token")
	}
	if !firefox.Names.Contains("Mozilla Firefox") {
		t.Error("firefox names not decoded")
	}
	if len(firefox.Dependencies) != 2 {
		t.Errorf("firefox dependencies = %v, want formula+cask deps flattened", firefox.Dependencies)
	}
}

func TestDecodeCatalogInvalid(t *testing.T) {
	t.Parallel()

	if _, err := decodeCatalog(strings.NewReader("][")); err == nil {
		t.Error("decodeCatalog returned no error for invalid JSON")
	}
}
