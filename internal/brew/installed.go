package brew

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/teamcutter/brewer/internal/domain"
)

// scanParallel bounds concurrent receipt reads. The call still blocks
// until the whole scan is done.
const scanParallel = 16

// InstalledReceipts walks <prefix>/opt and parses the install receipt
// of every keg linked there. A missing opt directory means nothing is
// installed; anything unreadable past that is an error.
func (b *Brew) InstalledReceipts() (domain.Store[domain.Receipt], error) {
	optDir := filepath.Join(b.prefix, "opt")

	entries, err := os.ReadDir(optDir)
	if os.IsNotExist(err) {
		return domain.NewStore[domain.Receipt](), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", optDir, err)
	}

	receipts := domain.NewStore[domain.Receipt]()
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(scanParallel)

	for _, entry := range entries {
		name := entry.Name()
		if isDotfile(name) {
			continue
		}

		g.Go(func() error {
			receipt, err := readReceipt(filepath.Join(optDir, name))
			if err != nil {
				return err
			}

			mu.Lock()
			receipts.Insert(name, receipt)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return receipts, nil
}

func readReceipt(kegPath string) (domain.Receipt, error) {
	// opt entries are symlinks into the Cellar.
	target, err := filepath.EvalSymlinks(kegPath)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("resolving %s: %w", kegPath, err)
	}

	data, err := os.ReadFile(filepath.Join(target, "INSTALL_RECEIPT.json"))
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("reading receipt in %s: %w", target, err)
	}

	var receipt domain.Receipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return domain.Receipt{}, fmt.Errorf("parsing receipt in %s: %w", target, err)
	}

	return receipt, nil
}

// InstalledCaskVersions walks <prefix>/Caskroom and records, per
// cask, the set of installed version directory names.
func (b *Brew) InstalledCaskVersions() (domain.Store[domain.StringSet], error) {
	caskroom := filepath.Join(b.prefix, "Caskroom")

	entries, err := os.ReadDir(caskroom)
	if os.IsNotExist(err) {
		return domain.NewStore[domain.StringSet](), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", caskroom, err)
	}

	store := domain.NewStore[domain.StringSet]()

	for _, entry := range entries {
		token := entry.Name()
		if isDotfile(token) {
			continue
		}

		target, err := filepath.EvalSymlinks(filepath.Join(caskroom, token))
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", token, err)
		}

		children, err := os.ReadDir(target)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", target, err)
		}

		versions := domain.NewStringSet()
		for _, child := range children {
			if isDotfile(child.Name()) {
				continue
			}
			versions.Add(child.Name())
		}

		store.Insert(token, versions)
	}

	return store, nil
}

func isDotfile(name string) bool {
	return strings.HasPrefix(name, ".")
}
