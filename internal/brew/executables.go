package brew

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/teamcutter/brewer/internal/domain"
)

// ExecutableIndex fetches the homebrew-command-not-found registry, a
// line-oriented text file mapping each formula to the executables it
// provides.
func (b *Brew) ExecutableIndex(ctx context.Context) (domain.Store[domain.StringSet], error) {
	body, err := b.fetch(ctx, b.executablesURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return parseExecutables(body)
}

// parseExecutables reads lines of the form
//
//	name(meta): executable1 executable2 ...
//
// Lines missing the colon, or the paren before it, are skipped.
func parseExecutables(r io.Reader) (domain.Store[domain.StringSet], error) {
	index := domain.NewStore[domain.StringSet]()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}

		lhs, rhs, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		paren := strings.Index(lhs, "(")
		if paren < 0 {
			continue
		}

		index.Insert(lhs[:paren], domain.NewStringSet(strings.Fields(rhs)...))
	}

	return index, sc.Err()
}
