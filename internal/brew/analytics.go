package brew

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/teamcutter/brewer/internal/domain"
)

// InstallCounts fetches the formulae.brew.sh 30-day install analytics
// feed. Entries that do not match a catalog key (for example
// "--HEAD" variants) simply never enrich anything.
func (b *Brew) InstallCounts(ctx context.Context) (domain.Store[uint64], error) {
	body, err := b.fetch(ctx, b.analyticsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return parseInstallCounts(body)
}

func parseInstallCounts(r io.Reader) (domain.Store[uint64], error) {
	var payload struct {
		Items []struct {
			Formula string `json:"formula"`
			Count   string `json:"count"`
		} `json:"items"`
	}

	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding analytics: %w", err)
	}

	counts := make(domain.Store[uint64], len(payload.Items))
	for _, item := range payload.Items {
		// Counts carry thousands separators, e.g. "1,234,567".
		n, err := strconv.ParseUint(strings.ReplaceAll(item.Count, ",", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing install count for %s: %w", item.Formula, err)
		}
		counts.Insert(item.Formula, n)
	}

	return counts, nil
}
