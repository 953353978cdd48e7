// Package report summarizes how the producers of a wine list export resolve
// against the winery catalog.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/S4ng4/winery-resolver/internal/domain"
)

// ErrNoWines is returned when an export holds no wines.
var ErrNoWines = errors.New("wine list export contains no wines")

type wineList struct {
	Wines []domain.RawWineListing `json:"wines"`
}

// LoadWines reads a wine list export ({"wines": [...]}) from path.
func LoadWines(path string) ([]domain.RawWineListing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wine list: %w", err)
	}
	defer f.Close()
	return DecodeWines(f)
}

// DecodeWines parses a wine list export and trims producer names.
func DecodeWines(r io.Reader) ([]domain.RawWineListing, error) {
	var list wineList
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode wine list: %w", err)
	}
	if len(list.Wines) == 0 {
		return nil, ErrNoWines
	}
	for i := range list.Wines {
		list.Wines[i].Producer = strings.TrimSpace(list.Wines[i].Producer)
	}
	return list.Wines, nil
}

// Group collects the distinct producer spellings that resolved to one winery.
type Group struct {
	Key       string
	Strategy  domain.MatchStrategy
	Producers []string
}

// MatchReport is the outcome of resolving every distinct producer in an export.
type MatchReport struct {
	Matched   []Group
	Unmatched []string
}

// Producers is the number of distinct producers that were resolved.
func (r MatchReport) Producers() int {
	n := len(r.Unmatched)
	for _, g := range r.Matched {
		n += len(g.Producers)
	}
	return n
}

// MatchRate is the share of distinct producers that found a winery, in [0, 1].
func (r MatchReport) MatchRate() float64 {
	total := r.Producers()
	if total == 0 {
		return 0
	}
	return float64(total-len(r.Unmatched)) / float64(total)
}

// BuildMatchReport resolves each distinct producer once. Producers are
// deduplicated by normalized name, keeping the first spelling seen; groups and
// unmatched names keep export order. Empty and placeholder producers are skipped.
func BuildMatchReport(wines []domain.RawWineListing, resolver domain.Resolver) MatchReport {
	var rep MatchReport
	seen := make(map[string]struct{})
	groupIndex := make(map[string]int)

	for _, w := range wines {
		if !w.HasKnownProducer() {
			continue
		}
		norm := domain.Normalize(w.Producer)
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}

		m, ok := resolver.Resolve(w.Producer)
		if !ok {
			rep.Unmatched = append(rep.Unmatched, w.Producer)
			continue
		}
		i, ok := groupIndex[m.Key]
		if !ok {
			i = len(rep.Matched)
			groupIndex[m.Key] = i
			rep.Matched = append(rep.Matched, Group{Key: m.Key, Strategy: m.Strategy})
		}
		rep.Matched[i].Producers = append(rep.Matched[i].Producers, w.Producer)
	}
	return rep
}

// ProducerCount is a producer spelling and the number of wines listed under it.
type ProducerCount struct {
	Name  string
	Wines int
}

// CountProducers lists unique producer spellings with their wine counts, sorted
// case-insensitively. Empty and placeholder producers are excluded.
func CountProducers(wines []domain.RawWineListing) []ProducerCount {
	counts := make(map[string]int)
	for _, w := range wines {
		p := strings.TrimSpace(w.Producer)
		if p == "" || p == domain.UnknownProducer {
			continue
		}
		counts[p]++
	}

	out := make([]ProducerCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, ProducerCount{Name: name, Wines: n})
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if li != lj {
			return li < lj
		}
		return out[i].Name < out[j].Name
	})
	return out
}
