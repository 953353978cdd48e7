package domain

import "strings"

// MatchStrategy identifies which rule resolved a producer name.
type MatchStrategy int

const (
	MatchNone MatchStrategy = iota
	MatchExactKey
	MatchNormalizedKey
	MatchContainment
	MatchWordOverlap
	MatchAlias
)

func (s MatchStrategy) String() string {
	switch s {
	case MatchExactKey:
		return "exact"
	case MatchNormalizedKey:
		return "normalized"
	case MatchContainment:
		return "containment"
	case MatchWordOverlap:
		return "word_overlap"
	case MatchAlias:
		return "alias"
	default:
		return "none"
	}
}

// Match is a successful resolution: the canonical key, a copy of the record,
// and the strategy that selected it.
type Match struct {
	Key      string
	Winery   Winery
	Strategy MatchStrategy
}

// Resolver resolves raw producer names to catalog records.
type Resolver interface {
	Resolve(producerName string) (Match, bool)
}

// query is a producer name prepared once per lookup.
type query struct {
	normalized string
	words      []string
}

// entryMatcher tests one catalog entry against a query.
type entryMatcher struct {
	strategy MatchStrategy
	matches  func(q query, e *tableEntry) bool
}

// scanStrategies run in order for every entry during the table scan.
var scanStrategies = []entryMatcher{
	{MatchNormalizedKey, matchNormalizedKey},
	{MatchContainment, matchContainment},
	{MatchWordOverlap, matchWordOverlap},
	{MatchAlias, matchAlias},
}

// Resolve finds the winery for a raw producer name. It returns false when the
// name is empty (after normalization) or nothing in the table matches.
func (t *Table) Resolve(producerName string) (Match, bool) {
	normalized := Normalize(producerName)
	if normalized == "" {
		return Match{}, false
	}

	if i, ok := t.index[normalized]; ok {
		return t.matchAt(i, MatchExactKey), true
	}

	q := query{normalized: normalized, words: significantWords(normalized)}
	for i := range t.entries {
		for _, m := range scanStrategies {
			if m.matches(q, &t.entries[i]) {
				return t.matchAt(i, m.strategy), true
			}
		}
	}
	return Match{}, false
}

// Find returns a copy of the winery for producerName, or nil if there is none.
func (t *Table) Find(producerName string) *Winery {
	m, ok := t.Resolve(producerName)
	if !ok {
		return nil
	}
	return &m.Winery
}

func matchNormalizedKey(q query, e *tableEntry) bool {
	return Normalize(e.key) == q.normalized
}

func matchContainment(q query, e *tableEntry) bool {
	return containsEither(Normalize(e.key), q.normalized)
}

func matchWordOverlap(q query, e *tableEntry) bool {
	if len(q.words) == 0 {
		return false
	}
	keyWords := significantWords(Normalize(e.key))

	matching := 0
	for _, w := range q.words {
		for _, kw := range keyWords {
			if containsEither(kw, w) {
				matching++
				break
			}
		}
	}
	return matching > 0 && matching >= min(len(q.words), 2)
}

func matchAlias(q query, e *tableEntry) bool {
	for _, alias := range e.aliases {
		if alias == q.normalized || containsEither(alias, q.normalized) {
			return true
		}
	}
	return false
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
