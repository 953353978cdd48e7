package domain

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicateKey is returned by NewTable when two entries normalize to the same key.
var ErrDuplicateKey = errors.New("duplicate winery key")

// Winery is a producer record from the catalog. Every field except Name is
// optional; an empty string means "not known".
type Winery struct {
	Name       string   `yaml:"name" json:"name"`
	Aliases    []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Region     string   `yaml:"region,omitempty" json:"region,omitempty"`
	Location   string   `yaml:"location,omitempty" json:"location,omitempty"`
	Year       string   `yaml:"year,omitempty" json:"year,omitempty"`
	History    string   `yaml:"history,omitempty" json:"history,omitempty"`
	Philosophy string   `yaml:"philosophy,omitempty" json:"philosophy,omitempty"`
	Hectares   string   `yaml:"hectares,omitempty" json:"hectares,omitempty"` // free text, e.g. "100 (80 vineyards)"
	Grapes     string   `yaml:"grapes,omitempty" json:"grapes,omitempty"`
	MainWines  string   `yaml:"main_wines,omitempty" json:"main_wines,omitempty"`
	Notes      string   `yaml:"notes,omitempty" json:"notes,omitempty"`

	// Reference details kept from the producer research notes. They are served
	// with the record but never appear in the generated description.
	Production     string `yaml:"production,omitempty" json:"production,omitempty"`
	Lines          string `yaml:"lines,omitempty" json:"lines,omitempty"`
	Founders       string `yaml:"founders,omitempty" json:"founders,omitempty"`
	Products       string `yaml:"products,omitempty" json:"products,omitempty"`
	Certification  string `yaml:"certification,omitempty" json:"certification,omitempty"`
	Structure      string `yaml:"structure,omitempty" json:"structure,omitempty"`
	Altitude       string `yaml:"altitude,omitempty" json:"altitude,omitempty"`
	Specialization string `yaml:"specialization,omitempty" json:"specialization,omitempty"`
	ABV            string `yaml:"abv,omitempty" json:"abv,omitempty"`
	Locations      string `yaml:"locations,omitempty" json:"locations,omitempty"`
}

// Clone returns a copy that shares no slices with w.
func (w Winery) Clone() Winery {
	w.Aliases = slices.Clone(w.Aliases)
	return w
}

// TableEntry pairs a catalog key with its record, in catalog order.
type TableEntry struct {
	Key    string
	Winery Winery
}

type tableEntry struct {
	key     string
	winery  Winery
	aliases []string // normalized copies of winery.Aliases
}

// Table is the read-only winery catalog. It keeps catalog order, which is the
// scan order for fuzzy matching. A Table is never modified after NewTable
// returns and is safe for concurrent use.
type Table struct {
	entries []tableEntry
	index   map[string]int
}

// NewTable builds a Table from entries in catalog order. Keys are normalized;
// an empty key or two keys with the same normalized form is an error.
func NewTable(entries []TableEntry) (*Table, error) {
	t := &Table{
		entries: make([]tableEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		key := Normalize(e.Key)
		if key == "" {
			return nil, fmt.Errorf("entry %d (%q): empty winery key", i, e.Winery.Name)
		}
		if prev, ok := t.index[key]; ok {
			return nil, fmt.Errorf("%w: %q at entries %d and %d", ErrDuplicateKey, key, prev, i)
		}

		aliases := make([]string, 0, len(e.Winery.Aliases))
		for _, a := range e.Winery.Aliases {
			if n := Normalize(a); n != "" {
				aliases = append(aliases, n)
			}
		}

		t.index[key] = len(t.entries)
		t.entries = append(t.entries, tableEntry{key: key, winery: e.Winery.Clone(), aliases: aliases})
	}
	return t, nil
}

// Len returns the number of wineries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns the canonical keys in catalog order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.key
	}
	return keys
}

// Lookup returns the record stored under key. The key is normalized first but
// no fuzzy matching is attempted.
func (t *Table) Lookup(key string) (Match, bool) {
	i, ok := t.index[Normalize(key)]
	if !ok {
		return Match{}, false
	}
	return t.matchAt(i, MatchExactKey), true
}

func (t *Table) matchAt(i int, strategy MatchStrategy) Match {
	e := t.entries[i]
	return Match{Key: e.key, Winery: e.winery.Clone(), Strategy: strategy}
}
