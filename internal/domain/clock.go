package domain

import "github.com/jonboulle/clockwork"

// clock stamps EnrichedAt on listings. Tests freeze it with SetClock.
var clock = clockwork.NewRealClock()

// SetClock replaces the enrichment time source. Pass nil to restore real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clock = c
}
