package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// UnknownProducer is the placeholder the wine list export uses when the
// producer was never recorded.
const UnknownProducer = "UNKNOWN PRODUCER"

// RawWineListing is one wine as exported by the wine list.
type RawWineListing struct {
	Number         string `json:"wine_number,omitempty"`
	Name           string `json:"wine_name"`
	Producer       string `json:"wine_producer"`
	Region         string `json:"region,omitempty"`
	Price          string `json:"price,omitempty"`
	BottleImageURL string `json:"bottle_image_url,omitempty"`
}

// WineListing is a listing annotated with its producer's catalog entry.
type WineListing struct {
	RawWineListing

	ProducerKey         string `json:"producer_key,omitempty"`
	MatchStrategy       string `json:"match_strategy,omitempty"`
	ProducerDescription string `json:"producer_description,omitempty"`

	RawPayload []byte    `json:"-"`
	EnrichedAt time.Time `json:"enriched_at"`
}

// HasKnownProducer reports whether the listing names a producer worth resolving.
func (l RawWineListing) HasKnownProducer() bool {
	n := Normalize(l.Producer)
	return n != "" && n != UnknownProducer
}

// ParseRawListing deserializes a RawEvent's value into a WineListing.
func ParseRawListing(raw RawEvent) (WineListing, error) {
	var rec RawWineListing
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return WineListing{}, fmt.Errorf("parse wine listing: %w", err)
	}
	rec.Producer = strings.TrimSpace(rec.Producer)

	return WineListing{
		RawWineListing: rec,
		RawPayload:     raw.Value,
	}, nil
}

// EnrichListing resolves the listing's producer and attaches the catalog key,
// the strategy that matched and the producer description. Listings without a
// known producer, or whose producer is not in the catalog, are only stamped.
func EnrichListing(listing WineListing, resolver Resolver) WineListing {
	listing.EnrichedAt = clock.Now()
	if resolver == nil || !listing.HasKnownProducer() {
		return listing
	}

	m, ok := resolver.Resolve(listing.Producer)
	if !ok {
		return listing
	}
	listing.ProducerKey = m.Key
	listing.MatchStrategy = m.Strategy.String()
	if desc, ok := Describe(&m.Winery); ok {
		listing.ProducerDescription = desc
	}
	return listing
}

// SerializeListing marshals an enriched listing for the sink topic. The message
// key is the wine number when present, otherwise the normalized producer name.
func SerializeListing(listing WineListing) (OutputEvent, error) {
	data, err := json.Marshal(listing)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize wine listing: %w", err)
	}

	key := listing.Number
	if key == "" {
		key = Normalize(listing.Producer)
	}

	headers := map[string]string{
		"enriched_at": listing.EnrichedAt.UTC().Format(time.RFC3339),
	}
	if listing.ProducerKey != "" {
		headers["producer_key"] = listing.ProducerKey
		headers["match_strategy"] = listing.MatchStrategy
	}

	return OutputEvent{Key: []byte(key), Value: data, Headers: headers}, nil
}
