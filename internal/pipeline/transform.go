package pipeline

import (
	"context"
	"log/slog"

	"github.com/S4ng4/winery-resolver/internal/domain"
)

// ListingTransformer implements Transformer: parse the listing, attach the
// producer's catalog entry and serialize it for the sink topic.
type ListingTransformer struct {
	resolver domain.Resolver
	logger   *slog.Logger
}

// NewTransformer creates a ListingTransformer backed by resolver.
func NewTransformer(resolver domain.Resolver, logger *slog.Logger) *ListingTransformer {
	return &ListingTransformer{
		resolver: resolver,
		logger:   logger,
	}
}

func (t *ListingTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	listing, err := domain.ParseRawListing(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	listing = domain.EnrichListing(listing, t.resolver)
	if listing.ProducerKey == "" && listing.HasKnownProducer() {
		t.logger.Debug("producer not in catalog",
			"producer", listing.Producer,
			"wine", listing.Name,
			"offset", raw.Offset,
		)
	}

	return domain.SerializeListing(listing)
}
