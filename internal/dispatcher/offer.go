package dispatcher

import (
	"context"

	"github.com/mazraa/mazra-BE/internal/market"
	"github.com/mazraa/mazra-BE/internal/messaging"
	"github.com/mazraa/mazra-BE/internal/notification"
	"github.com/mazraa/mazra-BE/internal/util"
	"github.com/mazraa/mazra-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

// HandleOfferCreated reacts to a new document in the offers collection. The
// push always goes to the offers topic; where the inbox record lands depends
// on the configured fan-out strategy (one broadcast record vs. one record per
// user). Failures are logged and swallowed.
func (d *Dispatcher) HandleOfferCreated(ctx context.Context, offerID string, data map[string]interface{}) {
	if data == nil {
		log.Warn().Str("offerID", offerID).Msg("offer document has no data, skipping")
		return
	}

	offer := market.DecodeOffer(offerID, data)
	push := buildOfferPush(offer)

	log.Info().Str("offerID", offer.ID).Str("title", offer.Title).Msg("new offer created")

	if _, err := d.sender.SendToTopic(ctx, d.config.OffersTopic, push); err != nil {
		log.Error().Err(err).Str("offerID", offer.ID).Msg("failed to broadcast offer push")
		return
	}

	if err := d.persistOfferRecord(ctx, offer, push); err != nil {
		// The push is already out; the missing inbox record is an accepted
		// inconsistency.
		log.Error().Err(err).Str("offerID", offer.ID).Msg("failed to persist offer notification")
	}
}

func (d *Dispatcher) persistOfferRecord(ctx context.Context, offer market.Offer, push messaging.Push) error {
	if d.config.OfferFanoutStrategy == util.FanoutInbox {
		return d.distributor.DistributeTaskOfferFanout(ctx, &worker.PayloadOfferFanout{
			OfferID: offer.ID,
			Title:   push.Title,
			Message: push.Body,
			Data:    push.Data,
		})
	}

	return d.inboxes.SaveBroadcast(ctx, notification.Record{
		ReferenceID: offer.ID,
		Title:       push.Title,
		Message:     push.Body,
		Kind:        notification.KindOffer,
		Data:        push.Data,
	})
}
