package dispatcher

import (
	"context"
	"errors"

	"github.com/mazraa/mazra-BE/internal/market"
	"github.com/mazraa/mazra-BE/internal/notification"
	"github.com/mazraa/mazra-BE/internal/user"
	"github.com/rs/zerolog/log"
)

// HandleOrderCreated reacts to a new document under
// users/{farmerID}/farmer_orders. It pushes to the farmer's device, persists
// an inbox record keyed by the order ID, and escalates custom-product orders
// to the admin account. Failures are logged and swallowed.
func (d *Dispatcher) HandleOrderCreated(ctx context.Context, farmerID, orderID string, data map[string]interface{}) {
	if data == nil {
		log.Warn().Str("orderID", orderID).Msg("order document has no data, skipping")
		return
	}

	order := market.DecodeFarmerOrder(farmerID, orderID, data)

	log.Info().
		Str("orderID", order.ID).
		Str("farmerID", order.FarmerID).
		Int("items", order.ItemCount()).
		Bool("customProduct", order.IsCustomProductOrder).
		Msg("new farmer order created")

	notified, err := d.notifyFarmer(ctx, order)
	if err != nil {
		log.Error().Err(err).Str("orderID", order.ID).Str("farmerID", order.FarmerID).
			Msg("failed to notify farmer about new order")
	}
	if !notified {
		// The farmer path stopped early (missing account, no token, or a
		// failure); the invocation terminates without escalating.
		return
	}

	// Escalate only from the original farmer-facing trigger; the admin-facing
	// replay carries the flag and must not escalate again.
	if order.IsCustomProductOrder && !order.IsAdminNotification {
		if err := d.notifyAdmin(ctx, order); err != nil {
			log.Error().Err(err).Str("orderID", order.ID).Msg("failed to notify admin about custom product order")
		}
	}
}

// notifyFarmer pushes to the farmer's device and persists the inbox record.
// It reports whether the farmer was actually notified; a false return means
// the invocation stopped early and nothing further should happen.
func (d *Dispatcher) notifyFarmer(ctx context.Context, order market.FarmerOrder) (bool, error) {
	account, err := d.users.GetUser(ctx, order.FarmerID)
	if errors.Is(err, user.ErrUserNotFound) {
		log.Warn().Str("farmerID", order.FarmerID).Str("orderID", order.ID).
			Msg("farmer account not found, dropping order notification")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if account.DeliveryToken == "" {
		log.Warn().Str("farmerID", order.FarmerID).Str("orderID", order.ID).
			Msg("farmer has no delivery token, dropping order notification")
		return false, nil
	}

	push, kind := buildOrderPush(order)

	if _, err = d.sender.SendToToken(ctx, account.DeliveryToken, push); err != nil {
		return false, err
	}

	err = d.inboxes.SaveForUser(ctx, order.FarmerID, notification.Record{
		RecipientID: order.FarmerID,
		ReferenceID: order.ID,
		Title:       push.Title,
		Message:     push.Body,
		Kind:        kind,
		Data:        push.Data,
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
