package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/mazraa/mazra-BE/internal/market"
	"github.com/mazraa/mazra-BE/internal/user"
	"github.com/rs/zerolog/log"
)

// notifyAdmin sends the custom-product escalation to the configured admin
// account. It deliberately writes no inbox record: the production system
// never did, and the admin reviews these orders in its own dashboard.
func (d *Dispatcher) notifyAdmin(ctx context.Context, order market.FarmerOrder) error {
	account, err := d.users.FindUserByEmail(ctx, d.config.AdminEmail)
	if errors.Is(err, user.ErrUserNotFound) {
		log.Warn().Str("adminEmail", d.config.AdminEmail).Msg("admin account not found, skipping escalation")
		return nil
	}
	if err != nil {
		return err
	}

	if account.DeliveryToken == "" {
		log.Warn().Str("adminEmail", d.config.AdminEmail).Msg("admin has no delivery token, skipping escalation")
		return nil
	}

	push := buildAdminPush(order)

	if _, err = d.sender.SendToToken(ctx, account.DeliveryToken, push); err != nil {
		return err
	}

	log.Info().Str("orderID", order.ID).Msg("admin escalation sent")

	if d.mailer != nil {
		subject := fmt.Sprintf("Custom product order %s", order.ID)
		if err = d.mailer.SendOrderAlert(d.config.AdminEmail, subject, push.Body); err != nil {
			// The push already went out; the email copy is best effort.
			log.Error().Err(err).Str("orderID", order.ID).Msg("failed to send admin escalation email")
		}
	}

	return nil
}
