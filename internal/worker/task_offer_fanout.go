package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/mazraa/mazra-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// PayloadOfferFanout carries one offer notification destined for every user's
// inbox. The user list is resolved at processing time, not enqueue time, so a
// delayed task still reaches accounts created in between.
type PayloadOfferFanout struct {
	OfferID string
	Title   string
	Message string
	Data    map[string]string
}

func (distributor *RedisTaskDistributor) DistributeTaskOfferFanout(
	ctx context.Context,
	payload *PayloadOfferFanout,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskOfferFanout, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Str("offerID", payload.OfferID).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskOfferFanout(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadOfferFanout
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	userIDs, err := processor.userStore.ListUserIDs(ctx)
	if err != nil {
		log.Error().Err(err).Str("offerID", payload.OfferID).Msg("failed to list users for offer fan-out")
		return err
	}

	record := notification.Record{
		ReferenceID: payload.OfferID,
		Title:       payload.Title,
		Message:     payload.Message,
		Kind:        notification.KindOffer,
		Data:        payload.Data,
	}

	if err = processor.inboxes.FanOut(ctx, userIDs, record); err != nil {
		log.Error().Err(err).Str("offerID", payload.OfferID).Msg("failed to fan out offer notification")
		return err
	}

	log.Info().Str("type", task.Type()).Str("offerID", payload.OfferID).
		Int("recipients", len(userIDs)).Msg("task processed")

	return nil
}
