package worker

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/mazraa/mazra-BE/internal/notification"
	"github.com/mazraa/mazra-BE/internal/user"
	"github.com/rs/zerolog/log"
)

/*
 This file contains code that will pick up the tasks from the Redis queue and process them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

type RedisTaskProcessor struct {
	server    *asynq.Server
	inboxes   notification.Store
	userStore user.Store
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, inboxes notification.Store, userStore user.Store) *RedisTaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server:    server,
		inboxes:   inboxes,
		userStore: userStore,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskOfferFanout, processor.ProcessTaskOfferFanout)

	return processor.server.Start(mux)
}

// Shutdown waits for in-flight tasks and stops the server.
func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
