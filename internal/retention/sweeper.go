package retention

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/mazraa/mazra-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// Sweeper periodically purges read inbox records so notification history does
// not grow without bound.
type Sweeper struct {
	inboxes       notification.Store
	retentionDays int
	scheduler     gocron.Scheduler
}

func NewSweeper(inboxes notification.Store, retentionDays int) (*Sweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Sweeper{
		inboxes:       inboxes,
		retentionDays: retentionDays,
		scheduler:     scheduler,
	}, nil
}

// Start schedules the daily purge job and starts the scheduler.
func (s *Sweeper) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(
			func() {
				s.purge()
			},
		),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	return nil
}

// Stop shuts the scheduler down.
func (s *Sweeper) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Sweeper) purge() {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	log.Info().
		Str("job", "purge_read_notifications").
		Time("cutoff", cutoff).
		Msg("Starting notification retention job")

	deleted, err := s.inboxes.PurgeRead(context.Background(), cutoff)
	if err != nil {
		log.Error().Err(err).Msg("notification retention job failed")
		return
	}

	log.Info().Int("deleted", deleted).Msg("notification retention job finished")
}
