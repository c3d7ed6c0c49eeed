package prices

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Schedule runs sync on a five field cron schedule until ctx is
// done. A failed run is logged and the schedule keeps going
func Schedule(ctx context.Context, logger zerolog.Logger, schedule string, sync func() error) error {
	log := logger.With().Str("component", "price_scheduler").Logger()
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		log.Debug().Msg("syncing prices")
		if err := sync(); err != nil {
			log.Error().Err(err).Msg("price sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	c.Start()
	log.Info().Str("schedule", schedule).Msg("price sync scheduled")

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info().Msg("price scheduler stopped")
	return nil
}
