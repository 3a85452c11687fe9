package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"genderdecoder/internal/coder"
	"genderdecoder/internal/logger"
	"genderdecoder/internal/metrics"
	"genderdecoder/internal/models"
)

const defaultBatchSize = 50

// RescoreStore reads and rewrites stored job ads.
type RescoreStore interface {
	ListStaleJobAds(ctx context.Context, version string, limit int) ([]models.JobAd, error)
	UpdateJobAdCoding(ctx context.Context, ad *models.JobAd) error
}

// Rescorer re-analyses stored ads that were scored with a different lexicon,
// so the stored coding always matches the word lists currently in use.
type Rescorer struct {
	store     RescoreStore
	coder     *coder.Coder
	spec      string
	batchSize int
	cron      *cron.Cron
	log       *logger.Logger
}

// NewRescorer creates a re-scorer that runs on the given cron spec,
// e.g. "@every 1h".
func NewRescorer(store RescoreStore, c *coder.Coder, spec string) *Rescorer {
	log := logger.Named("rescorer")
	cl := cronLogger{log: log}
	return &Rescorer{
		store:     store,
		coder:     c,
		spec:      spec,
		batchSize: defaultBatchSize,
		cron:      cron.New(cron.WithLogger(cl), cron.WithChain(cron.SkipIfStillRunning(cl))),
		log:       log,
	}
}

// Start registers the job and starts the scheduler. One pass also runs
// immediately so ads are refreshed without waiting for the first tick.
func (r *Rescorer) Start(ctx context.Context) error {
	if _, err := r.cron.AddFunc(r.spec, func() { r.run(ctx) }); err != nil {
		return fmt.Errorf("rescorer: schedule %q: %w", r.spec, err)
	}
	r.cron.Start()
	r.log.Info().Str("schedule", r.spec).Str("lexicon_version", r.coder.Version()).Msg("rescorer started")

	go r.run(ctx)
	return nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (r *Rescorer) Stop() {
	<-r.cron.Stop().Done()
	r.log.Info().Msg("rescorer stopped")
}

func (r *Rescorer) run(ctx context.Context) {
	n, err := r.RunOnce(ctx)
	if err != nil {
		r.log.Error().Err(err).Int("rescored", n).Msg("rescore pass failed")
		return
	}
	if n > 0 {
		r.log.Info().Int("rescored", n).Msg("rescore pass complete")
	}
}

// RunOnce re-scores stale ads in batches until none are left and returns how
// many were updated. Ads that fail to update are logged and skipped; a batch
// with no successful update ends the pass.
func (r *Rescorer) RunOnce(ctx context.Context) (int, error) {
	version := r.coder.Version()
	total := 0

	for {
		ads, err := r.store.ListStaleJobAds(ctx, version, r.batchSize)
		if err != nil {
			return total, fmt.Errorf("list stale job ads: %w", err)
		}
		if len(ads) == 0 {
			return total, nil
		}

		updated := 0
		for i := range ads {
			if err := ctx.Err(); err != nil {
				return total, err
			}

			ad := &ads[i]
			ad.Apply(r.coder.Analyse(ad.Text), version)
			if err := r.store.UpdateJobAdCoding(ctx, ad); err != nil {
				r.log.Error().Err(err).Str("job_ad_id", ad.ID.String()).Msg("failed to update job ad")
				continue
			}
			metrics.RecordRescore()
			updated++
		}

		total += updated
		if updated == 0 {
			return total, fmt.Errorf("no job ads could be updated in a batch of %d", len(ads))
		}
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
