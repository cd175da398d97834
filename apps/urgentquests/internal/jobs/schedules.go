package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"pso2news.dark-nova.me/apps/urgentquests/internal/models"
	"pso2news.dark-nova.me/apps/urgentquests/internal/services"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/pso2"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/schedule"
)

const ScheduleJobID = "schedules"

// ScheduleJob scrapes every advertised schedule and reconciles the store
// with it.
type ScheduleJob struct {
	scheduleService *services.ScheduleService
	interval        time.Duration
	now             func() time.Time
}

type RunSummary struct {
	Added   int
	Removed int
	Failed  int
}

func NewScheduleJob(
	scheduleService *services.ScheduleService,
	interval time.Duration,
) ScheduleJob {
	return ScheduleJob{
		scheduleService: scheduleService,
		interval:        interval,
		now:             time.Now,
	}
}

// WithClock returns a copy of the job that takes its reference time from now.
func (j ScheduleJob) WithClock(now func() time.Time) ScheduleJob {
	j.now = now
	return j
}

func (j ScheduleJob) ID() string {
	return ScheduleJobID
}

func (j ScheduleJob) RunEvery() time.Duration {
	return j.interval
}

func (j ScheduleJob) Run(ctx context.Context, logger *slog.Logger) error {
	_, err := j.RunOnce(ctx, logger)
	return err
}

// RunOnce performs one scrape. Sources are handled one after the other with
// the same color registry and reference date. A source that fails to decode
// is skipped; only failing to read the index or the store fails the run.
func (j ScheduleJob) RunOnce(
	ctx context.Context,
	logger *slog.Logger,
) (RunSummary, error) {
	var summary RunSummary

	logger = logger.With("run", uuid.NewString())
	today := j.now().In(j.scheduleService.Location())

	decoder := schedule.NewDecoder(
		logger,
		schedule.NewColorRegistry(),
		today,
		j.scheduleService.Location(),
	)

	logger.Debug("fetching schedule index")
	schedules, err := j.scheduleService.ListSchedules()
	if err != nil {
		return summary, err
	}
	logger.Debug(fmt.Sprintf("index lists %d schedules", len(schedules)))

	if len(schedules) > 0 {
		var removed []models.Source
		removed, err = j.scheduleService.ReconcileSources(ctx, toSources(schedules))
		if err != nil {
			return summary, err
		}
		summary.Removed = len(removed)
	}

	for _, source := range schedules {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		var added []models.Event
		added, err = j.scheduleService.ImportSchedule(ctx, decoder, source)
		if err != nil {
			if isSourceFailure(err) {
				summary.Failed++
				logger.Warn(
					fmt.Sprintf("skipping schedule %s", source.Title),
					"url", source.URL,
					logging.ErrAttr(err),
				)
				continue
			}
			return summary, err
		}

		summary.Added += len(added)
	}

	logger.Info(
		"schedules refreshed",
		"added", summary.Added,
		"removed", summary.Removed,
		"failed", summary.Failed,
	)

	return summary, nil
}

func toSources(schedules []pso2.Schedule) []models.Source {
	sources := make([]models.Source, 0, len(schedules))
	for _, s := range schedules {
		sources = append(sources, models.Source{Title: s.Title, URL: s.URL})
	}
	return sources
}

// isSourceFailure reports whether err only concerns the page being imported.
func isSourceFailure(err error) bool {
	return errors.Is(err, schedule.ErrScheduleNotFound) ||
		errors.Is(err, schedule.ErrLegendMissing) ||
		errors.Is(err, pso2.ErrFetch)
}
