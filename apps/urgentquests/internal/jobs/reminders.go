package jobs

import (
	"context"
	"log/slog"
	"time"

	"pso2news.dark-nova.me/apps/urgentquests/internal/models"
	"pso2news.dark-nova.me/apps/urgentquests/internal/services"
)

const ReminderJobID = "reminders"

// ReminderJob announces the events about to start. It runs once per reminder
// window so consecutive windows touch at their edges.
type ReminderJob struct {
	reminderService *services.ReminderService
	now             func() time.Time
}

func NewReminderJob(reminderService *services.ReminderService) ReminderJob {
	return ReminderJob{
		reminderService: reminderService,
		now:             time.Now,
	}
}

func (j ReminderJob) WithClock(now func() time.Time) ReminderJob {
	j.now = now
	return j
}

func (j ReminderJob) ID() string {
	return ReminderJobID
}

func (j ReminderJob) RunEvery() time.Duration {
	return j.reminderService.Window()
}

func (j ReminderJob) Run(ctx context.Context, logger *slog.Logger) error {
	_, err := j.RunOnce(ctx, logger)
	return err
}

func (j ReminderJob) RunOnce(
	ctx context.Context,
	logger *slog.Logger,
) ([]models.Event, error) {
	reminded, err := j.reminderService.Remind(ctx, j.now())
	if err != nil {
		return nil, err
	}

	for _, event := range reminded {
		logger.Info(
			"announced upcoming event",
			"name", event.Name,
			"time", event.Timestamp,
		)
	}

	return reminded, nil
}
