package services

import (
	"context"
	"log/slog"
	"time"

	"pso2news.dark-nova.me/apps/urgentquests/internal/models"
	"pso2news.dark-nova.me/apps/urgentquests/internal/repositories"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/broker"
)

type ReminderService struct {
	logger    *slog.Logger
	events    *repositories.EventRepository
	reminders *repositories.ReminderRepository
	broker    broker.Client
	window    time.Duration
}

func (service *ReminderService) Window() time.Duration {
	return service.window
}

// Remind announces every stored event starting between now and now plus the
// window. Each event is announced at most once.
func (service *ReminderService) Remind(
	ctx context.Context,
	now time.Time,
) ([]models.Event, error) {
	upcoming, err := service.events.GetBetween(ctx, now, now.Add(service.window))
	if err != nil {
		return nil, err
	}

	reminded := []models.Event{}
	for _, event := range upcoming {
		var fresh bool
		fresh, err = service.reminders.Mark(ctx, event.Timestamp)
		if err != nil {
			return nil, err
		}

		if fresh {
			reminded = append(reminded, event)
		}
	}

	if len(reminded) > 0 {
		publish(ctx, service.logger, service.broker, broker.UpcomingQueue, reminded)
	}

	return reminded, nil
}
