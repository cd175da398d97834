package services

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"pso2news.dark-nova.me/apps/urgentquests/internal/repositories"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/broker"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/pso2"
	"pso2news.dark-nova.me/internal/auth"
	"pso2news.dark-nova.me/internal/config"
)

type Services struct {
	Auth      auth.Service
	Schedules *ScheduleService
	Reminders *ReminderService
	Events    *EventService
	Feed      *FeedService
	WebSocket *WebSocketService
}

func New(
	logger *slog.Logger,
	config config.Config,
	location *time.Location,
	jobQueue *threading.JobQueue,
	repositories *repositories.Repositories,
	pso2Client pso2.Client,
	brokerClient broker.Client,
	authService auth.Service,
) *Services {
	events := &EventService{
		events:   repositories.Events,
		feedSize: config.FeedSize,
	}
	schedules := &ScheduleService{
		logger:   logger,
		location: location,
		events:   repositories.Events,
		client:   pso2Client,
		broker:   brokerClient,
	}
	reminders := &ReminderService{
		logger:    logger,
		events:    repositories.Events,
		reminders: repositories.Reminders,
		broker:    brokerClient,
		window:    config.ReminderWindow,
	}
	feed := &FeedService{
		webURL: config.WebURL,
		events: events,
	}

	return &Services{
		Auth:      authService,
		Schedules: schedules,
		Reminders: reminders,
		Events:    events,
		Feed:      feed,
		WebSocket: NewWebSocketService(
			logger,
			[]string{config.WebURL},
			jobQueue,
		),
	}
}
