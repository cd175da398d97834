package services

import (
	"context"

	"pso2news.dark-nova.me/apps/urgentquests/internal/models"
	"pso2news.dark-nova.me/apps/urgentquests/internal/repositories"
)

type EventService struct {
	events   *repositories.EventRepository
	feedSize int
}

func (service *EventService) GetAll(ctx context.Context) ([]models.Event, error) {
	return service.events.GetAll(ctx)
}

func (service *EventService) GetLatest(ctx context.Context) ([]models.Event, error) {
	return service.events.GetLatest(ctx, service.feedSize)
}

func (service *EventService) GetSources(ctx context.Context) ([]models.Source, error) {
	return service.events.GetSources(ctx)
}
