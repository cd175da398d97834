package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"pso2news.dark-nova.me/apps/urgentquests/internal/models"
	"pso2news.dark-nova.me/apps/urgentquests/internal/repositories"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/broker"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/pso2"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/schedule"
)

type ScheduleService struct {
	logger   *slog.Logger
	location *time.Location
	events   *repositories.EventRepository
	client   pso2.Client
	broker   broker.Client
}

// Location is the fixed zone schedule times are given in.
func (service *ScheduleService) Location() *time.Location {
	return service.location
}

func (service *ScheduleService) ListSchedules() ([]pso2.Schedule, error) {
	return service.client.ListSchedules()
}

// ImportSchedule fetches and decodes one schedule page, then merges its
// events. Nothing is stored when the page cannot be decoded.
func (service *ScheduleService) ImportSchedule(
	ctx context.Context,
	decoder *schedule.Decoder,
	source pso2.Schedule,
) ([]models.Event, error) {
	page, err := service.client.GetSchedule(source.URL)
	if err != nil {
		return nil, err
	}

	events, err := decoder.Decode(page)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source.URL, err)
	}

	return service.Merge(ctx, events, models.Source{
		Title: source.Title,
		URL:   source.URL,
	})
}

// Merge stores the decoded events of one source and returns the events that
// were new. Events at an instant that is already taken are dropped, so
// merging the same events twice stores nothing the second time.
func (service *ScheduleService) Merge(
	ctx context.Context,
	events []schedule.Event,
	source models.Source,
) ([]models.Event, error) {
	toInsert := make([]models.Event, 0, len(events))
	for _, event := range events {
		toInsert = append(toInsert, models.Event{
			Timestamp:   event.Time,
			Name:        event.Name,
			SourceTitle: source.Title,
			SourceURL:   source.URL,
		})
	}

	inserted, err := service.events.InsertEvents(ctx, toInsert)
	if err != nil {
		return nil, err
	}

	service.logger.Debug(
		fmt.Sprintf("merged %s", source.Title),
		"decoded", len(toInsert),
		"inserted", len(inserted),
		"known", len(toInsert)-len(inserted),
	)

	publish(ctx, service.logger, service.broker, broker.AddedQueue, inserted)

	return inserted, nil
}

// ReconcileSources deletes the events of every stored source that is not
// advertised anymore and returns those sources.
func (service *ScheduleService) ReconcileSources(
	ctx context.Context,
	advertised []models.Source,
) ([]models.Source, error) {
	stored, err := service.events.GetSources(ctx)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(advertised))
	for _, source := range advertised {
		keep[source.Key()] = true
	}

	removed := []models.Source{}
	for _, source := range stored {
		if keep[source.Key()] {
			continue
		}

		var count int64
		count, err = service.events.DeleteBySource(ctx, source)
		if err != nil {
			return removed, err
		}

		service.logger.Info(
			fmt.Sprintf("removed source %s", source.Title),
			"url", source.URL,
			"events", count,
		)
		removed = append(removed, source)
	}

	publish(ctx, service.logger, service.broker, broker.RemovedQueue, removed)

	return removed, nil
}

func publish[T any](
	ctx context.Context,
	logger *slog.Logger,
	client broker.Client,
	queue string,
	messages []T,
) {
	payload := make([]any, 0, len(messages))
	for _, message := range messages {
		payload = append(payload, message)
	}

	err := client.Publish(ctx, queue, payload...)
	if err != nil {
		logger.Warn("failed to publish to "+queue, logging.ErrAttr(err))
	}
}
