package services

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/communication/wstools"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"pso2news.dark-nova.me/apps/urgentquests/internal/dtos"
)

// WebSocketService pushes the state of every job to subscribers of the
// topic named after the job.
type WebSocketService struct {
	allowedOrigins []string
	handler        *wstools.WebSocketHandler[dtos.SubscribeMessageDto]
	jobQueue       *threading.JobQueue
	intervals      map[string]time.Duration
	topics         map[string]*wstools.Topic
}

func NewWebSocketService(
	logger *slog.Logger,
	allowedOrigins []string,
	jobQueue *threading.JobQueue,
) *WebSocketService {
	service := WebSocketService{
		allowedOrigins: allowedOrigins,
		handler:        nil,
		jobQueue:       jobQueue,
		intervals:      make(map[string]time.Duration),
		topics:         make(map[string]*wstools.Topic),
	}

	handler := wstools.CreateWebSocketHandler[dtos.SubscribeMessageDto](
		logger,
		1,
		100, //nolint:mnd //no magic number
	)

	service.handler = &handler

	return &service
}

func (service *WebSocketService) Handler() http.HandlerFunc {
	return service.handler.Handler()
}

func (service *WebSocketService) UpdateState(
	id string,
	isRunning bool,
	lastRunTime *time.Time,
) {
	topic, ok := service.topics[id]
	if !ok {
		return
	}

	topic.EnqueueEvent(service.stateMessage(id, isRunning, lastRunTime))
}

// RegisterJob opens the topic of a job that runs every interval.
func (service *WebSocketService) RegisterJob(id string, interval time.Duration) {
	topic, err := service.handler.AddTopic(
		id,
		service.allowedOrigins,
		func(_ context.Context, tp *wstools.Topic) (any, error) {
			return service.fetchState(tp.Name), nil
		},
	)
	if err != nil {
		panic(err)
	}

	service.topics[id] = topic
	service.intervals[id] = interval
}

func (service *WebSocketService) fetchState(id string) dtos.StateMessageDto {
	isRefreshing, lastRefresh := service.jobQueue.FetchState(id)
	return service.stateMessage(id, isRefreshing, lastRefresh)
}

func (service *WebSocketService) stateMessage(
	id string,
	isRefreshing bool,
	lastRefresh *time.Time,
) dtos.StateMessageDto {
	state := dtos.StateMessageDto{
		Job:          id,
		IsRefreshing: isRefreshing,
		LastRefresh:  lastRefresh,
		NextRefresh:  nil,
	}

	if lastRefresh != nil && !isRefreshing {
		next := lastRefresh.Add(service.intervals[id])
		state.NextRefresh = &next
	}

	return state
}
