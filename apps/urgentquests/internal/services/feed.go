package services

import (
	"context"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"pso2news.dark-nova.me/apps/urgentquests/internal/models"
)

const eventDuration = 30 * time.Minute

type FeedService struct {
	webURL string
	events *EventService
}

// Calendar renders the latest events as an iCalendar feed. UIDs are derived
// from the event timestamp so clients see the same event across refreshes.
func (service *FeedService) Calendar(ctx context.Context) (string, error) {
	events, err := service.events.GetLatest(ctx)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//pso2news//urgentquests//EN")
	cal.SetXWRCalName("PSO2 Urgent Quests")

	for _, event := range events {
		vevent := cal.AddEvent(EventUID(event))
		vevent.SetDtStampTime(event.Timestamp)
		vevent.SetStartAt(event.Timestamp)
		vevent.SetEndAt(event.Timestamp.Add(eventDuration))
		vevent.SetSummary(event.Name)

		url := event.SourceURL
		if url == "" {
			url = service.webURL
		}
		vevent.SetURL(url)
	}

	return cal.Serialize(), nil
}

func EventUID(event models.Event) string {
	key := event.Timestamp.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String() + "@pso2news"
}
