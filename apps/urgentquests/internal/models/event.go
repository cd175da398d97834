package models

import "time"

type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Name        string    `json:"name"`
	SourceTitle string    `json:"sourceTitle"`
	SourceURL   string    `json:"sourceUrl"`
}
