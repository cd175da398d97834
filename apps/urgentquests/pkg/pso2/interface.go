package pso2

import "github.com/PuerkitoBio/goquery"

type Client interface {
	ListSchedules() ([]Schedule, error)
	GetSchedule(url string) (*goquery.Selection, error)
}
