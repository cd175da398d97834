package urgentquests

import (
	"pso2news.dark-nova.me/apps/urgentquests/pkg/broker"
	"pso2news.dark-nova.me/apps/urgentquests/pkg/pso2"
)

type Clients struct {
	PSO2   pso2.Client
	Broker broker.Client
}
