package urgentquests

import (
	"fmt"
	"net/http"

	"pso2news.dark-nova.me/apps/urgentquests/internal/jobs"
)

func (app *UrgentQuests) stateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/state", prefix),
		app.Services.WebSocket.Handler(),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/refresh", prefix),
		app.Services.Auth.Access(app.refreshHandler),
	)
}

func (app *UrgentQuests) refreshHandler(w http.ResponseWriter, _ *http.Request) {
	_, lastRunTime := app.jobQueue.FetchState(jobs.ScheduleJobID)
	app.Services.WebSocket.UpdateState(jobs.ScheduleJobID, true, lastRunTime)

	app.jobQueue.ForceRun(jobs.ScheduleJobID)

	w.WriteHeader(http.StatusAccepted)
}
