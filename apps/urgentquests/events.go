package urgentquests

import (
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

func (app *UrgentQuests) eventsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(fmt.Sprintf("GET %s/events", prefix), app.getEventsHandler)
	mux.HandleFunc(fmt.Sprintf("GET %s/sources", prefix), app.getSourcesHandler)
}

func (app *UrgentQuests) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := app.Services.Events.GetAll(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, events, nil)
	if err != nil {
		httptools.HandleError(w, r, err)
	}
}

func (app *UrgentQuests) getSourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := app.Services.Events.GetSources(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, sources, nil)
	if err != nil {
		httptools.HandleError(w, r, err)
	}
}
