package urgentquests

import (
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

func (app *UrgentQuests) feedRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(fmt.Sprintf("GET /%s/feed.ics", prefix), app.feedHandler)
}

func (app *UrgentQuests) feedHandler(w http.ResponseWriter, r *http.Request) {
	calendar, err := app.Services.Feed.Calendar(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	_, err = w.Write([]byte(calendar))
	if err != nil {
		app.logger.Error("failed to write calendar feed", logging.ErrAttr(err))
	}
}
