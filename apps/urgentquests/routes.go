package urgentquests

import (
	"fmt"
	"net/http"
)

func (app *UrgentQuests) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("/%s/api", prefix)
	app.eventsRoutes(apiPrefix, mux)
	app.stateRoutes(apiPrefix, mux)
}

func (app *UrgentQuests) Routes(prefix string, mux *http.ServeMux) {
	app.feedRoutes(prefix, mux)
	app.apiRoutes(prefix, mux)
}
