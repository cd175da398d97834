package main

import (
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"pso2news.dark-nova.me/cmd/publish/internal/dtos"
)

func (app *Application) authRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(fmt.Sprintf("POST /%s/auth/signin", prefix), app.signInHandler)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/auth/signout", prefix),
		app.services.Auth.Access(app.signOutHandler),
	)
}

func (app *Application) signInHandler(w http.ResponseWriter, r *http.Request) {
	var signInDto dtos.SignInDto

	if err := httptools.ReadForm(r, &signInDto); err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	if ok, errs := signInDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	session, err := app.services.Auth.SignIn(&signInDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	for _, cookie := range app.services.Auth.Cookies(session, signInDto.RememberMe) {
		http.SetCookie(w, cookie)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *Application) signOutHandler(w http.ResponseWriter, r *http.Request) {
	for _, cookie := range app.services.Auth.SignOut(r) {
		http.SetCookie(w, cookie)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
