package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"pso2news.dark-nova.me/cmd/publish/internal/dtos"
)

func TestSignInHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/api/auth/signin",
	)

	signInDto := dtos.SignInDto{
		Email:      "valid@example.com",
		Password:   "password",
		RememberMe: true,
	}

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(signInDto)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	names := []string{}
	for _, cookie := range rs.Cookies() {
		names = append(names, cookie.Name)
	}
	assert.ElementsMatch(t, []string{"accessToken", "refreshToken"}, names)
}

func TestSignInHandlerWithoutRememberMe(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/api/auth/signin",
	)

	//nolint:exhaustruct //remember me stays off
	signInDto := dtos.SignInDto{
		Email:    "valid@example.com",
		Password: "password",
	}

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(signInDto)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	cookies := rs.Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, "accessToken", cookies[0].Name)
		assert.Equal(t, "access", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	}
}

func TestSignInHandlerValidation(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/api/auth/signin",
	)

	//nolint:exhaustruct //missing fields are the point
	signInDto := dtos.SignInDto{
		Password: "password",
	}

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(signInDto)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestSignOutHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/auth/signout",
	)

	tReq.SetFollowRedirect(false)

	tReq.AddCookie(&accessToken)
	tReq.AddCookie(&refreshToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	cleared := map[string]bool{}
	for _, cookie := range rs.Cookies() {
		cleared[cookie.Name] = cookie.MaxAge < 0 && cookie.Value == ""
	}
	assert.Equal(t, map[string]bool{"accessToken": true, "refreshToken": true}, cleared)
}

func TestRefreshRequiresSignIn(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/urgentquests/api/refresh",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnauthorized, rs.StatusCode)
}

func TestRefreshTokens(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/urgentquests/api/refresh",
	)

	tReq.AddCookie(&refreshToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusAccepted, rs.StatusCode)
}

func TestHome(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestRefreshRejectsUnknownRefreshToken(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/urgentquests/api/refresh",
	)

	tReq.AddCookie(&http.Cookie{Name: "refreshToken", Value: "stale"})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnauthorized, rs.StatusCode)
}
