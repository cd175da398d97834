package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/errortools"
	"pso2news.dark-nova.me/cmd/publish/internal/dtos"
	"pso2news.dark-nova.me/internal/constants"
	"pso2news.dark-nova.me/internal/models"
)

// Session holds the Supabase tokens of a signed in operator.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// AuthService signs the operator in against Supabase and guards the routes
// that change state. An empty operator id admits every signed in user.
type AuthService struct {
	client     gotrue.Client
	operatorID string
	secure     bool
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func (service *AuthService) SignIn(signInDto *dtos.SignInDto) (*Session, error) {
	//nolint:exhaustruct //don't need other fields
	response, err := service.client.Token(types.TokenRequest{
		GrantType: "password",
		Email:     signInDto.Email,
		Password:  signInDto.Password,
	})
	if err != nil {
		return nil, errortools.NewUnauthorizedError(
			errors.New("invalid credentials"),
		)
	}

	return &Session{
		AccessToken:  response.AccessToken,
		RefreshToken: response.RefreshToken,
	}, nil
}

// Cookies stores a session. The refresh token only survives the access
// token when remember is set.
func (service *AuthService) Cookies(session *Session, remember bool) []*http.Cookie {
	now := time.Now()

	cookies := []*http.Cookie{
		service.cookie(models.AccessCookie, session.AccessToken, now.Add(service.accessTTL)),
	}
	if remember {
		cookies = append(
			cookies,
			service.cookie(models.RefreshCookie, session.RefreshToken, now.Add(service.refreshTTL)),
		)
	}

	return cookies
}

// SignOut ends the Supabase session of the request and returns the cookies
// that clear it locally. Local cookies are cleared even when the logout fails.
func (service *AuthService) SignOut(r *http.Request) []*http.Cookie {
	if accessToken, err := r.Cookie(models.AccessCookie); err == nil {
		_ = service.client.WithToken(accessToken.Value).Logout()
	}

	cookies := []*http.Cookie{}
	for _, name := range []string{models.AccessCookie, models.RefreshCookie} {
		cookie := service.cookie(name, "", time.Time{})
		cookie.MaxAge = -1
		cookies = append(cookies, cookie)
	}

	return cookies
}

// Access only lets the configured operator through. An expired access token
// is renewed with the refresh token when one is present.
func (service *AuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		operator := service.currentOperator(r)
		if operator == nil {
			operator = service.renewSession(w, r)
		}

		if operator == nil {
			httptools.UnauthorizedResponse(w, r,
				errortools.NewUnauthorizedError(errors.New("not signed in")))
			return
		}

		if service.operatorID != "" && operator.ID != service.operatorID {
			httptools.UnauthorizedResponse(w, r,
				errortools.NewUnauthorizedError(errors.New("not the operator")))
			return
		}

		next(w, r.WithContext(withOperator(r.Context(), *operator)))
	}
}

func (service *AuthService) currentOperator(r *http.Request) *models.Operator {
	accessToken, err := r.Cookie(models.AccessCookie)
	if err != nil {
		return nil
	}

	return service.operator(accessToken.Value)
}

func (service *AuthService) renewSession(
	w http.ResponseWriter,
	r *http.Request,
) *models.Operator {
	refreshToken, err := r.Cookie(models.RefreshCookie)
	if err != nil {
		return nil
	}

	//nolint:exhaustruct //don't need other fields
	response, err := service.client.Token(types.TokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: refreshToken.Value,
	})
	if err != nil {
		return nil
	}

	session := &Session{
		AccessToken:  response.AccessToken,
		RefreshToken: response.RefreshToken,
	}
	for _, cookie := range service.Cookies(session, true) {
		http.SetCookie(w, cookie)
	}

	return service.operator(session.AccessToken)
}

func (service *AuthService) operator(accessToken string) *models.Operator {
	response, err := service.client.WithToken(accessToken).GetUser()
	if err != nil {
		return nil
	}

	operator := models.OperatorFromUser(response.User)
	return &operator
}

func (service *AuthService) cookie(
	name string,
	value string,
	expires time.Time,
) *http.Cookie {
	//nolint:exhaustruct //other fields are optional
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Expires:  expires,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Secure:   service.secure,
		Path:     "/",
	}
}

func withOperator(ctx context.Context, operator models.Operator) context.Context {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		//nolint:exhaustruct //other fields are optional
		hub.Scope().SetUser(sentry.User{
			ID:    operator.ID,
			Email: operator.Email,
		})
	}

	return context.WithValue(ctx, constants.OperatorContextKey, operator)
}
