package mocks

import (
	"context"
	"net/http"

	"pso2news.dark-nova.me/internal/auth"
	"pso2news.dark-nova.me/internal/constants"
	"pso2news.dark-nova.me/internal/models"
)

func NewMockedAuthService(operatorID string) auth.Service {
	return &MockedAuthService{
		operatorID: operatorID,
	}
}

type MockedAuthService struct {
	operatorID string
}

// Access lets any request carrying an access token cookie through.
func (m *MockedAuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(models.AccessCookie); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		operator := models.Operator{
			ID:    m.operatorID,
			Email: "operator@example.com",
		}

		ctx := context.WithValue(r.Context(), constants.OperatorContextKey, operator)
		next(w, r.WithContext(ctx))
	}
}
