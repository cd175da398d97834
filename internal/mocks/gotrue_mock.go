package mocks

import (
	"errors"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

const MockUserID = "4001e9cf-3fbe-4b09-863f-bd1654cfbf76"

var errInvalidToken = errors.New("invalid token")

// MockedGoTrueClient answers the token, user and logout calls of the operator
// sign in flow. Any other call panics on the nil embedded client.
type MockedGoTrueClient struct {
	gotrue.Client
	token string
}

func NewMockedGoTrueClient() gotrue.Client {
	//nolint:exhaustruct //embedded client stays nil
	return MockedGoTrueClient{}
}

func (client MockedGoTrueClient) WithToken(token string) gotrue.Client {
	client.token = token
	return client
}

func (client MockedGoTrueClient) Token(
	req types.TokenRequest,
) (*types.TokenResponse, error) {
	switch req.GrantType {
	case "password":
		if req.Password != "password" {
			return nil, errInvalidToken
		}
	case "refresh_token":
		if req.RefreshToken != "refresh" {
			return nil, errInvalidToken
		}
	}

	//nolint:exhaustruct //only tokens are read
	return &types.TokenResponse{
		Session: types.Session{
			AccessToken:  "access",
			RefreshToken: "refresh",
		},
	}, nil
}

func (client MockedGoTrueClient) GetUser() (*types.UserResponse, error) {
	if client.token != "access" {
		return nil, errInvalidToken
	}

	//nolint:exhaustruct //only id and email are read
	return &types.UserResponse{
		User: types.User{
			ID:    uuid.MustParse(MockUserID),
			Email: "operator@example.com",
		},
	}, nil
}

func (client MockedGoTrueClient) Logout() error {
	if client.token != "access" {
		return errInvalidToken
	}
	return nil
}
