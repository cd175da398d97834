package models

import "github.com/supabase-community/gotrue-go/types"

const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

// Operator is the signed in Supabase user allowed to force schedule refreshes.
type Operator struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func OperatorFromUser(user types.User) Operator {
	return Operator{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}
