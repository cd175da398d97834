package auth

import "net/http"

// Service guards handlers that change state. Read-only routes are public.
type Service interface {
	Access(next http.HandlerFunc) http.HandlerFunc
}
