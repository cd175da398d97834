package services

import (
	"github.com/supabase-community/gotrue-go"
	"github.com/xdoubleu/essentia/v2/pkg/config"
	cfg "pso2news.dark-nova.me/internal/config"
)

type Services struct {
	Auth *AuthService
}

func New(
	cfg cfg.Config,
	supabaseClient gotrue.Client,
) *Services {
	return &Services{
		Auth: &AuthService{
			client:     supabaseClient,
			operatorID: cfg.SupabaseUserID,
			secure:     cfg.Env == config.ProdEnv,
			accessTTL:  cfg.AccessExpiry,
			refreshTTL: cfg.RefreshExpiry,
		},
	}
}
