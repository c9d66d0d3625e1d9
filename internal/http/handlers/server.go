package handlers

import (
	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-dashboard/internal/analytics"
	"github.com/rogerio-castellano/inventory-dashboard/internal/auth"
	"github.com/rogerio-castellano/inventory-dashboard/internal/inventory"
)

// Server holds the dependencies shared by every handler.
type Server struct {
	engine    *inventory.Engine
	analytics *analytics.Service
	auth      *auth.AuthService
	log       *zap.Logger
	secure    bool
}

// NewServer builds the handler set. secureCookies marks the session cookie Secure.
func NewServer(engine *inventory.Engine, analyticsSvc *analytics.Service, authSvc *auth.AuthService, log *zap.Logger, secureCookies bool) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		engine:    engine,
		analytics: analyticsSvc,
		auth:      authSvc,
		log:       log,
		secure:    secureCookies,
	}
}
