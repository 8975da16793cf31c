// Package rest exposes the platform over HTTP/JSON using gin. It wires the
// credential-verifier middleware in front of protected routes and maps
// service errors to HTTP statuses.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/logging"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/services"
)

// RestServer serves the HTTP API.
type RestServer struct {
	address      string
	logger       logging.Logger
	users        *services.UserService
	events       *services.EventService
	helpRequests *services.HelpRequestService
	teams        *services.TeamService
	jwtSecret    []byte
}

func NewRestServer(
	address string,
	logger logging.Logger,
	us *services.UserService,
	es *services.EventService,
	hs *services.HelpRequestService,
	ts *services.TeamService,
	secretKey string,
) *RestServer {
	return &RestServer{
		address:      address,
		logger:       logger.With("module", "rest_server"),
		users:        us,
		events:       es,
		helpRequests: hs,
		teams:        ts,
		jwtSecret:    []byte(secretKey),
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *RestServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
