// Package repomanager bundles the per-collection repositories behind one
// interface so services and tests can swap the storage backend.
package repomanager

import (
	"context"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/events"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/helprequests"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/participants"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/teams"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/users"
)

// RepositoryManager exposes one repository per collection.
type RepositoryManager interface {
	Users() users.Repository
	Events() events.Repository
	Participants() participants.Repository
	HelpRequests() helprequests.Repository
	Teams() teams.Repository

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend connection.
	Close(ctx context.Context) error
}
