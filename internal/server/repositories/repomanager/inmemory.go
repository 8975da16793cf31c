package repomanager

import (
	"context"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/events"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/helprequests"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/participants"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/teams"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/users"
)

// InMemoryRepositoryManager backs every repository with in-process maps.
// Used in tests.
type InMemoryRepositoryManager struct {
	users        users.Repository
	events       events.Repository
	participants participants.Repository
	helpRequests helprequests.Repository
	teams        teams.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:        users.NewInMemoryRepository(),
		events:       events.NewInMemoryRepository(),
		participants: participants.NewInMemoryRepository(),
		helpRequests: helprequests.NewInMemoryRepository(),
		teams:        teams.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *InMemoryRepositoryManager) Events() events.Repository { return m.events }

func (m *InMemoryRepositoryManager) Participants() participants.Repository {
	return m.participants
}

func (m *InMemoryRepositoryManager) HelpRequests() helprequests.Repository {
	return m.helpRequests
}

func (m *InMemoryRepositoryManager) Teams() teams.Repository { return m.teams }

func (m *InMemoryRepositoryManager) Ping(ctx context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Close(ctx context.Context) error { return nil }
