package repomanager

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/events"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/helprequests"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/participants"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/teams"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/users"
)

// Collection names as created by earlier deployments of the platform.
const (
	usersCollection        = "users"
	eventsCollection       = "events"
	participantsCollection = "participants"
	helpRequestsCollection = "helpRequests"
	teamsCollection        = "teams"
)

// MongoRepositoryManager owns the mongo client and hands out
// collection-backed repositories.
type MongoRepositoryManager struct {
	client       *mongo.Client
	users        *users.MongoRepository
	events       *events.MongoRepository
	participants *participants.MongoRepository
	helpRequests *helprequests.MongoRepository
	teams        *teams.MongoRepository
}

// NewMongoRepositoryManager connects to the given MongoDB deployment,
// verifies connectivity, and ensures the indexes the repositories rely on.
func NewMongoRepositoryManager(ctx context.Context, uri string, dbName string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	db := client.Database(dbName)

	m := &MongoRepositoryManager{
		client:       client,
		users:        users.NewMongoRepository(db.Collection(usersCollection)),
		events:       events.NewMongoRepository(db.Collection(eventsCollection)),
		participants: participants.NewMongoRepository(db.Collection(participantsCollection)),
		helpRequests: helprequests.NewMongoRepository(db.Collection(helpRequestsCollection)),
		teams:        teams.NewMongoRepository(db.Collection(teamsCollection)),
	}

	if err := m.users.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("mongo index error: %w", err)
	}

	return m, nil
}

func (m *MongoRepositoryManager) Users() users.Repository { return m.users }

func (m *MongoRepositoryManager) Events() events.Repository { return m.events }

func (m *MongoRepositoryManager) Participants() participants.Repository { return m.participants }

func (m *MongoRepositoryManager) HelpRequests() helprequests.Repository { return m.helpRequests }

func (m *MongoRepositoryManager) Teams() teams.Repository { return m.teams }

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
