package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/repomanager"
)

func TestTeamCreate_CreatorIsFirstMember(t *testing.T) {
	repos := repomanager.NewInMemoryRepositoryManager()
	s := NewTeamService(repos)

	created, err := s.Create(context.Background(), &models.Team{
		Name:        "Green Warriors",
		Description: "Tree planting crew",
		Type:        models.TeamPublic,
	}, "founder@x.com")
	require.NoError(t, err)

	assert.Equal(t, "founder@x.com", created.CreatedBy)
	assert.Equal(t, []string{"founder@x.com"}, created.Members)
	assert.False(t, created.ID.IsZero())
}

func TestTeamCreate_Validation(t *testing.T) {
	repos := repomanager.NewInMemoryRepositoryManager()
	s := NewTeamService(repos)

	tests := []struct {
		name string
		team models.Team
	}{
		{"missing name", models.Team{Description: "d", Type: models.TeamPublic}},
		{"missing description", models.Team{Name: "n", Type: models.TeamPublic}},
		{"bad type", models.Team{Name: "n", Description: "d", Type: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := tt.team
			_, err := s.Create(context.Background(), &team, "founder@x.com")
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestListPublic_HidesPrivateTeams(t *testing.T) {
	repos := repomanager.NewInMemoryRepositoryManager()
	s := NewTeamService(repos)

	_, err := s.Create(context.Background(), &models.Team{
		Name: "Open", Description: "d", Type: models.TeamPublic,
	}, "a@x.com")
	require.NoError(t, err)

	_, err = s.Create(context.Background(), &models.Team{
		Name: "Hidden", Description: "d", Type: models.TeamPrivate,
	}, "a@x.com")
	require.NoError(t, err)

	got, err := s.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Open", got[0].Name)
}
