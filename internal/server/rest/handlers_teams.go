package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

func (s *RestServer) createTeam(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	team := &models.Team{}
	if err := c.ShouldBindJSON(team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := s.teams.Create(c.Request.Context(), team, identity.Email)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "team": created})
}

func (s *RestServer) listTeams(c *gin.Context) {
	teams, err := s.teams.ListPublic(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}
