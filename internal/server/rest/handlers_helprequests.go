package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

func (s *RestServer) createHelpRequest(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	request := &models.HelpRequest{}
	if err := c.ShouldBindJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	request.Email = identity.Email

	created, err := s.helpRequests.Create(c.Request.Context(), request)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "helpRequest": created})
}

func (s *RestServer) listHelpRequests(c *gin.Context) {
	filter := models.HelpRequestFilter{
		SearchTerm: c.Query("searchTerm"),
		Urgency:    c.Query("urgency"),
	}

	requests, err := s.helpRequests.List(c.Request.Context(), filter)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (s *RestServer) addComment(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	err := s.helpRequests.AddComment(c.Request.Context(), c.Param("id"), identity.Email, body.Text)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Comment added successfully"})
}
