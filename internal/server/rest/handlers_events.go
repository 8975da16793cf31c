package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

func (s *RestServer) createEvent(c *gin.Context) {
	event := &models.Event{}
	if err := c.ShouldBindJSON(event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := s.events.Create(c.Request.Context(), event); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Event created successfully"})
}

func (s *RestServer) listEvents(c *gin.Context) {
	filter := models.EventFilter{
		SearchTerm: c.Query("searchTerm"),
		Category:   c.Query("category"),
		Location:   c.Query("location"),
	}

	events, err := s.events.List(c.Request.Context(), filter)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (s *RestServer) getEvent(c *gin.Context) {
	event, err := s.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (s *RestServer) myEvents(c *gin.Context) {
	email := c.Param("email")

	identity, ok := identityFrom(c)
	if !ok || !identity.CanAccess(email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	events, err := s.events.ListByAuthor(c.Request.Context(), email)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (s *RestServer) recentEvents(c *gin.Context) {
	events, err := s.events.Recent(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (s *RestServer) updateEvent(c *gin.Context) {
	update := models.EventUpdate{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.events.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event updated successfully"})
}

func (s *RestServer) deleteEvent(c *gin.Context) {
	if err := s.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event deleted successfully"})
}

// joinEvent records the authenticated identity as a participant. The email
// always comes from the verified credential, never from the body.
func (s *RestServer) joinEvent(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var body struct {
		EventID string `json:"eventId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.EventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eventId is required"})
		return
	}

	participant, err := s.events.Join(c.Request.Context(), identity.Email, body.EventID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "participant": participant})
}

func (s *RestServer) myJoinedEvents(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	joined, err := s.events.JoinedEvents(c.Request.Context(), identity.Email)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, joined)
}
