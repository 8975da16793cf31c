package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with all routes registered. Exported so
// tests can drive the API through httptest without binding a port.
func (s *RestServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	// liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "handson server running")
	})

	// public routes
	r.POST("/users/:email", s.registerOrLogin)
	r.POST("/jwt", s.refreshToken)
	r.GET("/all-events", s.listEvents)
	r.GET("/event/:id", s.getEvent)
	r.GET("/recent-events", s.recentEvents)
	r.GET("/help-requests", s.listHelpRequests)
	r.GET("/teams", s.listTeams)

	// protected routes
	authed := r.Group("/", s.verifyToken())
	authed.GET("/users/:email", s.getUser)
	authed.PUT("/users/:email", s.updateUser)
	authed.POST("/create-event", s.createEvent)
	authed.GET("/my-events/:email", s.myEvents)
	authed.PUT("/update-event/:id", s.updateEvent)
	authed.DELETE("/delete-event/:id", s.deleteEvent)
	authed.POST("/join-event", s.joinEvent)
	authed.GET("/my-join-events", s.myJoinedEvents)
	authed.POST("/help-request", s.createHelpRequest)
	authed.POST("/help-request/:id/comment", s.addComment)
	authed.POST("/create-team", s.createTeam)

	return r
}
