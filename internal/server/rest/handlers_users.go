package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
)

// registerOrLogin creates the user on first contact and returns the stored
// record with a signed credential either way.
func (s *RestServer) registerOrLogin(c *gin.Context) {
	email := c.Param("email")

	profile := models.UserProfile{}
	// an empty body is fine; the profile is optional on registration
	_ = c.ShouldBindJSON(&profile)

	user, token, err := s.users.RegisterOrLogin(c.Request.Context(), email, profile)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// refreshToken reissues a long-lived credential for an already-known email.
func (s *RestServer) refreshToken(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	token, err := s.users.RefreshToken(c.Request.Context(), body.Email)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (s *RestServer) getUser(c *gin.Context) {
	email := c.Param("email")

	identity, ok := identityFrom(c)
	if !ok || !identity.CanAccess(email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	user, err := s.users.Get(c.Request.Context(), email)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *RestServer) updateUser(c *gin.Context) {
	email := c.Param("email")

	identity, ok := identityFrom(c)
	if !ok || !identity.CanAccess(email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	profile := models.UserProfile{}
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.users.UpdateProfile(c.Request.Context(), email, profile); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully"})
}
