package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/common"
)

// respondError maps service errors to HTTP statuses. Anything outside the
// sentinel taxonomy is logged and reported as an opaque 500; store failures
// never escape as uncaught panics.
func (s *RestServer) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrAlreadyJoined):
		c.JSON(http.StatusConflict, gin.H{"error": "already joined"})
	case errors.Is(err, common.ErrorForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		s.logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
