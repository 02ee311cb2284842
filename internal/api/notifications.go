package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetNotifications computes the bell feed for the authenticated user. The
// feed is rebuilt on every call and never cached; the count always equals
// the list length.
func (s *Server) GetNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	feed := s.notifications.Feed(c.Request.Context(), userID)
	c.JSON(http.StatusOK, feed)
}
