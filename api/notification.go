package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mazraa/mazra-BE/internal/notification"
)

const defaultInboxLimit = 50

func (server *Server) listUserNotifications(c *gin.Context) {
	userID := c.Param("id")

	limit := defaultInboxLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, errorResponse(errors.New("limit must be a positive integer")))
			return
		}
		limit = parsed
	}

	records, err := server.inboxes.ListForUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": records})
}

func (server *Server) countUnreadNotifications(c *gin.Context) {
	userID := c.Param("id")

	count, err := server.inboxes.CountUnread(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (server *Server) markNotificationRead(c *gin.Context) {
	userID := c.Param("id")
	notificationID := c.Param("notificationID")

	err := server.inboxes.MarkRead(c.Request.Context(), userID, notificationID)
	if errors.Is(err, notification.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, errorResponse(err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}
