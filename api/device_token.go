package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazraa/mazra-BE/internal/user"
)

type registerDeviceTokenRequest struct {
	DeviceToken string `json:"device_token" binding:"required"`
}

// registerDeviceToken stores the FCM token the client obtained on startup or
// after a token refresh. One token per account: a login on a new device
// replaces the old one.
func (server *Server) registerDeviceToken(c *gin.Context) {
	userID := c.Param("id")

	req := new(registerDeviceTokenRequest)
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	err := server.userStore.UpdateDeliveryToken(c.Request.Context(), userID, req.DeviceToken)
	if errors.Is(err, user.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, errorResponse(err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device token registered"})
}

// removeDeviceToken clears the token on logout so the device stops receiving
// targeted pushes.
func (server *Server) removeDeviceToken(c *gin.Context) {
	userID := c.Param("id")

	err := server.userStore.ClearDeliveryToken(c.Request.Context(), userID)
	if errors.Is(err, user.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, errorResponse(err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device token removed"})
}
