package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mazraa/mazra-BE/internal/notification"
	"github.com/mazraa/mazra-BE/internal/user"
	"github.com/mazraa/mazra-BE/internal/util"
)

// Server exposes the small REST surface the mobile client needs: reading its
// notification inbox and registering its FCM device token. Dispatching itself
// is event-driven and has no request/response API.
type Server struct {
	router    *gin.Engine
	userStore user.Store
	inboxes   notification.Store
	config    *util.Config
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(userStore user.Store, inboxes notification.Store, config *util.Config) *Server {
	server := &Server{
		userStore: userStore,
		inboxes:   inboxes,
		config:    config,
	}

	server.setupRouter()
	return server
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")

	userGroup := v1.Group("/users/:id")
	{
		userGroup.GET("/notifications", server.listUserNotifications)
		userGroup.GET("/notifications/unread-count", server.countUnreadNotifications)
		userGroup.PATCH("/notifications/:notificationID/read", server.markNotificationRead)

		userGroup.PUT("/device-token", server.registerDeviceToken)
		userGroup.DELETE("/device-token", server.removeDeviceToken)
	}

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
