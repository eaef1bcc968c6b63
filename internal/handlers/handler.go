package handlers

import (
	"net/http"

	"users_api/internal/logger"
	"users_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	port     string
}

// NewHandler constructs a new HTTP handler with dependencies. The port is
// only used by the root status endpoint.
func NewHandler(services *service.Service, log *logger.Logger, port string) *Handler {
	return &Handler{services: services, log: log, port: port}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware, h.securityHeadersMiddleware, corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public endpoints
	router.GET("/", h.root)
	router.GET("/dummy-get", h.dummyGet)
	router.POST("/login", h.login)

	// Protected user CRUD
	users := router.Group("/users", h.authMiddleware)
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.POST("", h.createUser)
		users.DELETE("/:id", h.deleteUser)
	}

	return router
}

// @Summary      Server status
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.String(http.StatusOK, "Server running on port %s", h.port)
}

// @Summary      Dummy GET
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /dummy-get [get]
func (h *Handler) dummyGet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "This is a dummy GET API"})
}
