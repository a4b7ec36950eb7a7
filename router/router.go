// router/router.go

package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kada-connect/api/controller"
	"github.com/kada-connect/api/middleware"
	"github.com/kada-connect/api/util"
)

func SetupRouter(
	controllers *controller.Controllers,
	allowedOrigins []string,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders(allowedOrigins))
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.Identity())

	router.GET("/health", func(c *gin.Context) {
		util.RespondWithData(c, http.StatusOK, "OK", nil)
	})

	api := router.Group("/api")

	controllers.Lookup.RegisterRoutes(api)
	controllers.Company.RegisterRoutes(api)
	controllers.Student.RegisterRoutes(api)
	controllers.Proxy.RegisterRoutes(api)

	router.NoRoute(func(c *gin.Context) {
		util.RespondWithError(c, http.StatusNotFound,
			fmt.Sprintf("Not Found - %s", c.Request.URL.Path), nil)
	})

	return router
}
