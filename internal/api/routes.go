package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"tripchat/internal/api/controllers"
	"tripchat/pkg/middleware"
	"tripchat/pkg/utils"
)

func RegisterRoutes(r *gin.Engine,
	sessionController *controllers.SessionController,
	tokens *utils.SessionTokenIssuer) {

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sessions := r.Group("/sessions")
	sessions.POST("", sessionController.StartSessionHandler)

	session := sessions.Group("/:sessionId", middleware.SessionAuthMiddleware(tokens))
	session.GET("", sessionController.GetSessionHandler)
	session.DELETE("", sessionController.EndSessionHandler)
	session.POST("/messages", sessionController.SendMessageHandler)
	session.GET("/itinerary.ics", sessionController.ExportCalendarHandler)
}
