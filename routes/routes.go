// Package routes maps the HTTP surface onto the controllers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waniyilo/controllers"
)

// Controllers bundles everything the router serves.
type Controllers struct {
	Academy   *controllers.AcademyController
	Content   *controllers.ContentController
	Messaging *controllers.MessagingController
	Oracle    *controllers.OracleController
}

// Setup registers every route. auth resolves X-Matricule to a profile;
// admin additionally requires the ADMIN archetype; ws is the academy
// websocket upgrade handler; ping reports database health.
func Setup(router *gin.Engine, ctrl Controllers, auth, admin, ws gin.HandlerFunc, ping func(c *gin.Context) error) {
	router.GET("/healthz", func(c *gin.Context) {
		if err := ping(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public: the initiation funnel and the returning-user branch.
	router.POST("/register", ctrl.Academy.Register)
	router.POST("/login", ctrl.Academy.Login)

	// Websocket authenticates via query parameter inside the handler.
	router.GET("/ws/academy", ws)

	authed := router.Group("/")
	authed.Use(auth)
	{
		authed.GET("/me", ctrl.Academy.Me)
		authed.POST("/me/xp", ctrl.Academy.AddXP)
		authed.POST("/me/avatar", ctrl.Academy.CycleAvatar)
		authed.GET("/leaderboard", ctrl.Academy.Leaderboard)

		authed.GET("/news", ctrl.Content.GetNews)
		authed.GET("/news/:id/comments", ctrl.Content.GetComments)
		authed.POST("/news/:id/comments", ctrl.Content.PostComment)
		authed.GET("/courses", ctrl.Content.GetCourses)
		authed.GET("/vocabulary", ctrl.Content.GetVocabulary)
		authed.GET("/partners", ctrl.Content.GetPartners)

		authed.GET("/nexus/messages", ctrl.Messaging.GetNexus)
		authed.POST("/nexus/messages", ctrl.Messaging.PostNexus)
		authed.GET("/nexus/private", ctrl.Messaging.GetPrivate)
		authed.POST("/nexus/private", ctrl.Messaging.PostPrivate)

		authed.POST("/oracle/ask", ctrl.Oracle.Ask)
		authed.POST("/oracle/lab", ctrl.Oracle.Lab)
		authed.POST("/oracle/translate", ctrl.Oracle.Translate)

		adminOnly := authed.Group("/admin")
		adminOnly.Use(admin)
		{
			adminOnly.GET("/users", ctrl.Academy.Users)
			adminOnly.POST("/news", ctrl.Content.CreateNews)
			adminOnly.DELETE("/news/:id", ctrl.Content.DeleteNews)
			adminOnly.POST("/vocabulary", ctrl.Content.AddVocabulary)
			adminOnly.DELETE("/vocabulary/:id", ctrl.Content.DeleteVocabulary)
			adminOnly.POST("/partners", ctrl.Content.AddPartner)
			adminOnly.DELETE("/partners/:id", ctrl.Content.DeletePartner)
			adminOnly.DELETE("/nexus/messages/:id", ctrl.Messaging.DeleteNexus)
		}
	}
}
