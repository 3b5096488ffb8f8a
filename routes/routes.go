package routes

import (
	"net/http"
	"time"

	"feedline/config"
	"feedline/handlers"
	"feedline/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionMaxAge is the sliding session lifetime in seconds. The gate
// re-saves the session on every authenticated request, extending it.
const SessionMaxAge = 30 * 60

// SetupRouter assembles the engine: CORS, session middleware, public auth
// routes, then the protected group carrying the session gate. Protection is
// declared by group membership, not by registration order.
func SetupRouter(cfg config.Config, h *handlers.Handler, store sessions.Store) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode, // client lives on another origin
	})
	router.Use(sessions.Sessions("session", store))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	// Public routes (no session required)
	router.POST("/api/login", h.Login)
	router.POST("/api/signup", h.Signup)
	router.GET("/api/user/isLoggedIn", h.IsLoggedIn)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.RequireSession())

	// Logout lives behind the gate, as the original service had it.
	protected.POST("/logout", h.Logout)

	// Posts
	protected.GET("/post", h.GetPosts)
	protected.POST("/post", h.CreatePost)
	protected.DELETE("/delete/post", h.DeletePost)
	protected.PATCH("/update/post", h.UpdatePost)

	// Likes
	protected.POST("/post/like", h.LikePost)

	// Comments
	protected.POST("/add/comment", h.AddComment)
	protected.PATCH("/update/comment", h.UpdateComment)
	protected.DELETE("/delete/comment", h.DeleteComment)

	return router
}
