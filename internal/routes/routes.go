package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shoply_back_end/internal/handlers"
	"shoply_back_end/internal/middleware"
	"shoply_back_end/internal/store"
)

// Deps regroupe tout ce dont les routes ont besoin. Construit dans
// cmd/server pour la prod, par les tests avec des stores en mémoire.
type Deps struct {
	Users       store.UserStore
	Items       store.ItemStore
	Redis       *redis.Client
	JWTSecret   string
	FrontendURL string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", d.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	auth := &handlers.AuthHandler{Users: d.Users, JWTSecret: d.JWTSecret}
	items := &handlers.ItemHandler{Items: d.Items, Redis: d.Redis}
	cart := &handlers.CartHandler{Users: d.Users, Items: d.Items}

	authRequired := middleware.AuthRequired(d.JWTSecret, d.Users)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", middleware.RegisterRateLimit(d.Redis), auth.Register)
	authGroup.POST("/login", middleware.LoginRateLimit(d.Redis), auth.Login)
	authGroup.GET("/me", authRequired, auth.Me)

	api.GET("/items", items.List)

	cartGroup := api.Group("/cart", authRequired)
	cartGroup.GET("", cart.Get)
	cartGroup.POST("/add", cart.Add)
	cartGroup.PUT("/update", cart.Update)
	cartGroup.DELETE("/remove/:itemId", cart.Remove)
}
