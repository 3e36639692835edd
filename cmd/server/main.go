package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"shoply_back_end/internal/config"
	"shoply_back_end/internal/database"
	"shoply_back_end/internal/routes"
	"shoply_back_end/internal/store"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	db, err := database.ConnectMongo(ctx, cfg)
	if err != nil {
		log.Fatal("❌ Erreur connexion MongoDB:", err)
	}

	rdb := database.ConnectRedis(ctx, cfg)

	users, err := store.NewMongoUserStore(ctx, db)
	if err != nil {
		log.Fatal("❌ Erreur création index users:", err)
	}
	items := store.NewMongoItemStore(db)

	// Le seed tourne avant que le serveur n'écoute
	if err := store.SeedItems(ctx, items); err != nil {
		log.Fatal("❌ Erreur seed du catalogue:", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Users:       users,
		Items:       items,
		Redis:       rdb,
		JWTSecret:   cfg.JWTSecret,
		FrontendURL: cfg.FrontendURL,
	})

	log.Println("🚀 Serveur Shoply lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Erreur serveur HTTP:", err)
	}
}
