package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"shoply_back_end/internal/config"
)

// ConnectMongo ouvre la connexion MongoDB et vérifie qu'elle répond.
// Le serveur ne démarre pas tant que la base n'est pas joignable.
func ConnectMongo(ctx context.Context, cfg config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Println("✅ Connecté à MongoDB")
	return client.Database(cfg.MongoDatabase), nil
}

// ConnectRedis ouvre la connexion Redis si REDIS_HOST est configuré.
// Redis est optionnel : sans lui le cache catalogue et le rate limiting
// sont simplement désactivés.
func ConnectRedis(ctx context.Context, cfg config.Config) *redis.Client {
	if cfg.RedisHost == "" {
		log.Println("⚠️  Redis non configuré — cache et rate limiting désactivés")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Println("⚠️  Erreur connexion Redis, on continue sans:", err)
		return nil
	}

	log.Println("✅ Connecté à Redis")
	return rdb
}
