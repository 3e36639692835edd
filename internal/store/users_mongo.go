package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shoply_back_end/internal/models"
)

// MongoUserStore persiste les utilisateurs (panier inclus) dans la
// collection "users".
type MongoUserStore struct {
	col *mongo.Collection

	// locks sérialise les read-modify-write du panier par utilisateur :
	// deux requêtes concurrentes sur le même panier ne peuvent plus
	// s'écraser mutuellement.
	locks sync.Map // hex de l'ObjectID → *sync.Mutex
}

func NewMongoUserStore(ctx context.Context, db *mongo.Database) (*MongoUserStore, error) {
	col := db.Collection("users")

	// L'unicité de l'email est garantie par la base
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return &MongoUserStore{col: col}, nil
}

func (s *MongoUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Cart == nil {
		user.Cart = []models.CartEntry{}
	}

	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoUserStore) MutateCart(ctx context.Context, id primitive.ObjectID, fn func(cart []models.CartEntry) []models.CartEntry) (models.User, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	user, err := s.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	user.Cart = fn(user.Cart)
	if user.Cart == nil {
		user.Cart = []models.CartEntry{}
	}

	_, err = s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"cart": user.Cart}})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoUserStore) lockFor(id primitive.ObjectID) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id.Hex(), &sync.Mutex{})
	return mu.(*sync.Mutex)
}
