package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shoply_back_end/internal/models"
)

var (
	ErrNotFound       = errors.New("document introuvable")
	ErrDuplicateEmail = errors.New("email déjà utilisé")
)

// ItemFilter porte les critères de listing du catalogue.
// Category vide ou "all" = toutes les catégories ; les bornes de prix
// sont inclusives et indépendantes ; Search est un match sous-chaîne
// insensible à la casse sur le nom.
type ItemFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// MutateCart applique fn au panier de l'utilisateur puis persiste le
	// résultat. L'implémentation sérialise les mutations d'un même
	// utilisateur pour éviter la perte de mise à jour en cas de requêtes
	// concurrentes.
	MutateCart(ctx context.Context, id primitive.ObjectID, fn func(cart []models.CartEntry) []models.CartEntry) (models.User, error)
}

type ItemStore interface {
	List(ctx context.Context, filter ItemFilter) ([]models.Item, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Item, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, items []models.Item) error
}
