package handlers_test

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shoply_back_end/internal/models"
	"shoply_back_end/internal/store"
)

// Stores en mémoire implémentant les ports du package store, pour
// tester les handlers sans MongoDB.

type memUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *memUserStore) Create(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, store.ErrDuplicateEmail
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Cart == nil {
		user.Cart = []models.CartEntry{}
	}
	s.users[user.ID] = copyUser(user)
	return copyUser(user), nil
}

func (s *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return copyUser(user), nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *memUserStore) MutateCart(_ context.Context, id primitive.ObjectID, fn func(cart []models.CartEntry) []models.CartEntry) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}

	user = copyUser(user)
	user.Cart = fn(user.Cart)
	if user.Cart == nil {
		user.Cart = []models.CartEntry{}
	}
	s.users[id] = copyUser(user)
	return copyUser(user), nil
}

func (s *memUserStore) delete(id primitive.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func copyUser(user models.User) models.User {
	cart := make([]models.CartEntry, len(user.Cart))
	copy(cart, user.Cart)
	user.Cart = cart
	return user
}

type memItemStore struct {
	mu    sync.Mutex
	items []models.Item
}

func newMemItemStore(items ...models.Item) *memItemStore {
	s := &memItemStore{}
	for i := range items {
		if items[i].ID.IsZero() {
			items[i].ID = primitive.NewObjectID()
		}
	}
	s.items = items
	return s
}

func (s *memItemStore) List(_ context.Context, filter store.ItemFilter) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []models.Item{}
	for _, item := range s.items {
		if filter.Category != "" && filter.Category != "all" && item.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && item.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && item.Price > *filter.MaxPrice {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Search)) {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *memItemStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[primitive.ObjectID]models.Item)
	for _, id := range ids {
		for _, item := range s.items {
			if item.ID == id {
				result[id] = item
				break
			}
		}
	}
	return result, nil
}

func (s *memItemStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.items)), nil
}

func (s *memItemStore) InsertMany(_ context.Context, items []models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if item.ID.IsZero() {
			item.ID = primitive.NewObjectID()
		}
		s.items = append(s.items, item)
	}
	return nil
}
