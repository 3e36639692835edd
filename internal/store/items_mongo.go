package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shoply_back_end/internal/models"
)

type MongoItemStore struct {
	col *mongo.Collection
}

func NewMongoItemStore(db *mongo.Database) *MongoItemStore {
	return &MongoItemStore{col: db.Collection("items")}
}

func (s *MongoItemStore) List(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	query := bson.M{}

	if filter.Category != "" && filter.Category != "all" {
		query["category"] = filter.Category
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	if filter.Search != "" {
		query["name"] = primitive.Regex{Pattern: filter.Search, Options: "i"}
	}

	cursor, err := s.col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoItemStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Item, error) {
	result := make(map[primitive.ObjectID]models.Item, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	for _, item := range items {
		result[item.ID] = item
	}
	return result, nil
}

func (s *MongoItemStore) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

func (s *MongoItemStore) InsertMany(ctx context.Context, items []models.Item) error {
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		if item.ID.IsZero() {
			item.ID = primitive.NewObjectID()
		}
		if item.Image == "" {
			item.Image = models.PlaceholderImage
		}
		docs = append(docs, item)
	}

	_, err := s.col.InsertMany(ctx, docs)
	return err
}
