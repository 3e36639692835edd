package store

import (
	"context"
	"log"

	"shoply_back_end/internal/models"
)

// SampleItems retourne le catalogue de démonstration inséré au premier
// démarrage sur une base vide.
func SampleItems() []models.Item {
	return []models.Item{
		{
			Name:        "MacBook Pro M2",
			Description: "Latest MacBook Pro with M2 chip",
			Price:       1299,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400",
			Stock:       5,
		},
		{
			Name:        "iPhone 14",
			Description: "Latest iPhone with advanced camera",
			Price:       999,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400",
			Stock:       10,
		},
		{
			Name:        "Nike Air Jordan",
			Description: "Classic basketball shoes",
			Price:       150,
			Category:    "Clothing",
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
			Stock:       20,
		},
		{
			Name:        "Levi's Jeans",
			Description: "Classic denim jeans",
			Price:       80,
			Category:    "Clothing",
			Image:       "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=400",
			Stock:       15,
		},
		{
			Name:        "The Great Gatsby",
			Description: "Classic American novel",
			Price:       15,
			Category:    "Books",
			Image:       "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
			Stock:       30,
		},
		{
			Name:        "Sony Headphones",
			Description: "Noise cancelling headphones",
			Price:       200,
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Stock:       8,
		},
	}
}

// SeedItems insère le catalogue de démonstration si la collection est
// vide. Tourne une seule fois au démarrage, avant que le serveur
// n'accepte des connexions.
func SeedItems(ctx context.Context, items ItemStore) error {
	count, err := items.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := SampleItems()
	if err := items.InsertMany(ctx, samples); err != nil {
		return err
	}

	log.Printf("✅ Données d'exemple insérées (%d articles)", len(samples))
	return nil
}
