package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartEntry référence un article par son id, avec une quantité.
// Un même article apparaît au plus une fois dans le panier d'un utilisateur
// (fusion à l'ajout, voir le handler cart).
type CartEntry struct {
	ItemID   primitive.ObjectID `json:"item" bson:"item"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

// ResolvedCartEntry est l'entrée renvoyée par l'API : l'article complet
// à la place de son id. Item vaut null si l'article n'existe plus.
type ResolvedCartEntry struct {
	Item     *Item `json:"item"`
	Quantity int   `json:"quantity"`
}
