package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shoply_back_end/internal/models"
	"shoply_back_end/internal/store"
)

type CartHandler struct {
	Users store.UserStore
	Items store.ItemStore
}

// Get renvoie le panier de l'utilisateur, articles résolus.
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.FindByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	h.respondResolved(c, user.Cart)
}

// Add fusionne l'article dans le panier : quantité incrémentée si
// l'article y est déjà, nouvelle entrée sinon. Quantité par défaut : 1.
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
		return
	}

	var input struct {
		ItemID   string `json:"itemId"`
		Quantity *int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	itemID, err := primitive.ObjectIDFromHex(input.ItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item id"})
		return
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	user, err := h.Users.MutateCart(c.Request.Context(), userID, func(cart []models.CartEntry) []models.CartEntry {
		for i := range cart {
			if cart[i].ItemID == itemID {
				cart[i].Quantity += quantity
				return cart
			}
		}
		return append(cart, models.CartEntry{ItemID: itemID, Quantity: quantity})
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	h.respondResolved(c, user.Cart)
}

// Update remplace la quantité d'une entrée existante. Si l'article n'est
// pas dans le panier : aucune entrée créée, le panier est renvoyé tel
// quel (comportement hérité, pas d'erreur signalée).
func (h *CartHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
		return
	}

	var input struct {
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	itemID, err := primitive.ObjectIDFromHex(input.ItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item id"})
		return
	}

	user, err := h.Users.MutateCart(c.Request.Context(), userID, func(cart []models.CartEntry) []models.CartEntry {
		for i := range cart {
			if cart[i].ItemID == itemID {
				cart[i].Quantity = input.Quantity
				break
			}
		}
		return cart
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	h.respondResolved(c, user.Cart)
}

// Remove retire l'entrée correspondant à :itemId. Idempotent : retirer
// un article absent renvoie le panier inchangé.
func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
		return
	}

	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item id"})
		return
	}

	user, err := h.Users.MutateCart(c.Request.Context(), userID, func(cart []models.CartEntry) []models.CartEntry {
		kept := cart[:0]
		for _, entry := range cart {
			if entry.ItemID != itemID {
				kept = append(kept, entry)
			}
		}
		return kept
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	h.respondResolved(c, user.Cart)
}

// respondResolved remplace chaque référence d'article par le document
// complet (équivalent d'un populate). Une référence pendante donne un
// item null, l'entrée est conservée.
func (h *CartHandler) respondResolved(c *gin.Context, cart []models.CartEntry) {
	resolved, err := h.resolve(c.Request.Context(), cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resolved)
}

func (h *CartHandler) resolve(ctx context.Context, cart []models.CartEntry) ([]models.ResolvedCartEntry, error) {
	ids := make([]primitive.ObjectID, 0, len(cart))
	for _, entry := range cart {
		ids = append(ids, entry.ItemID)
	}

	byID, err := h.Items.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	resolved := make([]models.ResolvedCartEntry, 0, len(cart))
	for _, entry := range cart {
		var item *models.Item
		if found, ok := byID[entry.ItemID]; ok {
			it := found
			item = &it
		}
		resolved = append(resolved, models.ResolvedCartEntry{Item: item, Quantity: entry.Quantity})
	}
	return resolved, nil
}
